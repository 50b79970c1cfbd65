package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/bouncer/audio"
	"github.com/lixenwraith/bouncer/config"
	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/engine"
	"github.com/lixenwraith/bouncer/input"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/render"
	"github.com/lixenwraith/bouncer/status"
)

// session is the command surface shared by both screens
type session interface {
	Start(engine.Timers)
	Publish()
	Snapshot() *engine.Snapshot
	RegisterHandler(engine.Handler)
	SetFocalPoint(r2.Point)
	Click(r2.Point)
	Resize(core.Viewport)
	ResizeSelected(engine.Direction)
	RotateSelected()
	DeleteSelected()
}

// App owns the terminal, the active session and its scheduler
type App struct {
	screen     tcell.Screen
	cfg        *config.Config
	grid       render.Grid
	renderer   *render.TerminalRenderer
	translator *input.Translator
	registry   *status.Registry
	tracker    *status.Tracker
	sound      *audio.SoundManager

	current   input.Screen
	session   session
	scheduler *engine.ClockScheduler
	viewport  core.Viewport

	fps       *status.AtomicFloat
	lastFrame time.Time
}

// NewApp wires the control layer around an initialized screen
func NewApp(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager, reg *status.Registry) *App {
	grid := render.Grid{
		CellWidth:  cfg.Render.CellWidth,
		CellHeight: cfg.Render.CellHeight,
		StatusRows: parameter.StatusBarRows,
	}
	cols, rows := screen.Size()
	return &App{
		screen:     screen,
		cfg:        cfg,
		grid:       grid,
		renderer:   render.NewTerminalRenderer(screen, grid),
		translator: input.NewTranslator(),
		registry:   reg,
		tracker:    status.NewTracker(reg),
		sound:      sound,
		viewport:   grid.Viewport(cols, rows),
		fps:        reg.Floats.Get(status.KeyFPS),
	}
}

// Enter stops the active session and starts a fresh one on screen s
func (a *App) Enter(s input.Screen) {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	var sess session
	switch s {
	case input.ScreenParkour:
		sess = engine.NewParkour(a.viewport, a.cfg.ParkourSession())
	default:
		sess = engine.NewFreeRoam(a.viewport, a.cfg.FreeRoamSession())
	}
	sess.RegisterHandler(a.tracker)
	if a.sound != nil {
		sess.RegisterHandler(a.sound)
	}

	scheduler := engine.NewClockScheduler(sess.Publish)
	scheduler.Start()
	scheduler.Do(func() { sess.Start(scheduler) })

	a.current = s
	a.session = sess
	a.scheduler = scheduler
	a.registry.Strings.Get(status.KeyScreen).Store(s.String())
	log.Printf("screen: entered %s, viewport %.0fx%.0f", s, a.viewport.Width, a.viewport.Height)
}

// Stop halts the active session
func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
}

// Handle applies one intent, returns false to quit
func (a *App) Handle(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentSwitchScreen:
		a.Enter(a.current.Other())
		return true
	case input.IntentToggleMute:
		if a.sound != nil {
			a.sound.SetMuted(!a.sound.IsMuted())
		}
		return true
	case input.IntentResize:
		a.viewport = a.grid.Viewport(in.X, in.Y)
		vp := a.viewport
		sess := a.session
		a.scheduler.Do(func() { sess.Resize(vp) })
		a.screen.Sync()
		log.Printf("screen: resized to %dx%d cells", in.X, in.Y)
		return true
	case input.IntentClick:
		// Clicks on the status bar are ignored
		if in.Y >= a.screenRows()-a.grid.StatusRows {
			return true
		}
	}

	if cmd := command(a.session, in, a.grid); cmd != nil {
		a.scheduler.Do(cmd)
	}
	return true
}

func (a *App) screenRows() int {
	_, rows := a.screen.Size()
	return rows
}

// command builds the session mutation for an intent, nil when the intent does not apply
// The returned func runs on the scheduler loop
func command(sess session, in input.Intent, grid render.Grid) func() {
	p := grid.ToWorld(in.X, in.Y)

	switch in.Type {
	case input.IntentPointer:
		return func() { sess.SetFocalPoint(p) }
	case input.IntentClick:
		return func() {
			sess.SetFocalPoint(p)
			sess.Click(p)
		}
	case input.IntentArrow:
		return func() { sess.ResizeSelected(in.Dir) }
	case input.IntentRotate:
		return sess.RotateSelected
	case input.IntentDelete:
		return sess.DeleteSelected
	}

	switch s := sess.(type) {
	case *engine.FreeRoam:
		switch in.Type {
		case input.IntentBurst:
			return func() { s.SpawnCircularBurst(s.FocalPoint()) }
		case input.IntentSync:
			return s.SyncColors
		case input.IntentToggleGravity:
			return func() { s.ToggleGravity() }
		case input.IntentToggleSpiral:
			return func() { s.ToggleSpiral() }
		case input.IntentToggleEdit:
			return func() { s.ToggleEditMode() }
		}
	case *engine.Parkour:
		switch in.Type {
		case input.IntentGoalGrow:
			return func() { s.ResizeGoal(parameter.GoalStep) }
		case input.IntentGoalShrink:
			return func() { s.ResizeGoal(-parameter.GoalStep) }
		case input.IntentSelectTracked:
			return s.SelectTracked
		case input.IntentSelectGoal:
			return s.SelectGoal
		case input.IntentPause:
			return func() { s.TogglePause() }
		}
	}
	return nil
}

// Frame draws the latest snapshot
func (a *App) Frame(now time.Time) {
	if !a.lastFrame.IsZero() {
		if dt := now.Sub(a.lastFrame).Seconds(); dt > 0 {
			a.fps.Smooth(1/dt, 0.1)
		}
	}
	a.lastFrame = now

	snap := a.session.Snapshot()
	a.tracker.Observe(snap)

	line := render.StatusLine{
		Screen:  a.current.String(),
		Bounces: a.registry.Int(status.KeyBounces),
		Spawns:  a.registry.Int(status.KeySpawns),
		Goals:   a.registry.Int(status.KeyGoals),
		FPS:     a.fps.Get(),
		Muted:   a.sound == nil || a.sound.IsMuted(),
	}
	a.renderer.RenderFrame(snap, line)
}

// Run polls terminal events and redraws until a quit intent
func (a *App) Run() {
	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(a.cfg.Render.Frame.Duration)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			for _, in := range a.translator.Translate(ev, a.current) {
				if !a.Handle(in) {
					return
				}
			}
		case now := <-ticker.C:
			a.Frame(now)
		}
	}
}

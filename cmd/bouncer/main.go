package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bouncer/audio"
	"github.com/lixenwraith/bouncer/config"
	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/input"
	"github.com/lixenwraith/bouncer/render"
	"github.com/lixenwraith/bouncer/status"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	modeFlag   = flag.String("mode", "", "Start screen: freeroam or parkour (overrides config)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/bouncer.log")
)

// startScreen resolves the configured screen name
func startScreen(name string) (input.Screen, error) {
	switch name {
	case config.ScreenFreeRoam, "":
		return input.ScreenFreeRoam, nil
	case config.ScreenParkour:
		return input.ScreenParkour, nil
	}
	return input.ScreenFreeRoam, fmt.Errorf("unknown screen %q", name)
}

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg := config.DefaultConfig()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bouncer: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *modeFlag != "" {
		cfg.Screen = *modeFlag
	}
	start, err := startScreen(cfg.Screen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bouncer: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bouncer: create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "bouncer: init screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()
	screen.Clear()

	// Restore terminal before any crash report
	core.SetCrashHandler(func(any) { screen.Fini() })
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	reg := status.NewRegistry()

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v, continuing without sound", err)
		sound = nil
	}
	reg.Bools.Get(status.KeyAudio).Store(sound != nil)

	app := NewApp(screen, cfg, sound, reg)
	app.Enter(start)

	began := time.Now()
	app.Run()

	app.Stop()
	if sound != nil {
		sound.Cleanup()
	}
	screen.Fini()

	fmt.Println(summaryFrom(reg, time.Since(began)).Render())
}

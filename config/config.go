// Package config loads the bouncer settings: TOML file values decoded over built-in defaults
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/bouncer/audio"
	"github.com/lixenwraith/bouncer/engine"
	"github.com/lixenwraith/bouncer/parameter"
	"github.com/lixenwraith/bouncer/physics"
)

// Screen names
const (
	ScreenFreeRoam = "freeroam"
	ScreenParkour  = "parkour"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Duration is a time.Duration written as a string ("10ms") in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds every tunable of a run
type Config struct {
	Screen string // initial screen: freeroam or parkour
	Seed   int64  // random spawn seed, 0 picks one from the clock

	FreeRoam FreeRoamConfig
	Gravity  GravityConfig
	Parkour  ParkourConfig
	Audio    AudioConfig
	Render   RenderConfig
}

// FreeRoamConfig tunes the sandbox screen
type FreeRoamConfig struct {
	Tick       Duration // advance period
	Spiral     Duration // spiral emitter period
	BurstCount int      // elements per circular burst
}

// GravityConfig tunes attraction toward the focal point
type GravityConfig struct {
	Constant    float64
	Falloff     float64
	MinDistance float64
}

// ParkourConfig tunes the tracked-element screen
type ParkourConfig struct {
	Tick       Duration
	GoalRadius float64 // viewport units
}

// AudioConfig toggles cues
type AudioConfig struct {
	Enabled bool
	Volume  float64 // 0.0 to 1.0
}

// RenderConfig tunes the terminal view
type RenderConfig struct {
	Frame      Duration // redraw period
	CellWidth  float64  // viewport units per terminal column
	CellHeight float64  // viewport units per terminal row
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenFreeRoam,
		FreeRoam: FreeRoamConfig{
			Tick:       Duration{parameter.FreeRoamTickInterval},
			Spiral:     Duration{parameter.SpiralInterval},
			BurstCount: parameter.BurstCount,
		},
		Gravity: GravityConfig{
			Constant:    parameter.GravityConstant,
			Falloff:     parameter.GravityFalloff,
			MinDistance: parameter.GravityMinDistance,
		},
		Parkour: ParkourConfig{
			Tick:       Duration{parameter.ParkourTickInterval},
			GoalRadius: parameter.GoalDefaultRadius,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Render: RenderConfig{
			Frame:      Duration{parameter.FrameUpdateInterval},
			CellWidth:  parameter.CellWidth,
			CellHeight: parameter.CellHeight,
		},
	}
}

// Load decodes the TOML file at path over the defaults
// Empty path returns the defaults; unknown keys are logged and ignored
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		log.Printf("config %s: unknown key %q ignored", path, key.String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no session can run with
func (c *Config) Validate() error {
	switch {
	case c.Screen != ScreenFreeRoam && c.Screen != ScreenParkour:
		return fmt.Errorf("%w: screen %q", ErrInvalid, c.Screen)
	case c.FreeRoam.Tick.Duration <= 0, c.FreeRoam.Spiral.Duration <= 0, c.Parkour.Tick.Duration <= 0:
		return fmt.Errorf("%w: tick periods must be positive", ErrInvalid)
	case c.Render.Frame.Duration <= 0:
		return fmt.Errorf("%w: frame period must be positive", ErrInvalid)
	case c.FreeRoam.BurstCount < 1:
		return fmt.Errorf("%w: burst count %d", ErrInvalid, c.FreeRoam.BurstCount)
	case c.Gravity.MinDistance <= 0:
		return fmt.Errorf("%w: gravity min distance %v", ErrInvalid, c.Gravity.MinDistance)
	case c.Parkour.GoalRadius < parameter.GoalMinRadius:
		return fmt.Errorf("%w: goal radius %v below %v", ErrInvalid, c.Parkour.GoalRadius, parameter.GoalMinRadius)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v outside 0..1", ErrInvalid, c.Audio.Volume)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %vx%v", ErrInvalid, c.Render.CellWidth, c.Render.CellHeight)
	}
	return nil
}

// FreeRoamSession converts to the engine settings of the sandbox
func (c *Config) FreeRoamSession() engine.FreeRoamConfig {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return engine.FreeRoamConfig{
		TickInterval:   c.FreeRoam.Tick.Duration,
		SpiralInterval: c.FreeRoam.Spiral.Duration,
		BurstCount:     c.FreeRoam.BurstCount,
		Gravity: physics.GravityProfile{
			Constant:    c.Gravity.Constant,
			Falloff:     c.Gravity.Falloff,
			MinDistance: c.Gravity.MinDistance,
		},
		Seed: seed,
	}
}

// ParkourSession converts to the engine settings of the tracked-element screen
func (c *Config) ParkourSession() engine.ParkourConfig {
	return engine.ParkourConfig{
		TickInterval: c.Parkour.Tick.Duration,
		GoalRadius:   c.Parkour.GoalRadius,
	}
}

// AudioSettings converts to the cue player settings, environment overrides applied last
func (c *Config) AudioSettings() *audio.AudioConfig {
	a := audio.DefaultAudioConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = c.Audio.Volume
	a.ApplyEnv()
	return a
}

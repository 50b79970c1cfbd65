package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/bouncer/parameter"
)

// AudioConfig tunes the cue player
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
	Cooldown     time.Duration // minimum gap between two plays of the same cue
}

// DefaultAudioConfig returns the stock settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		Cooldown:     parameter.BounceCueCooldown,
	}
}

// ApplyEnv overrides cfg from BOUNCER_AUDIO_ENABLED and BOUNCER_MASTER_VOLUME (0-100)
// Unparseable values are ignored
func (cfg *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv("BOUNCER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}
	if volume := os.Getenv("BOUNCER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bouncer/engine"
)

// SoundManager plays event cues through the speaker
// Every method is safe without a device: until Initialize succeeds cues are dropped
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [cueCount]time.Time

	muted  atomic.Bool
	played atomic.Int64

	now func() time.Time
}

// NewSoundManager creates an uninitialized manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker; a disabled config skips the device and succeeds
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	sr := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz", sm.config.SampleRate)
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns the number of cues sent to the speaker
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Play queues a cue, returns false when dropped (no device, muted, or within cooldown)
func (sm *SoundManager) Play(c Cue) bool {
	if c < 0 || c >= cueCount || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.allow(c, sm.now()) || !sm.initialized {
		return false
	}

	s := CueStreamer(c, beep.SampleRate(sm.config.SampleRate), sm.config.MasterVolume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
	return true
}

// HandleEvent implements engine.Handler
// Runs on the scheduler loop, so it never blocks on the device
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	if c, ok := cueFor(ev); ok {
		sm.Play(c)
	}
}

// allow applies the per-cue cooldown and records the play time, caller holds mu
func (sm *SoundManager) allow(c Cue, now time.Time) bool {
	last := sm.lastPlayed[c]
	if !last.IsZero() && now.Sub(last) < sm.config.Cooldown {
		return false
	}
	sm.lastPlayed[c] = now
	return true
}

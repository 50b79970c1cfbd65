package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// ToneGenerator streams an exponentially decaying sine, optionally gliding in pitch
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	glide float64 // Hz per second
	decay float64 // envelope rate, 1/s
	pos   int
	phase float64
}

// NewToneGenerator creates an endless tone; wrap with beep.Take to bound it
func NewToneGenerator(sr beep.SampleRate, freq, glide, decay float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, glide: glide, decay: decay}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := g.freq + g.glide*t
		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= math.Floor(g.phase)
		}

		sample := 0.4 * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// newVolume scales s by vol in 0..1; zero is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CueStreamer builds the finite streamer for a cue at the given rate and volume
func CueStreamer(c Cue, sr beep.SampleRate, vol float64) beep.Streamer {
	n := sr.N(c.duration())
	var s beep.Streamer
	switch c {
	case CueBounce:
		s = beep.Take(n, NewToneGenerator(sr, 660, 0, 60))
	case CueLaunch:
		s = beep.Take(n, NewToneGenerator(sr, 220, 2400, 12))
	default:
		// Two-note chime
		half := n / 2
		s = beep.Seq(
			beep.Take(half, NewToneGenerator(sr, 523.25, 0, 6)),
			beep.Take(n-half, NewToneGenerator(sr, 783.99, 0, 5)),
		)
	}
	return newVolume(s, vol)
}

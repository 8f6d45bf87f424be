// Package sound plays the short click used to signal a mistyped key.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(48000)
	clickFreq     = 880.0
	clickDuration = 40 * time.Millisecond
	clickVolume   = 0.3
)

// Player signals keystroke feedback.
type Player interface {
	Click()
	Close()
}

// Mute is a Player that does nothing.
type Mute struct{}

// Click implements Player.
func (Mute) Click() {}

// Close implements Player.
func (Mute) Close() {}

// Speaker plays clicks on the default audio device through one mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker opens the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Open returns a Speaker when enabled is set, falling back to Mute when the
// audio device cannot be opened.
func Open(enabled bool) (Player, error) {
	if !enabled {
		return Mute{}, nil
	}
	s, err := NewSpeaker()
	if err != nil {
		return Mute{}, err
	}
	return s, nil
}

// Click queues one click.
func (s *Speaker) Click() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(Click(sampleRate))
	speaker.Unlock()
}

// Close silences pending clicks and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Click returns a finite click streamer at the given rate.
func Click(sr beep.SampleRate) beep.Streamer {
	tone := beep.Take(sr.N(clickDuration), &clickGenerator{sr: sr, freq: clickFreq, length: sr.N(clickDuration)})
	return &effects.Volume{Streamer: tone, Base: 2, Volume: math.Log2(clickVolume)}
}

// clickGenerator is a sine tone with a linear decay over length samples.
type clickGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

func (g *clickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		decay := 1.0
		if g.length > 0 {
			decay = math.Max(0, 1-float64(g.pos)/float64(g.length))
		}
		v := math.Sin(2*math.Pi*g.freq*t) * decay
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *clickGenerator) Err() error {
	return nil
}

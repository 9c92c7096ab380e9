// Package audio plays short completion cues for interactive tools
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridpath/parameter"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a completion sound
type Cue uint8

const (
	CueFound Cue = iota
	CueExhausted
	CueAborted
)

// CuePlayer mixes cues onto the speaker
// All methods are no-ops until Initialize succeeds
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCuePlayer creates a player, call Initialize before playing
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops queued cues, the speaker itself stays open
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Enabled reports whether cues reach the speaker
func (p *CuePlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := NewCueStreamer(c)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// NewCueStreamer renders a cue as a finite streamer
// Found is a rising two-note sine, exhausted a low buzz, aborted a single short buzz
func NewCueStreamer(c Cue) beep.Streamer {
	note := sampleRate.N(parameter.SandboxToneMs * time.Millisecond)
	switch c {
	case CueFound:
		return beep.Seq(
			beep.Take(note, newVoice(parameter.SandboxToneFoundHz, 0, 0.2)),
			beep.Take(note, newVoice(parameter.SandboxToneFoundHz*1.5, 0, 0.2)),
		)
	case CueAborted:
		return beep.Take(note, newBuzz(parameter.SandboxToneExhaustedHz*2))
	default:
		return beep.Take(2*note, newBuzz(parameter.SandboxToneExhaustedHz))
	}
}

// newBuzz is a harmonic-rich voice with a short attack
func newBuzz(freq float64) beep.Streamer {
	return newVoice(freq, 20*time.Millisecond, 0.15, 0.075, 0.0375)
}

// newVoice mixes sine partials at freq, 2*freq, ... weighted by weights, under a linear attack
// Partials at or above Nyquist are dropped
func newVoice(freq float64, attack time.Duration, weights ...float64) beep.Streamer {
	partials := make([]beep.Streamer, 0, len(weights))
	for i, w := range weights {
		tone, err := generators.SineTone(sampleRate, freq*float64(i+1))
		if err != nil {
			break
		}
		partials = append(partials, &gain{s: tone, g: w})
	}
	return &envelope{s: beep.Mix(partials...), attack: sampleRate.N(attack)}
}

// gain scales a streamer
type gain struct {
	s beep.Streamer
	g float64
}

func (v *gain) Stream(samples [][2]float64) (int, bool) {
	n, ok := v.s.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= v.g
		samples[i][1] *= v.g
	}
	return n, ok
}

func (v *gain) Err() error { return v.s.Err() }

// envelope ramps a streamer from silence over attack samples
type envelope struct {
	s      beep.Streamer
	attack int
	pos    int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := range samples[:n] {
		if e.pos >= e.attack {
			break
		}
		level := float64(e.pos) / float64(e.attack)
		samples[i][0] *= level
		samples[i][1] *= level
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

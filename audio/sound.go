package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SoundType represents the sandbox sound effects
type SoundType int

const (
	SoundSpawn   SoundType = iota // New body dropped
	SoundDespawn                  // Body destroyed
	SoundBounce                   // Ground or body contact
	SoundTypeCount
)

// Tone frequencies per effect; short sine blips keep the mixer cheap
var toneHz = [SoundTypeCount]int{
	SoundSpawn:   880,
	SoundDespawn: 440,
	SoundBounce:  660,
}

var toneDuration = [SoundTypeCount]time.Duration{
	SoundSpawn:   50 * time.Millisecond,
	SoundDespawn: 70 * time.Millisecond,
	SoundBounce:  30 * time.Millisecond,
}

// Player wraps the speaker; a failed or disabled init degrades to
// silent no-ops, the sandbox runs fine without sound
type Player struct {
	sampleRate beep.SampleRate
	ready      bool
}

// NewPlayer initializes the speaker. The returned error is advisory;
// the Player is usable (silently) either way
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{sampleRate: beep.SampleRate(44100)}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.ready = true
	return p, nil
}

// Play fires one blip, non-blocking
func (p *Player) Play(s SoundType) {
	if !p.ready || s < 0 || s >= SoundTypeCount {
		return
	}
	sine, err := generators.SineTone(p.sampleRate, float64(toneHz[s]))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(p.sampleRate.N(toneDuration[s]), sine))
}

// Ready reports whether the speaker initialized
func (p *Player) Ready() bool { return p.ready }

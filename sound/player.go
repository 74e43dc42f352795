// Package sound plays short tones when the selection changes.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/worldmap/selection"
)

const (
	SampleRate    = beep.SampleRate(44100)
	DefaultVolume = 0.3
)

// Player owns the speaker. A Player that was never initialized, or whose
// initialization failed, ignores Play.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given linear volume
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Enabled reports whether Play produces sound
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue on the mixer
func (p *Player) Play(c Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || c == CueNone {
		return nil
	}
	s, err := Sequence(SampleRate, c.Notes(), p.volume)
	if err != nil {
		return err
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Observer returns a selection observer that plays the matching cue.
// Playback errors go to onErr when it is set.
func (p *Player) Observer(onErr func(error)) selection.Observer {
	return func(a selection.Action, prev, next selection.State) {
		if err := p.Play(CueFor(a, prev, next)); err != nil && onErr != nil {
			onErr(err)
		}
	}
}

package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Note is one sine tone of a cue
type Note struct {
	Freq     float64
	Duration time.Duration
}

const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 40 * time.Millisecond
	noteGap     = 20 * time.Millisecond
)

// envelope fades a stream in and out over a fixed length to avoid clicks
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total int, rate beep.SampleRate) *envelope {
	e := &envelope{
		streamer: s,
		attack:   rate.N(noteAttack),
		release:  rate.N(noteRelease),
		total:    total,
	}
	if e.attack+e.release > total {
		e.attack, e.release = total/2, total-total/2
	}
	return e
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; left < e.release {
			vol = float64(left) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream linearly; zero or less is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Tone renders a single shaped note
func Tone(rate beep.SampleRate, n Note, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, n.Freq)
	if err != nil {
		return nil, err
	}
	total := rate.N(n.Duration)
	return withVolume(newEnvelope(sine, total, rate), vol), nil
}

// Sequence renders notes back to back with a short gap between them
func Sequence(rate beep.SampleRate, notes []Note, vol float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, 2*len(notes))
	for i, n := range notes {
		if i > 0 {
			parts = append(parts, beep.Silence(rate.N(noteGap)))
		}
		s, err := Tone(rate, n, vol)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}

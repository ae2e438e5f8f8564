// Package sound synthesizes the skateboard sounds and bridges beep streamers
// to byte-oriented audio players.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate = beep.SampleRate(44100)

// rolling is an endless wheel-on-concrete texture: low-passed noise for grit
// over a slowly wobbling low rumble.
type rolling struct {
	rate   beep.SampleRate
	rng    *rand.Rand
	lp     float64
	phase  float64
	wobble float64
}

// NewRolling returns the looping wheel sound. It never ends.
func NewRolling(rate beep.SampleRate, seed int64) beep.Streamer {
	return &rolling{rate: rate, rng: rand.New(rand.NewSource(seed))}
}

func (r *rolling) Stream(samples [][2]float64) (int, bool) {
	const (
		rumbleHz = 55.0
		wobbleHz = 3.0
		cutoff   = 0.08
	)
	step := 1 / float64(r.rate)

	for i := range samples {
		noise := r.rng.Float64()*2 - 1
		r.lp += cutoff * (noise - r.lp)

		mod := 0.75 + 0.25*math.Sin(2*math.Pi*r.wobble)
		val := 0.6*r.lp + 0.4*math.Sin(2*math.Pi*r.phase)*mod

		samples[i][0] = val
		samples[i][1] = val

		r.phase += rumbleHz * step
		r.phase -= math.Floor(r.phase)
		r.wobble += wobbleHz * step
		r.wobble -= math.Floor(r.wobble)
	}
	return len(samples), true
}

func (r *rolling) Err() error { return nil }

// decay shapes a streamer with an exponential fall-off.
type decay struct {
	streamer beep.Streamer
	factor   float64
	gain     float64
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= d.gain
		samples[i][1] *= d.gain
		d.gain *= d.factor
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// noise is white noise.
type noise struct {
	rng *rand.Rand
}

func (n noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (noise) Err() error { return nil }

// ClackDuration is the length of the landing clack.
const ClackDuration = 80 * time.Millisecond

// NewClack returns the short wood-on-concrete landing hit.
func NewClack(rate beep.SampleRate, gain float64, seed int64) beep.Streamer {
	total := rate.N(ClackDuration)
	// Fall to about -60dB by the end.
	factor := math.Pow(0.001, 1/float64(total))

	body := &decay{
		streamer: noise{rng: rand.New(rand.NewSource(seed))},
		factor:   factor,
		gain:     1,
	}
	return beep.Take(total, withGain(body, gain))
}

// withGain wraps s in a linear gain. Zero or less is silent.
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

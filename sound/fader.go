package sound

// Fader ramps a volume linearly toward a target over a fade time.
type Fader struct {
	current float64
	target  float64
	rate    float64 // units per second, 0 when settled
}

func NewFader(initial float64) *Fader {
	return &Fader{current: initial, target: initial}
}

// Adjust starts a fade from the current value to target lasting fadeSeconds.
// A non-positive fade time jumps straight to target.
func (f *Fader) Adjust(fadeSeconds, target float64) {
	f.target = target
	if fadeSeconds <= 0 {
		f.current = target
		f.rate = 0
		return
	}
	diff := target - f.current
	if diff < 0 {
		diff = -diff
	}
	f.rate = diff / fadeSeconds
}

// Advance moves the fade forward by dt seconds and returns the new value.
func (f *Fader) Advance(dt float64) float64 {
	if f.rate == 0 || dt <= 0 {
		return f.current
	}

	step := f.rate * dt
	switch {
	case f.current < f.target:
		f.current += step
		if f.current >= f.target {
			f.current = f.target
		}
	case f.current > f.target:
		f.current -= step
		if f.current <= f.target {
			f.current = f.target
		}
	}
	if f.current == f.target {
		f.rate = 0
	}
	return f.current
}

func (f *Fader) Value() float64 {
	return f.current
}

func (f *Fader) Target() float64 {
	return f.target
}

// Set jumps to v and cancels any fade.
func (f *Fader) Set(v float64) {
	f.current, f.target, f.rate = v, v, 0
}

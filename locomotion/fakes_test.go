package locomotion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

type movementCall struct {
	dir   mgl64.Vec3
	scale float64
}

// recorder implements every Host interface and logs calls in order.
type recorder struct {
	calls []string

	tracePoint func(start, end mgl64.Vec3) (mgl64.Vec3, bool)
	pivot      mgl64.Vec3
	falling    bool
	audioOn    bool

	inputs   []movementCall
	jumps    int
	impulses []mgl64.Vec3
	cues     int
	volumes  []float64
	fades    []float64
	fovs     []float64
	weights  []float64
}

func newRecorder() *recorder {
	return &recorder{audioOn: true}
}

func (r *recorder) host() Host {
	return Host{
		Ground:      r,
		Board:       r,
		Movement:    r,
		Airborne:    r,
		Audio:       r,
		Camera:      r,
		PostProcess: r,
		JumpCue:     r,
	}
}

func (r *recorder) LineTrace(start, end mgl64.Vec3) (mgl64.Vec3, bool) {
	r.calls = append(r.calls, "trace")
	if r.tracePoint == nil {
		return mgl64.Vec3{}, false
	}
	return r.tracePoint(start, end)
}

func (r *recorder) BoardLocation() mgl64.Vec3 {
	return r.pivot
}

func (r *recorder) AddMovementInput(dir mgl64.Vec3, scale float64) {
	r.calls = append(r.calls, "input")
	r.inputs = append(r.inputs, movementCall{dir: dir, scale: scale})
}

func (r *recorder) Jump() {
	r.calls = append(r.calls, "jump")
	r.jumps++
}

func (r *recorder) AddImpulse(v mgl64.Vec3) {
	r.calls = append(r.calls, "impulse")
	r.impulses = append(r.impulses, v)
}

func (r *recorder) IsFalling() bool {
	r.calls = append(r.calls, "falling?")
	return r.falling
}

func (r *recorder) IsActive() bool {
	return r.audioOn
}

func (r *recorder) AdjustVolume(fadeSeconds, target float64, curve FadeCurve) {
	r.calls = append(r.calls, fmt.Sprintf("volume/%d", curve))
	r.fades = append(r.fades, fadeSeconds)
	r.volumes = append(r.volumes, target)
}

func (r *recorder) SetFieldOfView(deg float64) {
	r.calls = append(r.calls, "fov")
	r.fovs = append(r.fovs, deg)
}

func (r *recorder) SetBlendWeight(w float64) {
	r.calls = append(r.calls, "blend")
	r.weights = append(r.weights, w)
}

func (r *recorder) PlayJumpCue() {
	r.calls = append(r.calls, "cue")
	r.cues++
}

func (r *recorder) reset() {
	r.calls = nil
	r.inputs = nil
}

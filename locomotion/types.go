package locomotion

import (
	"github.com/automoto/skater/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// JumpState is the binary jump/airborne state of the rider.
type JumpState int

const (
	Grounded JumpState = iota
	Jumping
)

func (s JumpState) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case Jumping:
		return "Jumping"
	default:
		return "Unknown"
	}
}

// ProbeStatus classifies a ground probe.
//
// A miss reports the zero vector as its point, exactly like a genuine hit at
// the world origin would. ProbeHitAtOrigin keeps that case visible instead of
// silently merging it into either of the other two.
type ProbeStatus int

const (
	ProbeMiss ProbeStatus = iota
	ProbeHit
	ProbeHitAtOrigin
)

func (s ProbeStatus) String() string {
	switch s {
	case ProbeMiss:
		return "Miss"
	case ProbeHit:
		return "Hit"
	case ProbeHitAtOrigin:
		return "HitAtOrigin"
	default:
		return "Unknown"
	}
}

// ProbeResult is one wheel's ground probe for the current tick.
type ProbeResult struct {
	Status ProbeStatus
	Point  mgl64.Vec3
	// Start and End are the traced segment, kept for debug drawing.
	Start mgl64.Vec3
	End   mgl64.Vec3
}

// Hit reports whether the trace touched ground, including a hit at the origin.
func (p ProbeResult) Hit() bool {
	return p.Status != ProbeMiss
}

// FadeCurve selects the shape of an audio volume fade.
type FadeCurve int

const (
	FadeLinear FadeCurve = iota
)

// State is the locomotion state owned by one rider.
type State struct {
	SmoothedSpeed  float64
	LastSteering   mgl64.Vec2
	Board          gamemath.Rotator
	VerticalFacing float64
	Jump           JumpState
}

// Frame is the raw input for one tick.
type Frame struct {
	Steering      mgl64.Vec2
	JumpRequested bool
}

// Outputs are the values produced by one tick.
type Outputs struct {
	SmoothedSpeed  float64
	Board          gamemath.Rotator
	VerticalFacing float64
	ForwardInput   float64
	StrafeInput    float64
	Volume         float64
	BlendWeight    float64
	FieldOfView    float64
	Jumping        bool
	FrontProbe     ProbeResult
	BackProbe      ProbeResult
}

package locomotion

import "github.com/go-gl/mathgl/mgl64"

// Tuning holds the controller constants.
type Tuning struct {
	AlignInterpSpeed   float64    // pitch blend speed toward the ground slope
	SpeedInterpRate    float64    // throttle smoothing rate
	SpeedSnapTolerance float64    // distance at which throttle snaps to its target
	ProbeHalfSpan      float64    // trace length above and below each wheel
	FrontWheelOffset   mgl64.Vec3 // board-local front wheel socket
	BackWheelOffset    mgl64.Vec3 // board-local back wheel socket
	SlopeCompression   float64    // |vertical facing| of 1 maps to this much throttle
	StrafeScale        float64
	JumpImpulse        float64
	VolumeFadeSeconds  float64
	FOVSpeedMin        float64
	FOVSpeedMax        float64
	FOVMin             float64
	FOVMax             float64
}

// DefaultTuning returns the stock skateboard feel.
func DefaultTuning() Tuning {
	return Tuning{
		AlignInterpSpeed:   10.0,
		SpeedInterpRate:    1.0,
		SpeedSnapTolerance: 1e-6,
		ProbeHalfSpan:      50.0,
		FrontWheelOffset:   mgl64.Vec3{30, 0, 0},
		BackWheelOffset:    mgl64.Vec3{-30, 0, 0},
		SlopeCompression:   0.7,
		StrafeScale:        0.05,
		JumpImpulse:        20.0,
		VolumeFadeSeconds:  0.1,
		FOVSpeedMin:        0.5,
		FOVSpeedMax:        1.0,
		FOVMin:             90.0,
		FOVMax:             120.0,
	}
}

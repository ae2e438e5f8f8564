package locomotion

import "github.com/go-gl/mathgl/mgl64"

// GroundTracer casts a segment against the world and returns the first hit.
type GroundTracer interface {
	LineTrace(start, end mgl64.Vec3) (point mgl64.Vec3, hit bool)
}

// BoardLocator reports the board pivot in world space.
type BoardLocator interface {
	BoardLocation() mgl64.Vec3
}

// MovementSink receives movement requests for the current tick.
type MovementSink interface {
	AddMovementInput(direction mgl64.Vec3, scale float64)
	Jump()
	AddImpulse(impulse mgl64.Vec3)
}

type AirborneQuery interface {
	IsFalling() bool
}

// AudioSink is the rolling-wheel sound.
type AudioSink interface {
	IsActive() bool
	AdjustVolume(fadeSeconds, target float64, curve FadeCurve)
}

type CameraSink interface {
	SetFieldOfView(degrees float64)
}

type PostProcessSink interface {
	SetBlendWeight(weight float64)
}

// JumpCue plays the visual flourish for a jump.
type JumpCue interface {
	PlayJumpCue()
}

// Host bundles the collaborators a Controller talks to. Every field may be
// nil; a nil collaborator turns its part of the tick into a no-op.
type Host struct {
	Ground      GroundTracer
	Board       BoardLocator
	Movement    MovementSink
	Airborne    AirborneQuery
	Audio       AudioSink
	Camera      CameraSink
	PostProcess PostProcessSink
	JumpCue     JumpCue
}

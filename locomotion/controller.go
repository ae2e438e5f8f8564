package locomotion

import (
	"github.com/automoto/skater/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Controller drives one rider's board. It owns the locomotion state and
// talks to the rest of the game only through its Host.
type Controller struct {
	host   Host
	tuning Tuning
	state  State

	spawnBoard gamemath.Rotator
	last       Outputs
}

func New(host Host, tuning Tuning) *Controller {
	return &Controller{
		host:   host,
		tuning: tuning,
	}
}

// State returns a copy of the current locomotion state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// SetTuning swaps the constants used from the next tick on.
func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t
}

// LastOutputs returns what the most recent tick produced.
func (c *Controller) LastOutputs() Outputs {
	return c.last
}

// SetBoard places the board at an orientation, e.g. at spawn. The
// orientation is also what Reset returns to.
func (c *Controller) SetBoard(r gamemath.Rotator) {
	c.spawnBoard = r
	c.state.Board = r
	c.state.VerticalFacing = r.Forward().Z()
}

// Reset returns the controller to its spawn state.
func (c *Controller) Reset() {
	c.state = State{
		Board:          c.spawnBoard,
		VerticalFacing: c.spawnBoard.Forward().Z(),
	}
	c.last = Outputs{}
}

// Move records the raw steering input for the next tick.
func (c *Controller) Move(steering mgl64.Vec2) {
	c.state.LastSteering = steering
}

// Update feeds one frame of input and runs a tick.
func (c *Controller) Update(dt float64, frame Frame) Outputs {
	c.Move(frame.Steering)
	if frame.JumpRequested {
		c.Jump()
	}
	return c.Tick(dt)
}

// Tick advances the controller by dt seconds.
func (c *Controller) Tick(dt float64) Outputs {
	out := Outputs{}

	out.FrontProbe, out.BackProbe = c.alignBoard(dt)
	c.state.SmoothedSpeed = SmoothSpeed(c.state.SmoothedSpeed, c.state.LastSteering.Y(), dt, c.tuning)
	out.Volume = c.applyVolume()
	out.ForwardInput, out.StrafeInput = c.applyMovement()
	out.BlendWeight, out.FieldOfView = c.applyView()
	c.correctAirborne()

	out.SmoothedSpeed = c.state.SmoothedSpeed
	out.Board = c.state.Board
	out.VerticalFacing = c.state.VerticalFacing
	out.Jumping = c.state.Jump == Jumping
	c.last = out
	return out
}

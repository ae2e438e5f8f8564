package locomotion

import (
	"github.com/automoto/skater/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// MovementInputs returns the forward and strafe scales for a board. Downhill
// adds push and uphill takes it away, compressed so a steep ramp never fully
// cancels the throttle.
func MovementInputs(speed float64, board gamemath.Rotator, steering mgl64.Vec2, t Tuning) (forward, strafe float64) {
	facing := board.Forward().Z()
	mapped := gamemath.MapRangeClamped(facing, -1, 1, -t.SlopeCompression, t.SlopeCompression)
	return speed - mapped, steering.X() * t.StrafeScale
}

func (c *Controller) applyMovement() (forward, strafe float64) {
	c.state.VerticalFacing = c.state.Board.Forward().Z()
	forward, strafe = MovementInputs(c.state.SmoothedSpeed, c.state.Board, c.state.LastSteering, c.tuning)

	if c.host.Movement != nil {
		c.host.Movement.AddMovementInput(c.state.Board.Forward(), forward)
		c.host.Movement.AddMovementInput(c.state.Board.Right(), strafe)
	}
	return forward, strafe
}

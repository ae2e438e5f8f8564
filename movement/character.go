// Package movement is a small character mover for a side-view skater. It
// consumes per-tick movement input, jump and impulse requests and integrates
// them against a ground query.
package movement

import (
	"math"

	"github.com/automoto/skater/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Ground is the terrain query the mover integrates against.
type Ground interface {
	// GroundBelow returns the highest surface at x not above z.
	GroundBelow(x, z float64) (float64, bool)
	// Blocked reports whether a body with feet at (x, z) overlaps a wall.
	Blocked(x, z, halfWidth, height float64) bool
}

type Params struct {
	MaxSpeed      float64 // horizontal speed at full input
	Acceleration  float64
	BrakingDecel  float64 // applied with no input while grounded
	AirControl    float64 // fraction of Acceleration available in the air
	Gravity       float64
	MaxFallSpeed  float64
	JumpZVelocity float64
	MaxStepHeight float64
	GroundSnap    float64 // max drop that still counts as staying on the ground
	HalfWidth     float64
	Height        float64
}

func DefaultParams() Params {
	return Params{
		MaxSpeed:      420,
		Acceleration:  900,
		BrakingDecel:  600,
		AirControl:    0.35,
		Gravity:       1960,
		MaxFallSpeed:  1800,
		JumpZVelocity: 700,
		MaxStepHeight: 12,
		GroundSnap:    16,
		HalfWidth:     8,
		Height:        32,
	}
}

// StepResult describes what happened during one Step.
type StepResult struct {
	Landed  bool
	HitWall bool
}

// Character is a point-footed body. Position is the feet.
type Character struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Params   Params

	pendingInput mgl64.Vec3
	falling      bool
}

func NewCharacter(pos mgl64.Vec3, params Params) *Character {
	return &Character{Position: pos, Params: params, falling: true}
}

// AddMovementInput accumulates a direction for the next Step.
func (c *Character) AddMovementInput(direction mgl64.Vec3, scale float64) {
	c.pendingInput = c.pendingInput.Add(direction.Mul(scale))
}

// PendingInput returns the input accumulated since the last Step.
func (c *Character) PendingInput() mgl64.Vec3 {
	return c.pendingInput
}

// Jump launches the character if it is on the ground.
func (c *Character) Jump() {
	if c.falling {
		return
	}
	c.Velocity[2] = c.Params.JumpZVelocity
	c.falling = true
}

// AddImpulse changes velocity instantly.
func (c *Character) AddImpulse(impulse mgl64.Vec3) {
	c.Velocity = c.Velocity.Add(impulse)
	if !c.falling && c.Velocity.Z() > 0 {
		c.falling = true
	}
}

func (c *Character) IsFalling() bool {
	return c.falling
}

// Teleport moves the character and clears its motion.
func (c *Character) Teleport(pos mgl64.Vec3) {
	c.Position = pos
	c.Velocity = mgl64.Vec3{}
	c.pendingInput = mgl64.Vec3{}
	c.falling = true
}

// Step integrates dt seconds of motion and clears the pending input.
func (c *Character) Step(dt float64, ground Ground) StepResult {
	if dt <= 0 {
		return StepResult{}
	}
	input := c.pendingInput
	c.pendingInput = mgl64.Vec3{}

	c.applyInput(input, dt)
	if c.falling {
		c.Velocity[2] = math.Max(c.Velocity.Z()-c.Params.Gravity*dt, -c.Params.MaxFallSpeed)
	}

	var res StepResult
	res.HitWall = c.moveHorizontal(dt, ground)
	res.Landed = c.moveVertical(dt, ground)
	return res
}

func (c *Character) applyInput(input mgl64.Vec3, dt float64) {
	p := c.Params
	ix, iy := gamemath.ClampLength(input.X(), input.Y(), 1)
	mag := math.Hypot(ix, iy)
	vx, vy := c.Velocity.X(), c.Velocity.Y()
	speed := math.Hypot(vx, vy)

	switch {
	case mag > 0:
		accel := p.Acceleration
		if c.falling {
			accel *= p.AirControl
		}
		vx += ix * accel * dt
		vy += iy * accel * dt

		// Over the analog cap we bleed speed instead of clamping, so impulses
		// decay rather than vanish.
		limit := math.Max(p.MaxSpeed*mag, speed-p.BrakingDecel*dt)
		vx, vy = gamemath.ClampLength(vx, vy, limit)
	case !c.falling && speed > 0:
		next := gamemath.ApplyFriction(speed, p.BrakingDecel*dt)
		vx, vy = vx*next/speed, vy*next/speed
	}

	c.Velocity[0], c.Velocity[1] = vx, vy
}

func (c *Character) moveHorizontal(dt float64, ground Ground) bool {
	p := c.Params
	nx := c.Position.X() + c.Velocity.X()*dt
	c.Position[1] += c.Velocity.Y() * dt

	if ground != nil && ground.Blocked(nx, c.Position.Z()+p.MaxStepHeight, p.HalfWidth, p.Height-p.MaxStepHeight) {
		c.Velocity[0] = 0
		return true
	}
	c.Position[0] = nx
	return false
}

func (c *Character) moveVertical(dt float64, ground Ground) bool {
	p := c.Params
	x, z := c.Position.X(), c.Position.Z()

	var floor float64
	var onGround bool
	if ground != nil {
		floor, onGround = ground.GroundBelow(x, z+p.MaxStepHeight)
	}

	if c.falling {
		nz := z + c.Velocity.Z()*dt
		if c.Velocity.Z() <= 0 && onGround && nz <= floor {
			c.Position[2] = floor
			c.Velocity[2] = 0
			c.falling = false
			return true
		}
		c.Position[2] = nz
		return false
	}

	if onGround && z-floor <= p.GroundSnap {
		c.Position[2] = floor
		c.Velocity[2] = 0
		return false
	}

	// Rolled off a ledge.
	c.falling = true
	return false
}

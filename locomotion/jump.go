package locomotion

// Jump starts a jump. It does nothing while a jump is already in progress.
func (c *Controller) Jump() {
	if c.state.Jump == Jumping {
		return
	}

	c.state.Jump = Jumping
	if c.host.Movement != nil {
		c.host.Movement.Jump()
	}
	if c.host.JumpCue != nil {
		c.host.JumpCue.PlayJumpCue()
	}
	if c.host.Movement != nil {
		c.host.Movement.AddImpulse(c.state.Board.Forward().Mul(c.tuning.JumpImpulse))
	}
}

// IsJumping reports whether a jump is in progress.
func (c *Controller) IsJumping() bool {
	return c.state.Jump == Jumping
}

func (c *Controller) correctAirborne() {
	if c.state.Jump != Jumping {
		return
	}
	if c.host.Airborne == nil || !c.host.Airborne.IsFalling() {
		c.state.Jump = Grounded
	}
}

package locomotion

import (
	"github.com/automoto/skater/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// WheelAnchors returns the world positions of the front and back wheels for a
// board at pivot with the given orientation.
func WheelAnchors(pivot mgl64.Vec3, board gamemath.Rotator, t Tuning) (front, back mgl64.Vec3) {
	front = pivot.Add(board.RotateVector(t.FrontWheelOffset))
	back = pivot.Add(board.RotateVector(t.BackWheelOffset))
	return front, back
}

// Probe traces vertically through anchor. A miss yields the zero vector.
func Probe(tracer GroundTracer, anchor mgl64.Vec3, halfSpan float64) ProbeResult {
	span := mgl64.Vec3{0, 0, halfSpan}
	res := ProbeResult{
		Status: ProbeMiss,
		Start:  anchor.Add(span),
		End:    anchor.Sub(span),
	}
	if tracer == nil {
		return res
	}

	point, hit := tracer.LineTrace(res.Start, res.End)
	if !hit {
		return res
	}
	res.Point = point
	res.Status = ProbeHit
	if point == (mgl64.Vec3{}) {
		res.Status = ProbeHitAtOrigin
	}
	return res
}

// AlignPitch blends the pitch of current toward the slope running from back
// to front. Roll and yaw are returned untouched.
func AlignPitch(current gamemath.Rotator, front, back mgl64.Vec3, dt, speed float64) gamemath.Rotator {
	target := gamemath.FindLookAtRotation(back, front)
	blended := gamemath.RInterpTo(current, target, dt, speed)

	return gamemath.Rotator{
		Roll:  current.Roll,
		Pitch: blended.Pitch,
		Yaw:   current.Yaw,
	}
}

func (c *Controller) alignBoard(dt float64) (front, back ProbeResult) {
	var pivot mgl64.Vec3
	if c.host.Board != nil {
		pivot = c.host.Board.BoardLocation()
	}

	frontAnchor, backAnchor := WheelAnchors(pivot, c.state.Board, c.tuning)
	front = Probe(c.host.Ground, frontAnchor, c.tuning.ProbeHalfSpan)
	back = Probe(c.host.Ground, backAnchor, c.tuning.ProbeHalfSpan)

	c.state.Board = AlignPitch(c.state.Board, front.Point, back.Point, dt, c.tuning.AlignInterpSpeed)
	return front, back
}

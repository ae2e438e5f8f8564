package locomotion

import (
	"math"

	"github.com/automoto/skater/shared/gamemath"
)

// SmoothSpeed moves the throttle toward the forward steering axis. Braking
// input pulls toward zero but never below it, and the result always lies in
// [0, 1].
func SmoothSpeed(current, steeringY, dt float64, t Tuning) float64 {
	target := gamemath.Clamp(steeringY, -1, 1)
	if math.Abs(target-current) <= t.SpeedSnapTolerance {
		return gamemath.Clamp(target, 0, 1)
	}
	return gamemath.Clamp(gamemath.FInterpTo(current, target, dt, t.SpeedInterpRate), 0, 1)
}

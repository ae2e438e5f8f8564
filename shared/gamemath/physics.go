package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampLength scales (x, y) down so its length does not exceed max.
func ClampLength(x, y, max float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length <= max || length == 0 {
		return x, y
	}
	scale := max / length
	return x * scale, y * scale
}

package gamemath

import "math"

const (
	// SmallNumber is the squared distance below which interpolation snaps to its target.
	SmallNumber = 1e-8
)

// Clamp constrains a value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// NearlyEqual reports whether a and b differ by at most tolerance.
func NearlyEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// MapRangeClamped linearly maps value from [inMin, inMax] to [outMin, outMax],
// clamping to the output range.
func MapRangeClamped(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMin == inMax {
		if value >= inMax {
			return outMax
		}
		return outMin
	}
	t := Clamp((value-inMin)/(inMax-inMin), 0, 1)
	return outMin + (outMax-outMin)*t
}

// InterpAlpha returns the exponential blend factor 1 - e^(-speed*dt).
func InterpAlpha(dt, speed float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-speed*dt)
}

// FInterpTo moves current toward target with frame-rate independent
// exponential smoothing. A non-positive speed jumps straight to target.
func FInterpTo(current, target, dt, speed float64) float64 {
	if speed <= 0 {
		return target
	}
	dist := target - current
	if dist*dist < SmallNumber {
		return target
	}
	return current + dist*InterpAlpha(dt, speed)
}

// NormalizeAxis wraps an angle in degrees to (-180, 180].
func NormalizeAxis(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle > 180 {
		angle -= 360
	}
	return angle
}

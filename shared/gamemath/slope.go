package gamemath

import (
	"github.com/solarlune/resolv"
)

// SlopeSurfaceY returns the slope surface Y (space coordinates, y down) at x.
// upRightTag and upLeftTag are the resolv tags used to identify slope direction.
func SlopeSurfaceY(x float64, ramp *resolv.Object, upRightTag, upLeftTag string) float64 {
	relativeX := Clamp(x-ramp.X, 0, ramp.W)
	slope := relativeX / ramp.W

	if ramp.HasTags(upRightTag) {
		return ramp.Y + ramp.H*(1-slope)
	}
	if ramp.HasTags(upLeftTag) {
		return ramp.Y + ramp.H*slope
	}
	return ramp.Y
}

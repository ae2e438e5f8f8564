package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ZoomForFOV converts a field of view into a 2D zoom factor so that baseFOV
// renders at 1 and wider views zoom out. fov is clamped to [1, maxFOV].
func ZoomForFOV(fov, baseFOV, maxFOV float64) float64 {
	if baseFOV <= 0 || baseFOV >= 180 {
		return 1
	}
	fov = Clamp(fov, 1, math.Min(maxFOV, 179))
	return math.Tan(mgl64.DegToRad(baseFOV)/2) / math.Tan(mgl64.DegToRad(fov)/2)
}

// ClampView keeps a view of the given half extent inside [0, size]. A view
// wider than the level is centered on it.
func ClampView(center, halfExtent, size float64) float64 {
	if 2*halfExtent >= size {
		return size / 2
	}
	return Clamp(center, halfExtent, size-halfExtent)
}

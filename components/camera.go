package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position    math.Vec2 // Center of the view in space coordinates
	LookAheadX  float64   // Current smoothed X offset for look-ahead
	FieldOfView float64   // Degrees, written by the rider's controller
	Zoom        float64
}

var Camera = donburi.NewComponentType[CameraData]()

// PostProcessData holds the speed blur weight for the world layer.
type PostProcessData struct {
	BlendWeight float64
}

var PostProcess = donburi.NewComponentType[PostProcessData]()

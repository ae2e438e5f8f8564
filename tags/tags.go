package tags

import "github.com/yohamta/donburi"

var (
	Skater   = donburi.NewTag().SetName("Skater")
	Terrain  = donburi.NewTag().SetName("Terrain")
	DeadZone = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for terrain collision
const (
	ResolvSolid    = "solid"
	ResolvRamp     = "ramp"
	ResolvSkater   = "skater"
	ResolvDeadZone = "deadzone"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)

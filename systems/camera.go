package systems

import (
	"math"

	"github.com/automoto/skater/components"
	"github.com/automoto/skater/config"
	"github.com/automoto/skater/shared/gamemath"
	"github.com/automoto/skater/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the rider and turns the controller's field of view
// into a zoom. Positions are in space coordinates.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Zoom = gamemath.ZoomForFOV(camera.FieldOfView, config.Camera.BaseFOV, config.Camera.MaxFOV)

	skaterEntry, ok := tags.Skater.First(e.World)
	if !ok {
		return
	}
	skater := components.Skater.Get(skaterEntry)
	if skater.RespawnTimer > 0 {
		return // hold the view while the rider is away
	}

	level := getLevel(e)
	if level == nil || level.Current == nil {
		return
	}

	x, y := level.Tracer.ToSpace(skater.Character.Position)

	// Only update look-ahead when rolling - freeze offset when idle
	vx := skater.Character.Velocity.X()
	if math.Abs(vx) > config.Camera.LookAheadSpeedThreshold {
		target := math.Copysign(config.Camera.LookAheadDistanceX, vx)
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	halfW := float64(config.C.Width) / 2 / camera.Zoom
	halfH := float64(config.C.Height) / 2 / camera.Zoom

	// Keep the rider's feet GroundMarginY screen pixels above the bottom.
	targetX := x + camera.LookAheadX
	targetY := y + halfH - config.Camera.GroundMarginY/camera.Zoom

	targetX = gamemath.ClampView(targetX, halfW, float64(level.Current.Width))
	targetY = gamemath.ClampView(targetY, halfH, float64(level.Current.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

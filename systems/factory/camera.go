package factory

import (
	"github.com/automoto/skater/archetypes"
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position:    math.Vec2{X: x, Y: y},
		FieldOfView: cfg.Camera.BaseFOV,
		Zoom:        1,
	})
	return camera
}

// CreatePostProcess adds the speed blur target. Returns nil when the blur is
// disabled, so the rider's controller skips the blend mapping.
func CreatePostProcess(ecs *ecs.ECS, shaderLoaded bool) *donburi.Entry {
	if !cfg.PostProcess.Enabled || !shaderLoaded {
		return nil
	}
	return archetypes.PostProcess.Spawn(ecs)
}

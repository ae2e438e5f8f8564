package systems

import (
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/systems/factory"
	"github.com/automoto/skater/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates every rider against the park and moves its
// collision box to match.
func UpdateMovement(e *ecs.ECS) {
	level := getLevel(e)
	if level == nil || level.Tracer == nil {
		return
	}
	dt := tickSeconds()

	tags.Skater.Each(e.World, func(entry *donburi.Entry) {
		skater := components.Skater.Get(entry)
		if skater.RespawnTimer > 0 {
			return
		}

		res := skater.Character.Step(dt, level.Tracer)
		if res.Landed {
			queueSFX(entry, cfg.SoundLand)
		}

		obj := components.Object.Get(entry)
		factory.SyncObject(obj.Object, skater.Character.Position, level.Tracer.LevelHeight())
		obj.Update()
	})
}

// getLevel returns the loaded park, or nil before it is created.
func getLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

package archetypes

import (
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Terrain = newArchetype(
		tags.Terrain,
		components.Object,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Object,
	)
	Skater = newArchetype(
		tags.Skater,
		components.Skater,
		components.Object,
		components.JumpCue,
		components.SkateAudio,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	PostProcess = newArchetype(
		components.PostProcess,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

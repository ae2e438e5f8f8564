package factory

import (
	"github.com/automoto/skater/archetypes"
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/locomotion"
	"github.com/automoto/skater/movement"
	"github.com/automoto/skater/shared/gamemath"
	"github.com/automoto/skater/sound"
	"github.com/automoto/skater/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSkater spawns a rider with its feet at spawn (world coordinates).
// camera and post may be nil.
func CreateSkater(ecs *ecs.ECS, spawn mgl64.Vec3, camera, post *donburi.Entry) *donburi.Entry {
	skater := archetypes.Skater.Spawn(ecs)

	var level *components.LevelData
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level = components.Level.Get(levelEntry)
	}

	p := cfg.Movement
	obj := resolv.NewObject(0, 0, p.HalfWidth*2, p.Height, tags.ResolvSkater)
	obj.SetShape(resolv.NewRectangle(0, 0, p.HalfWidth*2, p.Height))
	obj.Data = skater
	components.Object.SetValue(skater, components.ObjectData{Object: obj})

	components.Skater.SetValue(skater, components.SkaterData{
		Character: movement.NewCharacter(spawn, p),
		Spawn:     spawn,
	})
	components.JumpCue.SetValue(skater, components.JumpCueData{Stretch: 1})
	components.SkateAudio.SetValue(skater, components.SkateAudioData{
		Fader: sound.NewFader(0),
	})

	controller := locomotion.New(newHost(skater, camera, post, level), cfg.Skate)
	controller.SetBoard(gamemath.Rotator{})
	components.Skater.Get(skater).Controller = controller

	if level != nil && level.Tracer != nil {
		SyncObject(obj, spawn, level.Tracer.LevelHeight())
	}
	addToSpace(ecs, obj)
	return skater
}

// SyncObject places a rider's collision box around feet at pos.
func SyncObject(obj *resolv.Object, pos mgl64.Vec3, levelHeight float64) {
	obj.X = pos.X() - obj.W/2
	obj.Y = levelHeight - pos.Z() - obj.H
}

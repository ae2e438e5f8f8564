package systems

import (
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/systems/factory"
	"github.com/automoto/skater/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn sends riders back to their spawn point when they touch a
// dead zone, fall out of the park or ask for it.
func UpdateRespawn(e *ecs.ECS) {
	level := getLevel(e)
	if level == nil || level.Tracer == nil {
		return
	}
	manual := GetAction(getOrCreateInput(e), cfg.ActionRespawn).JustPressed

	tags.Skater.Each(e.World, func(entry *donburi.Entry) {
		skater := components.Skater.Get(entry)

		if skater.RespawnTimer > 0 {
			skater.RespawnTimer--
			if skater.RespawnTimer == 0 {
				respawnSkater(entry, level.Tracer.LevelHeight())
			}
			return
		}

		obj := components.Object.Get(entry)
		fellOut := skater.Character.Position.Z() < -cfg.Respawn.FallMargin
		inDeadZone := obj.Check(0, 0, tags.ResolvDeadZone) != nil
		if !manual && !fellOut && !inDeadZone {
			return
		}

		// Silence the wheels while the rider is gone.
		if a := components.SkateAudio.Get(entry); a.Fader != nil {
			a.Fader.Set(0)
		}
		skater.RespawnTimer = cfg.Respawn.DelayFrames
		if skater.RespawnTimer <= 0 {
			respawnSkater(entry, level.Tracer.LevelHeight())
		}
	})
}

func respawnSkater(entry *donburi.Entry, levelHeight float64) {
	skater := components.Skater.Get(entry)
	skater.RespawnTimer = 0
	skater.Character.Teleport(skater.Spawn)
	skater.Controller.Reset()
	skater.Outputs = skater.Controller.LastOutputs()
	skater.WasJumping = false

	cue := components.JumpCue.Get(entry)
	*cue = components.JumpCueData{Stretch: 1}

	obj := components.Object.Get(entry)
	factory.SyncObject(obj.Object, skater.Spawn, levelHeight)
	obj.Update()
}

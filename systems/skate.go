package systems

import (
	"log"

	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/locomotion"
	"github.com/automoto/skater/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Last logged probe statuses, front then back.
var loggedProbes [2]locomotion.ProbeStatus

// tickSeconds is the fixed simulation step.
func tickSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdateSkaters feeds the frame's steering and jump to every rider's
// controller. The controller's sinks queue movement for UpdateMovement.
func UpdateSkaters(e *ecs.ECS) {
	input := getOrCreateInput(e)
	frame := locomotion.Frame{
		Steering:      input.Steering,
		JumpRequested: GetAction(input, cfg.ActionJump).JustPressed,
	}
	dt := tickSeconds()

	tags.Skater.Each(e.World, func(entry *donburi.Entry) {
		skater := components.Skater.Get(entry)
		if skater.RespawnTimer > 0 {
			return
		}

		skater.Outputs = skater.Controller.Update(dt, frame)
		if skater.Outputs.Jumping && !skater.WasJumping {
			queueSFX(entry, cfg.SoundPop)
		}
		skater.WasJumping = skater.Outputs.Jumping

		if cfg.Debug.LogProbes {
			logProbe(0, "front", skater.Outputs.FrontProbe)
			logProbe(1, "back", skater.Outputs.BackProbe)
		}
	})
}

// logProbe reports a wheel probe whenever its status changes.
func logProbe(i int, wheel string, p locomotion.ProbeResult) {
	if loggedProbes[i] == p.Status {
		return
	}
	loggedProbes[i] = p.Status
	log.Printf("probe %s: %s at %v", wheel, p.Status, p.Point)
}

// queueSFX asks the audio system to play an effect for a rider.
func queueSFX(entry *donburi.Entry, id cfg.SoundID) {
	if !entry.HasComponent(components.SkateAudio) {
		return
	}
	a := components.SkateAudio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, id)
}

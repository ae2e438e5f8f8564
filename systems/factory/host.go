package factory

import (
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// The adapters below hold entries rather than component pointers, so they
// always see the live component after archetype changes.

type boardPivot struct{ skater *donburi.Entry }

// BoardLocation is the rider's feet raised to the wheel axles.
func (b boardPivot) BoardLocation() mgl64.Vec3 {
	pos := components.Skater.Get(b.skater).Character.Position
	return pos.Add(mgl64.Vec3{0, 0, cfg.Board.WheelRadius})
}

type rollingSound struct{ skater *donburi.Entry }

func (r rollingSound) IsActive() bool {
	a := components.SkateAudio.Get(r.skater)
	return a.Player != nil && a.Player.IsPlaying()
}

// AdjustVolume fades linearly; it is the only curve the fader has.
func (r rollingSound) AdjustVolume(fadeSeconds, target float64, _ locomotion.FadeCurve) {
	a := components.SkateAudio.Get(r.skater)
	if a.Fader == nil {
		return
	}
	a.Fader.Adjust(fadeSeconds, target)
}

type cameraFOV struct{ camera *donburi.Entry }

func (c cameraFOV) SetFieldOfView(degrees float64) {
	components.Camera.Get(c.camera).FieldOfView = degrees
}

type speedBlur struct{ post *donburi.Entry }

func (s speedBlur) SetBlendWeight(weight float64) {
	components.PostProcess.Get(s.post).BlendWeight = weight
}

type boardFlick struct{ skater *donburi.Entry }

func (f boardFlick) PlayJumpCue() {
	components.JumpCue.Get(f.skater).Pending = true
}

// newHost wires a rider's controller to the world. Missing camera or
// post-process entries leave their sink nil.
func newHost(skater, camera, post *donburi.Entry, level *components.LevelData) locomotion.Host {
	character := components.Skater.Get(skater).Character
	host := locomotion.Host{
		Board:    boardPivot{skater},
		Movement: character,
		Airborne: character,
		Audio:    rollingSound{skater},
		JumpCue:  boardFlick{skater},
	}
	if level != nil && level.Tracer != nil {
		host.Ground = level.Tracer
	}
	if camera != nil {
		host.Camera = cameraFOV{camera}
	}
	if post != nil {
		host.PostProcess = speedBlur{post}
	}
	return host
}

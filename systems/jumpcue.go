package systems

import (
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJumpCues plays the board flick requested by a controller's jump.
// The flick rises fast and settles back over the fall time.
func UpdateJumpCues(e *ecs.ECS) {
	dt := float32(tickSeconds())

	components.JumpCue.Each(e.World, func(entry *donburi.Entry) {
		cue := components.JumpCue.Get(entry)
		if cue.Pending {
			cue.Pending = false
			cue.Sequence = newFlick()
		}
		if cue.Sequence == nil {
			return
		}

		t, _, done := cue.Sequence.Update(dt)
		cue.Flick = float64(t) * cfg.JumpCue.FlickDegrees
		cue.Stretch = 1 + float64(t)*(cfg.JumpCue.StretchY-1)
		if done {
			cue.Sequence = nil
			cue.Flick = 0
			cue.Stretch = 1
		}
	})
}

func newFlick() *gween.Sequence {
	return gween.NewSequence(
		gween.New(0, 1, float32(cfg.JumpCue.RiseSeconds), ease.OutQuad),
		gween.New(1, 0, float32(cfg.JumpCue.FallSeconds), ease.InOutQuad),
	)
}

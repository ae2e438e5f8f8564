package systems

import (
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause and mutes the wheels while paused.
// This system should run AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if !GetAction(input, cfg.ActionPause).JustPressed {
		return
	}
	pause.IsPaused = !pause.IsPaused

	components.SkateAudio.Each(e.World, func(entry *donburi.Entry) {
		a := components.SkateAudio.Get(entry)
		if a.Player == nil {
			return
		}
		if pause.IsPaused {
			a.Player.Pause()
		} else {
			a.Player.Play()
		}
	})
}

func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "PAUSED"
	face := fonts.Regular.Get()
	titleWidth := text.BoundString(face, title).Dx()
	text.Draw(screen, title, face, (width-titleWidth)/2, height/2, cfg.White)

	hint := getPauseHint(getOrCreateInput(e).LastInputMethod)
	small := fonts.Small.Get()
	hintWidth := text.BoundString(small, hint).Dx()
	text.Draw(screen, hint, small, (width-hintWidth)/2, height-12, cfg.UI.HUDTextColor)
}

// getPauseHint returns the resume hint for the last used device
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume"
	case components.InputXbox:
		return "Start: Resume"
	}
	return "Esc / P: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

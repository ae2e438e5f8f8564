package systems

import (
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Settings read from disk at startup, used to seed the Settings component.
var (
	startupSettings    SavedSettings
	hasStartupSettings bool
)

// UpdateSettings handles the in-game toggles: debug overlay, volume steps
// and fullscreen. Changes are saved right away.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)
	changed := false

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionVolume).JustPressed {
		settings.VolumeIndex = (settings.VolumeIndex + 1) % len(cfg.Audio.VolumeSteps)
		SetMasterVolume(volumeStep(settings.VolumeIndex))
		changed = true
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		data := components.SettingsData{
			VolumeIndex:     defaultVolumeIndex(),
			Debug:           cfg.Debug.Overlay,
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		}
		if hasStartupSettings {
			data.VolumeIndex = startupSettings.VolumeIndex
			data.ResolutionIndex = startupSettings.ResolutionIndex
			data.Debug = data.Debug || startupSettings.Debug
		}
		components.Settings.SetValue(entry, data)
	}
	return components.Settings.Get(entry)
}

// volumeStep maps a saved index onto the volume steps, clamping bad values.
func volumeStep(i int) float64 {
	steps := cfg.Audio.VolumeSteps
	if i < 0 || i >= len(steps) {
		return cfg.Audio.DefaultMasterVol
	}
	return steps[i]
}

func defaultVolumeIndex() int {
	for i, v := range cfg.Audio.VolumeSteps {
		if v == cfg.Audio.DefaultMasterVol {
			return i
		}
	}
	return len(cfg.Audio.VolumeSteps) - 1
}

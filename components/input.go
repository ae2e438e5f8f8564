package components

import (
	cfg "github.com/automoto/skater/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	// Steering is the rider's stick: X carves, Y pushes (+) or brakes (-).
	Steering mgl64.Vec2
}

var Input = donburi.NewComponentType[InputData]()

// SettingsData holds the player-facing toggles that get persisted.
type SettingsData struct {
	VolumeIndex     int // Index into config.Audio.VolumeSteps
	Debug           bool
	Fullscreen      bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()

package components

import (
	"github.com/automoto/skater/locomotion"
	"github.com/automoto/skater/movement"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SkaterData is a rider on a board. The controller decides what the board
// wants to do and the character carries it out.
type SkaterData struct {
	Controller *locomotion.Controller
	Character  *movement.Character
	Outputs    locomotion.Outputs // What the controller produced last tick

	Spawn        mgl64.Vec3
	RespawnTimer int // Frames left before the rider reappears
	WasJumping   bool
}

var Skater = donburi.NewComponentType[SkaterData]()

// JumpCueData drives the board flick and rider stretch played on a jump.
type JumpCueData struct {
	Pending  bool // Set by the controller, consumed by the cue system
	Sequence *gween.Sequence
	Flick    float64 // Extra board pitch in degrees
	Stretch  float64 // Rider vertical scale
}

var JumpCue = donburi.NewComponentType[JumpCueData]()

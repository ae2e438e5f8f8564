package config

import (
	"image/color"

	"github.com/automoto/skater/locomotion"
	"github.com/automoto/skater/movement"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows the rider (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
	BaseFOV                 float64 // FOV in degrees that renders at zoom 1
	MaxFOV                  float64 // Zoom is computed for FOVs up to this value
	GroundMarginY           float64 // Pixels kept below the rider's feet
}

// PostProcessConfig contains the speed blur settings
type PostProcessConfig struct {
	Enabled      bool
	MaxBlur      float64 // Blur radius in pixels at full blend weight
	Vignette     float64 // Vignette darkness at full blend weight (0.0-1.0)
	BlendEpsilon float64 // Below this weight the shader pass is skipped
}

// BoardConfig describes how the rider and board are drawn
type BoardConfig struct {
	DeckLength    float64
	DeckThickness float64
	WheelRadius   float64
	RiderWidth    float64
	RiderHeight   float64
	DeckColor     color.RGBA
	WheelColor    color.RGBA
	RiderColor    color.RGBA
}

// JumpCueConfig contains the board flick played on jump
type JumpCueConfig struct {
	FlickDegrees float64 // Extra nose-up pitch at the top of the flick
	RiseSeconds  float64
	FallSeconds  float64
	StretchY     float64 // Rider vertical stretch at the top of the flick
}

// RespawnConfig contains fall-out and dead zone handling
type RespawnConfig struct {
	FallMargin  float64 // Distance below the level floor that triggers a respawn
	DelayFrames int     // Frames before the rider reappears
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDFontSize    float64
	DebugFontSize  float64
	HUDMargin      float64
	HUDTextColor   color.RGBA
	HUDTextBgColor color.RGBA
	SpeedBarWidth  float64
	SpeedBarHeight float64
	SpeedBarColor  color.RGBA
	SkyColor       color.RGBA
	TerrainColor   color.RGBA
	RampColor      color.RGBA

	// Debug colors
	DebugProbeColor color.RGBA
	DebugHitColor   color.RGBA
	DebugMissColor  color.RGBA
	DebugBoxColor   color.RGBA
}

// MenuConfig contains park select menu layout
type MenuConfig struct {
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // Go straight to a park
	Overlay   bool // Draw probes and terrain outlines
	LogProbes bool // Log probe misses and hits at the origin
}

// SaveConfig names the persisted data
type SaveConfig struct {
	AppName     string
	SettingsKey string
}

// Global configuration instances
var C *Config
var Skate locomotion.Tuning
var Movement movement.Params
var Camera CameraConfig
var PostProcess PostProcessConfig
var Board BoardConfig
var JumpCue JumpCueConfig
var Respawn RespawnConfig
var UI UIConfig
var Menu MenuConfig
var Debug DebugConfig
var Save SaveConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Skater",
		TPS:    60,
	}

	Skate = locomotion.DefaultTuning()
	Movement = movement.DefaultParams()

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      80.0, // Skating is faster than walking, look further ahead
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 20.0, // px/s
		BaseFOV:                 90.0,
		MaxFOV:                  150.0,
		GroundMarginY:           90.0,
	}

	PostProcess = PostProcessConfig{
		Enabled:      true,
		MaxBlur:      6.0,
		Vignette:     0.45,
		BlendEpsilon: 0.01,
	}

	// Deck length matches the wheel socket spacing in Skate
	Board = BoardConfig{
		DeckLength:    60,
		DeckThickness: 4,
		WheelRadius:   4,
		RiderWidth:    14,
		RiderHeight:   34,
		DeckColor:     color.RGBA{R: 196, G: 120, B: 60, A: 255},
		WheelColor:    color.RGBA{R: 240, G: 235, B: 210, A: 255},
		RiderColor:    color.RGBA{R: 60, G: 90, B: 200, A: 255},
	}

	JumpCue = JumpCueConfig{
		FlickDegrees: 25,
		RiseSeconds:  0.12,
		FallSeconds:  0.25,
		StretchY:     1.25,
	}

	Respawn = RespawnConfig{
		FallMargin:  200,
		DelayFrames: 30,
	}

	UI = UIConfig{
		HUDFontSize:     12,
		DebugFontSize:   10,
		HUDMargin:       8,
		HUDTextColor:    White,
		HUDTextBgColor:  BlackOverlay,
		SpeedBarWidth:   120,
		SpeedBarHeight:  6,
		SpeedBarColor:   Orange,
		SkyColor:        color.RGBA{R: 120, G: 170, B: 220, A: 255},
		TerrainColor:    color.RGBA{R: 90, G: 90, B: 100, A: 255},
		RampColor:       color.RGBA{R: 130, G: 110, B: 90, A: 255},
		DebugProbeColor: Yellow,
		DebugHitColor:   Green,
		DebugMissColor:  Red,
		DebugBoxColor:   Magenta,
	}

	Menu = MenuConfig{
		TitleY:            80,
		MenuStartY:        130,
		MenuItemHeight:    16,
		MenuItemGap:       8,
		BackgroundColor:   color.RGBA{R: 20, G: 24, B: 36, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		Overlay:   false,
		LogProbes: false,
	}

	Save = SaveConfig{
		AppName:     "skater",
		SettingsKey: "settings",
	}
}

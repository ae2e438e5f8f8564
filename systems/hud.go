package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/fonts"
	"github.com/automoto/skater/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the rider's speed bar and readouts in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	skaterEntry, ok := tags.Skater.First(e.World)
	if !ok {
		return
	}
	out := components.Skater.Get(skaterEntry).Outputs
	ui := cfg.UI
	margin := float32(ui.HUDMargin)

	// Speed bar
	vector.DrawFilledRect(screen, margin, margin,
		float32(ui.SpeedBarWidth), float32(ui.SpeedBarHeight),
		color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, margin, margin,
		float32(ui.SpeedBarWidth*out.SmoothedSpeed), float32(ui.SpeedBarHeight),
		ui.SpeedBarColor, false)

	face := fonts.Regular.Get()
	state := "rolling"
	if out.Jumping {
		state = "airborne"
	}
	line := fmt.Sprintf("speed %.2f  fov %.0f  %s", out.SmoothedSpeed, out.FieldOfView, state)
	y := int(ui.HUDMargin+ui.SpeedBarHeight) + int(ui.HUDFontSize) + 4
	bounds := text.BoundString(face, line)
	vector.DrawFilledRect(screen,
		margin-2, float32(y+bounds.Min.Y-2),
		float32(bounds.Dx()+4), float32(bounds.Dy()+4),
		ui.HUDTextBgColor, false)
	text.Draw(screen, line, face, int(ui.HUDMargin), y, ui.HUDTextColor)

	if v := GetMasterVolume(); v == 0 {
		text.Draw(screen, "muted", fonts.Small.Get(), int(ui.HUDMargin), y+int(ui.HUDFontSize)+2, ui.HUDTextColor)
	}
}

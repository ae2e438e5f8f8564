package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/fonts"
	"github.com/automoto/skater/locomotion"
	"github.com/automoto/skater/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and shows the wheel probes.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	level := getLevel(e)
	if level == nil || level.Tracer == nil {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	v := newView(components.Camera.Get(cameraEntry), width, height)

	for _, obj := range level.Tracer.Space().Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvRamp):
			c = cfg.UI.RampColor
		case obj.HasTags(tags.ResolvSkater):
			c = cfg.UI.DebugBoxColor
		case obj.HasTags(tags.ResolvDeadZone):
			c = cfg.Red
		}
		x, y := v.toScreen(obj.X, obj.Y)
		vector.StrokeRect(screen, x, y, float32(obj.W*v.zoom), float32(obj.H*v.zoom), 1, c, false)
	}

	skaterEntry, ok := tags.Skater.First(e.World)
	if !ok {
		return
	}
	out := components.Skater.Get(skaterEntry).Outputs
	drawProbe(screen, v, level, out.FrontProbe)
	drawProbe(screen, v, level, out.BackProbe)

	face := fonts.Mono.Get()
	lines := []string{
		fmt.Sprintf("front %-10s back %s", out.FrontProbe.Status, out.BackProbe.Status),
		fmt.Sprintf("fwd %.3f strafe %.3f facing %.3f", out.ForwardInput, out.StrafeInput, out.VerticalFacing),
		fmt.Sprintf("pitch %.1f vol %.2f blend %.2f", out.Board.Pitch, out.Volume, out.BlendWeight),
	}
	for i, l := range lines {
		y := height - int(cfg.UI.HUDMargin) - (len(lines)-1-i)*int(cfg.UI.DebugFontSize+2)
		text.Draw(screen, l, face, int(cfg.UI.HUDMargin), y, cfg.UI.HUDTextColor)
	}
}

func drawProbe(screen *ebiten.Image, v view, level *components.LevelData, p locomotion.ProbeResult) {
	if p.Start == p.End {
		return
	}
	sx, sy := v.worldToScreen(level, p.Start)
	ex, ey := v.worldToScreen(level, p.End)
	vector.StrokeLine(screen, sx, sy, ex, ey, 1, cfg.UI.DebugProbeColor, false)

	if !p.Hit() {
		vector.DrawFilledCircle(screen, sx, sy, 2, cfg.UI.DebugMissColor, false)
		return
	}
	hx, hy := v.worldToScreen(level, p.Point)
	vector.DrawFilledCircle(screen, hx, hy, 2, cfg.UI.DebugHitColor, false)
}

package systems

import (
	"image"
	"image/color"

	"github.com/automoto/skater/assets"
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/locomotion"
	"github.com/automoto/skater/shared/gamemath"
	"github.com/automoto/skater/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	worldLayer *ebiten.Image

	// Source texture for filled polygons.
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// view maps space coordinates onto the screen for the current camera.
type view struct {
	camX, camY   float64
	zoom         float64
	halfW, halfH float64
}

func newView(camera *components.CameraData, width, height int) view {
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return view{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		zoom:  zoom,
		halfW: float64(width) / 2,
		halfH: float64(height) / 2,
	}
}

func (v view) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((y-v.camY)*v.zoom + v.halfH)
}

// worldToScreen projects a world point through the level's tracer.
func (v view) worldToScreen(level *components.LevelData, p mgl64.Vec3) (float32, float32) {
	return v.toScreen(level.Tracer.ToSpace(p))
}

// DrawWorld renders the park and riders to an offscreen layer, then blits it
// with the speed blur when the post-process weight calls for it.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	level := getLevel(e)
	if level == nil || level.Tracer == nil {
		return
	}

	bounds := screen.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if worldLayer == nil || worldLayer.Bounds().Dx() != width || worldLayer.Bounds().Dy() != height {
		worldLayer = ebiten.NewImage(width, height)
	}
	worldLayer.Fill(cfg.UI.SkyColor)

	v := newView(components.Camera.Get(cameraEntry), width, height)
	drawTerrain(e, worldLayer, v)
	tags.Skater.Each(e.World, func(entry *donburi.Entry) {
		drawSkater(entry, worldLayer, v, level)
	})

	weight := 0.0
	if postEntry, ok := components.PostProcess.First(e.World); ok {
		weight = components.PostProcess.Get(postEntry).BlendWeight
	}
	if assets.SpeedBlurShader == nil || weight < cfg.PostProcess.BlendEpsilon {
		screen.DrawImage(worldLayer, nil)
		return
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = worldLayer
	op.Uniforms = map[string]any{
		"Weight":   float32(weight),
		"MaxBlur":  float32(cfg.PostProcess.MaxBlur),
		"Vignette": float32(cfg.PostProcess.Vignette),
	}
	screen.DrawRectShader(width, height, assets.SpeedBlurShader, op)
}

func drawTerrain(e *ecs.ECS, dst *ebiten.Image, v view) {
	tags.Terrain.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		if obj.HasTags(tags.ResolvRamp) {
			drawRamp(dst, v, obj)
			return
		}
		x, y := v.toScreen(obj.X, obj.Y)
		vector.DrawFilledRect(dst, x, y, float32(obj.W*v.zoom), float32(obj.H*v.zoom), cfg.UI.TerrainColor, false)
	})
}

// drawRamp fills the area under a ramp's surface line.
func drawRamp(dst *ebiten.Image, v view, ramp *resolv.Object) {
	left := gamemath.SlopeSurfaceY(ramp.X, ramp, tags.Slope45UpRight, tags.Slope45UpLeft)
	right := gamemath.SlopeSurfaceY(ramp.X+ramp.W, ramp, tags.Slope45UpRight, tags.Slope45UpLeft)
	bottom := ramp.Y + ramp.H

	var path vector.Path
	path.MoveTo(v.toScreen(ramp.X, left))
	path.LineTo(v.toScreen(ramp.X+ramp.W, right))
	path.LineTo(v.toScreen(ramp.X+ramp.W, bottom))
	path.LineTo(v.toScreen(ramp.X, bottom))
	path.Close()

	fillPath(dst, &path, cfg.UI.RampColor)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// drawSkater draws the board along its aligned pitch, plus the jump flick,
// with the rider standing on the deck.
func drawSkater(entry *donburi.Entry, dst *ebiten.Image, v view, level *components.LevelData) {
	skater := components.Skater.Get(entry)
	if skater.RespawnTimer > 0 {
		return
	}
	cue := components.JumpCue.Get(entry)

	board := skater.Controller.State().Board
	board.Pitch += cue.Flick
	pivot := skater.Character.Position.Add(mgl64.Vec3{0, 0, cfg.Board.WheelRadius})
	front, back := locomotion.WheelAnchors(pivot, board, skater.Controller.Tuning())

	// Wheels
	wheelR := float32(cfg.Board.WheelRadius * v.zoom)
	for _, w := range []mgl64.Vec3{front, back} {
		x, y := v.worldToScreen(level, w)
		vector.DrawFilledCircle(dst, x, y, wheelR, cfg.Board.WheelColor, true)
	}

	// Deck sits on top of the axles and extends past them to the nose and tail.
	up := board.Up().Mul(cfg.Board.WheelRadius + cfg.Board.DeckThickness/2)
	half := board.Forward().Mul(cfg.Board.DeckLength / 2)
	center := pivot.Add(up)
	nx, ny := v.worldToScreen(level, center.Add(half))
	tx, ty := v.worldToScreen(level, center.Sub(half))
	vector.StrokeLine(dst, tx, ty, nx, ny, float32(cfg.Board.DeckThickness*v.zoom), cfg.Board.DeckColor, true)

	// Rider
	riderH := cfg.Board.RiderHeight * cue.Stretch
	feet := center.Add(board.Up().Mul(cfg.Board.DeckThickness / 2))
	fx, fy := v.worldToScreen(level, feet)
	rw := float32(cfg.Board.RiderWidth * v.zoom)
	rh := float32(riderH * v.zoom)
	vector.DrawFilledRect(dst, fx-rw/2, fy-rh, rw, rh, cfg.Board.RiderColor, false)
}

// Package terrain answers ground queries against a level's resolv space.
//
// World space is X forward, Y right and Z up. The level is a side view, so
// Y is ignored and the resolv space maps X directly and Z as levelHeight-y.
package terrain

import (
	"math"

	"github.com/automoto/skater/shared/gamemath"
	"github.com/automoto/skater/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Tracer performs line traces and overlap tests against solid and ramp
// objects in a resolv space.
type Tracer struct {
	space       *resolv.Space
	levelHeight float64
}

func NewTracer(space *resolv.Space, levelHeight float64) *Tracer {
	return &Tracer{space: space, levelHeight: levelHeight}
}

// Space returns the underlying collision space.
func (t *Tracer) Space() *resolv.Space {
	return t.space
}

func (t *Tracer) LevelHeight() float64 {
	return t.levelHeight
}

// ToSpace converts a world position to resolv coordinates.
func (t *Tracer) ToSpace(p mgl64.Vec3) (x, y float64) {
	return p.X(), t.levelHeight - p.Z()
}

// ToWorld converts resolv coordinates to a world position on the Y=0 plane.
func (t *Tracer) ToWorld(x, y float64) mgl64.Vec3 {
	return mgl64.Vec3{x, 0, t.levelHeight - y}
}

// surface is the walkable top edge of an object: z = a + b*x over [x0, x1].
type surface struct {
	x0, x1 float64
	a, b   float64
}

func (s surface) heightAt(x float64) float64 {
	return s.a + s.b*x
}

func (t *Tracer) surfaceOf(obj *resolv.Object) (surface, bool) {
	if obj.W <= 0 {
		return surface{}, false
	}

	x0, x1 := obj.X, obj.X+obj.W
	switch {
	case obj.HasTags(tags.ResolvRamp):
		z0 := t.levelHeight - gamemath.SlopeSurfaceY(x0, obj, tags.Slope45UpRight, tags.Slope45UpLeft)
		z1 := t.levelHeight - gamemath.SlopeSurfaceY(x1, obj, tags.Slope45UpRight, tags.Slope45UpLeft)
		b := (z1 - z0) / (x1 - x0)
		return surface{x0: x0, x1: x1, a: z0 - b*x0, b: b}, true
	case obj.HasTags(tags.ResolvSolid):
		return surface{x0: x0, x1: x1, a: t.levelHeight - obj.Y}, true
	default:
		return surface{}, false
	}
}

func (t *Tracer) surfaces() []surface {
	if t.space == nil {
		return nil
	}
	var out []surface
	for _, obj := range t.space.Objects() {
		if s, ok := t.surfaceOf(obj); ok {
			out = append(out, s)
		}
	}
	return out
}

// LineTrace returns the first ground surface crossed by the segment from
// start to end. A miss returns the zero vector and false.
func (t *Tracer) LineTrace(start, end mgl64.Vec3) (mgl64.Vec3, bool) {
	dir := end.Sub(start)
	best := math.Inf(1)

	for _, s := range t.surfaces() {
		// Solve start.z + f*dir.z = a + b*(start.x + f*dir.x) for f.
		denom := dir.Z() - s.b*dir.X()
		if denom == 0 {
			continue
		}
		f := (s.heightAt(start.X()) - start.Z()) / denom
		if f < 0 || f > 1 || f >= best {
			continue
		}
		x := start.X() + f*dir.X()
		if x < s.x0 || x > s.x1 {
			continue
		}
		best = f
	}

	if math.IsInf(best, 1) {
		return mgl64.Vec3{}, false
	}
	return start.Add(dir.Mul(best)), true
}

// GroundBelow returns the highest ground surface at x that is not above z.
func (t *Tracer) GroundBelow(x, z float64) (float64, bool) {
	found := false
	ground := math.Inf(-1)

	for _, s := range t.surfaces() {
		if x < s.x0 || x > s.x1 {
			continue
		}
		h := s.heightAt(x)
		if h <= z && h > ground {
			ground = h
			found = true
		}
	}
	return ground, found
}

// Blocked reports whether a body of the given half width and height standing
// with its feet at (x, z) overlaps solid terrain. Ramps never block.
func (t *Tracer) Blocked(x, z, halfWidth, height float64) bool {
	if t.space == nil {
		return false
	}

	// Lift the probe a hair so a body resting on a surface does not count.
	const lift = 0.5
	top := t.levelHeight - z - height
	probe := resolv.NewObject(x-halfWidth, top, halfWidth*2, height-lift)
	probe.SetShape(resolv.NewRectangle(0, 0, halfWidth*2, height-lift))
	t.space.Add(probe)
	defer t.space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	// Check is cell based; confirm with an exact overlap.
	for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
		if probe.X < obj.X+obj.W && probe.X+probe.W > obj.X &&
			probe.Y < obj.Y+obj.H && probe.Y+probe.H > obj.Y {
			return true
		}
	}
	return false
}

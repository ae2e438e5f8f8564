package terrain

import (
	"github.com/automoto/skater/tags"
	"github.com/solarlune/resolv"
)

// NewSolid creates a solid box in resolv coordinates.
func NewSolid(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// NewRamp creates a ramp whose surface is computed from its slope tag.
// An unknown slope gives a flat ramp along the top edge.
func NewRamp(x, y, w, h float64, slope string) *resolv.Object {
	objTags := []string{tags.ResolvRamp}
	if slope != "" {
		objTags = append(objTags, slope)
	}
	obj := resolv.NewObject(x, y, w, h, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// NewDeadZone creates a trigger volume that respawns riders.
func NewDeadZone(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

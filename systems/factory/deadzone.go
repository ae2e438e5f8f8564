package factory

import (
	"github.com/automoto/skater/archetypes"
	"github.com/automoto/skater/components"
	"github.com/automoto/skater/terrain"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible volume that respawns a rider on contact
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	entry := archetypes.DeadZone.Spawn(ecs)
	obj := terrain.NewDeadZone(x, y, w, h)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return entry
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

package factory

import (
	"fmt"

	"github.com/automoto/skater/archetypes"
	"github.com/automoto/skater/components"
	"github.com/automoto/skater/shared/leveldata"
	"github.com/automoto/skater/terrain"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel fills the collision space with a park's terrain and dead
// zones. The space must exist.
func CreateLevel(ecs *ecs.ECS, data *leveldata.LevelData) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("level %q: no collision space", data.Name)
	}
	space := components.Space.Get(spaceEntry)

	for _, t := range data.Terrain {
		CreateTerrain(ecs, t)
	}
	for _, dz := range data.DeadZones {
		CreateDeadZone(ecs, dz.X, dz.Y, dz.W, dz.H)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Current: data,
		Tracer:  terrain.NewTracer(space, float64(data.Height)),
	})
	return level, nil
}

// CreateTerrain adds a solid box or ramp from the park file.
func CreateTerrain(ecs *ecs.ECS, t leveldata.TerrainRect) *donburi.Entry {
	entry := archetypes.Terrain.Spawn(ecs)

	obj := terrain.NewSolid(t.X, t.Y, t.W, t.H)
	if t.Kind == leveldata.KindRamp {
		obj = terrain.NewRamp(t.X, t.Y, t.W, t.H, t.SlopeType)
	}
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return entry
}

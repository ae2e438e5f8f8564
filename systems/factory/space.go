package factory

import (
	"github.com/automoto/skater/archetypes"
	"github.com/automoto/skater/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace sizes the collision grid to the park.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}

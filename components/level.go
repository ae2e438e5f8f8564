package components

import (
	"github.com/automoto/skater/shared/leveldata"
	"github.com/automoto/skater/terrain"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *leveldata.LevelData
	Tracer  *terrain.Tracer
}

var Level = donburi.NewComponentType[LevelData]()

// Package leveldata parses TMX skate parks into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// TerrainKind says how a terrain rect collides.
type TerrainKind string

const (
	KindSolid TerrainKind = "solid"
	KindRamp  TerrainKind = "ramp"
)

// LevelData holds everything the game needs from a TMX park file.
// Coordinates are TMX pixels with y pointing down.
type LevelData struct {
	Name        string
	Terrain     []TerrainRect
	SpawnPoints []SpawnPoint
	DeadZones   []Rect
	Width       int
	Height      int
}

type Rect struct {
	X, Y, W, H float64
}

// TerrainRect is a solid box or a ramp.
type TerrainRect struct {
	Rect
	Kind      TerrainKind
	SlopeType string // "", "45_up_right", "45_up_left"
}

// SpawnPoint is where a rider's feet start.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

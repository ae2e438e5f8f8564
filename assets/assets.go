package assets

import (
	"embed"

	"github.com/automoto/skater/shared/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// LoadLevels parses every embedded park. Names are sorted.
func LoadLevels() (map[string]*leveldata.LevelData, []string, error) {
	return leveldata.LoadAllLevels(levelFS, "levels")
}

package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	ErrNoSpawn   = errors.New("level has no PlayerSpawn objects")
	ErrNoTerrain = errors.New("level has no Terrain objects")
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass an
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Terrain":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Terrain = append(data.Terrain, TerrainRect{
					Rect:      Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Kind:      terrainKind(objectClass(o)),
					SlopeType: o.Properties.GetString("slope"),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "DeadZones":
			for _, o := range og.Objects {
				data.DeadZones = append(data.DeadZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	if len(data.Terrain) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoTerrain)
	}
	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort spawns by index, then left to right
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		a, b := data.SpawnPoints[i], data.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return data, nil
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}

func terrainKind(class string) TerrainKind {
	if TerrainKind(strings.ToLower(class)) == KindRamp {
		return KindRamp
	}
	return KindSolid
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

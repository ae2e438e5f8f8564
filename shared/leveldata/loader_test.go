package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const parkTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="15" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="10">
 <objectgroup id="1" name="Terrain">
  <object id="1" type="solid" x="0" y="200" width="640" height="40"/>
  <object id="2" type="ramp" x="160" y="160" width="40" height="40">
   <properties>
    <property name="slope" value="45_up_right"/>
   </properties>
  </object>
  <object id="3" x="300" y="120" width="80" height="80"/>
  <object id="4" type="solid" x="500" y="100" width="0" height="0"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="5" x="96" y="200">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="6" x="32" y="200"/>
 </objectgroup>
 <objectgroup id="3" name="DeadZones">
  <object id="7" x="600" y="230" width="40" height="10"/>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Terrain">
  <object id="1" type="solid" x="0" y="48" width="64" height="16"/>
 </objectgroup>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/park.tmx": {Data: []byte(parkTMX)}}

	level, err := LoadLevel(fsys, "levels/park.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "park" {
		t.Errorf("Name = %q, want park", level.Name)
	}
	if level.Width != 640 || level.Height != 240 {
		t.Errorf("size = %dx%d, want 640x240", level.Width, level.Height)
	}

	// The zero-sized object is skipped
	if len(level.Terrain) != 3 {
		t.Fatalf("terrain count = %d, want 3", len(level.Terrain))
	}
	floor, ramp, box := level.Terrain[0], level.Terrain[1], level.Terrain[2]
	if floor.Kind != KindSolid || floor.W != 640 || floor.Y != 200 {
		t.Errorf("floor = %+v", floor)
	}
	if ramp.Kind != KindRamp || ramp.SlopeType != "45_up_right" {
		t.Errorf("ramp = %+v", ramp)
	}
	if box.Kind != KindSolid {
		t.Errorf("untyped terrain should be solid, got %q", box.Kind)
	}

	if len(level.SpawnPoints) != 2 {
		t.Fatalf("spawn count = %d, want 2", len(level.SpawnPoints))
	}
	if first := level.SpawnPoints[0]; first.X != 32 || first.Index != 0 {
		t.Errorf("first spawn = %+v, want index 0 at x=32", first)
	}

	if len(level.DeadZones) != 1 || level.DeadZones[0].W != 40 {
		t.Errorf("dead zones = %+v", level.DeadZones)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/nospawn.tmx": {Data: []byte(noSpawnTMX)},
		"levels/broken.tmx":  {Data: []byte("<map")},
	}

	if _, err := LoadLevel(fsys, "levels/nospawn.tmx"); !errors.Is(err, ErrNoSpawn) {
		t.Errorf("err = %v, want ErrNoSpawn", err)
	}
	if _, err := LoadLevel(fsys, "levels/broken.tmx"); err == nil {
		t.Errorf("expected a parse error")
	}
	if _, err := LoadLevel(fsys, "levels/missing.tmx"); err == nil {
		t.Errorf("expected a missing file error")
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b_park.tmx": {Data: []byte(parkTMX)},
		"levels/a_park.tmx": {Data: []byte(parkTMX)},
		"levels/readme.txt": {Data: []byte("not a level")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "a_park" || names[1] != "b_park" {
		t.Fatalf("names = %v", names)
	}
	if levels["b_park"] == nil {
		t.Fatalf("missing b_park")
	}

	if _, _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Fatalf("expected an error for an empty directory")
	}
}

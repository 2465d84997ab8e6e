package assets

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestEmbeddedLevels(t *testing.T) {
	levels, err := NewLevelLoader().LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(levels) < 2 {
		t.Fatalf("got %d levels, want at least 2", len(levels))
	}

	for i, l := range levels {
		if want := "Level " + string(rune('1'+i)); l.Name != want {
			t.Errorf("level %d named %q, want %q", i, l.Name, want)
		}
		if l.Width != 80*32 || l.Height != 15*32 {
			t.Errorf("%s: size %dx%d", l.Name, l.Width, l.Height)
		}
		if len(l.Ground) == 0 || len(l.Through) == 0 || len(l.Enemies) == 0 {
			t.Errorf("%s: ground=%d through=%d enemies=%d", l.Name, len(l.Ground), len(l.Through), len(l.Enemies))
		}
		if len(l.PlayerSpawns) < 2 {
			t.Errorf("%s: %d spawns", l.Name, len(l.PlayerSpawns))
		}
	}
}

func TestSpawnsSortedByIndex(t *testing.T) {
	levels, err := NewLevelLoader().LoadLevels()
	if err != nil {
		t.Fatal(err)
	}
	first := levels[0]

	// level_01 lists spawn 1 before spawn 0.
	if got := first.Spawn(0); got.SpawnIndex != 0 || got.X != 96 || got.Y != 448 {
		t.Errorf("spawn 0 = %+v", got)
	}
	if got := first.Spawn(1); got.SpawnIndex != 1 || got.X != 160 {
		t.Errorf("spawn 1 = %+v", got)
	}
}

const miniMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="6">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="64" width="160" height="16"/>
  <object id="2" x="40" y="20"/>
 </objectgroup>
 <objectgroup id="2" name="Enemies">
  <object id="3" x="100" y="48" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="4" x="20" y="64">
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoadLevelFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/a.tmx":     {Data: []byte(miniMap)},
		"maps/notes.txt": {Data: []byte("ignored")},
	}
	levels, err := NewLevelLoaderFS(fsys, "maps").LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("got %d levels", len(levels))
	}
	l := levels[0]

	if l.Width != 160 || l.Height != 80 {
		t.Errorf("size %dx%d, want 160x80", l.Width, l.Height)
	}
	if len(l.Ground) != 1 {
		t.Errorf("ground = %+v, zero-size object should be skipped", l.Ground)
	}
	if len(l.Enemies) != 1 || l.Enemies[0].Name != "enemy" {
		t.Errorf("enemies = %+v", l.Enemies)
	}
	// One spawn serves both players.
	if a, b := l.Spawn(0), l.Spawn(1); a != b {
		t.Errorf("spawns differ: %+v %+v", a, b)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	noSpawn := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="48" width="64" height="16"/>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"m/empty.tmx": {Data: []byte(noSpawn)}}

	_, err := NewLevelLoaderFS(fsys, "m").LoadLevel("m/empty.tmx")
	if !errors.Is(err, ErrNoSpawns) {
		t.Errorf("err = %v, want ErrNoSpawns", err)
	}

	if _, err := NewLevelLoaderFS(fsys, "m").LoadLevel("m/missing.tmx"); err == nil {
		t.Error("missing file loaded")
	}

	if _, err := NewLevelLoaderFS(fstest.MapFS{}, "none").LoadLevels(); err == nil {
		t.Error("empty directory loaded")
	}
}

func TestLevelIndex(t *testing.T) {
	levels, err := NewLevelLoader().LoadLevels()
	if err != nil {
		t.Fatal(err)
	}
	ptrs := make([]*Level, len(levels))
	for i := range levels {
		ptrs[i] = &levels[i]
	}

	if got := LevelIndex(ptrs, "Level 2"); got != 1 {
		t.Errorf("Level 2 at %d, want 1", got)
	}
	if got := LevelIndex(ptrs, "Main Menu"); got != -1 {
		t.Errorf("menu found among levels at %d", got)
	}
	if got := LevelIndex(nil, "Level 1"); got != -1 {
		t.Errorf("empty list gave %d", got)
	}
}

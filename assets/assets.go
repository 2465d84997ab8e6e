// Package assets loads the embedded Tiled levels. It has no engine
// dependency so level data can be checked without a display.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// Object group names read from a .tmx file.
const (
	GroupGround      = "Ground"
	GroupWalls       = "Walls"
	GroupThrough     = "Through"
	GroupEnemies     = "Enemies"
	GroupPlayerSpawn = "PlayerSpawn"
)

// ErrNoSpawns is returned for a map without a PlayerSpawn object.
var ErrNoSpawns = errors.New("no player spawn points defined in map")

// Rect is an axis-aligned box in level pixels, Y down.
type Rect struct {
	X, Y, Width, Height float64
}

// PlayerSpawn is a point object. X,Y is where the player's feet go.
type PlayerSpawn struct {
	X          float64
	Y          float64
	SpawnIndex int // parsed from the Tiled "spawnIndex" property
}

type EnemySpawn struct {
	Rect
	Name string
}

type Level struct {
	Name         string
	Path         string
	Width        int
	Height       int
	Ground       []Rect // solid, and counts as ground for the jump probe
	Walls        []Rect // solid only
	Through      []Rect // solid ground an invisible player passes through
	Enemies      []EnemySpawn
	PlayerSpawns []PlayerSpawn
}

// Spawn returns the spawn for player i. Maps with fewer spawns than players
// reuse them in order.
func (l *Level) Spawn(i int) PlayerSpawn {
	if len(l.PlayerSpawns) == 0 {
		return PlayerSpawn{X: float64(l.Width) / 2, Y: 0}
	}
	return l.PlayerSpawns[i%len(l.PlayerSpawns)]
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads levels from the embedded levels directory.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: "levels"}
}

// NewLevelLoaderFS reads levels from dir inside fsys.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadLevels parses every .tmx in the loader's directory in file name order
// and names them "Level 1", "Level 2", ...
func (l *LevelLoader) LoadLevels() ([]Level, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var levels []Level
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".tmx" {
			continue
		}
		level, err := l.LoadLevel(path.Join(l.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		level.Name = fmt.Sprintf("Level %d", len(levels)+1)
		levels = append(levels, level)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no level files found in %s", l.dir)
	}
	return levels, nil
}

// LevelIndex returns the position of the level called name, or -1.
func LevelIndex(levels []*Level, name string) int {
	for i, l := range levels {
		if l.Name == name {
			return i
		}
	}
	return -1
}

func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := Level{
		Name:   levelPath,
		Path:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			level.Ground = appendRects(level.Ground, og.Objects)
		case GroupWalls:
			level.Walls = appendRects(level.Walls, og.Objects)
		case GroupThrough:
			level.Through = appendRects(level.Through, og.Objects)
		case GroupEnemies:
			for _, o := range og.Objects {
				name := o.Name
				if name == "" {
					name = "enemy"
				}
				level.Enemies = append(level.Enemies, EnemySpawn{
					Rect: Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Name: name,
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
					X:          o.X,
					Y:          o.Y,
					SpawnIndex: o.Properties.GetInt("spawnIndex"),
				})
			}
			sort.SliceStable(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].SpawnIndex < level.PlayerSpawns[j].SpawnIndex
			})
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return Level{}, fmt.Errorf("level %s: %w", levelPath, ErrNoSpawns)
	}
	return level, nil
}

func appendRects(dst []Rect, objs []*tiled.Object) []Rect {
	for _, o := range objs {
		if o.Width <= 0 || o.Height <= 0 {
			continue
		}
		dst = append(dst, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	return dst
}

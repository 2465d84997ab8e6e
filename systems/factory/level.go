package factory

import (
	"github.com/automoto/duodash/archetypes"
	"github.com/automoto/duodash/assets"
	"github.com/automoto/duodash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the level data and creates its collision space and
// every collider and enemy it lists. Players are spawned by the scene.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, levelIndex int) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		LevelIndex:   levelIndex,
	})

	CreateSpace(ecs, level.Width, level.Height)

	for _, r := range level.Ground {
		CreateGround(ecs, r)
	}
	for _, r := range level.Walls {
		CreateWall(ecs, r)
	}
	for _, r := range level.Through {
		CreateThrough(ecs, r)
	}
	for _, e := range level.Enemies {
		CreateEnemy(ecs, e)
	}

	return entry
}

package factory

import (
	"github.com/automoto/duodash/archetypes"
	"github.com/automoto/duodash/assets"
	"github.com/automoto/duodash/components"
	"github.com/automoto/duodash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates a solid box players can stand and jump from.
func CreateGround(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	return createCollider(ecs, archetypes.Ground.Spawn(ecs), r, tags.ResolvSolid, tags.ResolvGround)
}

// CreateWall creates a solid box that is not ground: landing on it does not
// allow a jump.
func CreateWall(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	return createCollider(ecs, archetypes.Wall.Spawn(ecs), r, tags.ResolvSolid)
}

// CreateThrough creates solid ground that an invisible player passes
// through.
func CreateThrough(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	return createCollider(ecs, archetypes.Through.Spawn(ecs), r, tags.ResolvSolid, tags.ResolvGround, tags.ResolvThrough)
}

// CreateEnemy creates a non-solid trigger volume.
func CreateEnemy(ecs *ecs.ECS, spawn assets.EnemySpawn) *donburi.Entry {
	enemy := createCollider(ecs, archetypes.Enemy.Spawn(ecs), spawn.Rect, tags.ResolvEnemy)
	components.Enemy.SetValue(enemy, components.EnemyData{Name: spawn.Name})
	return enemy
}

func createCollider(ecs *ecs.ECS, entry *donburi.Entry, r assets.Rect, resolvTags ...string) *donburi.Entry {
	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height, resolvTags...)
	obj.Data = entry // Link for O(1) lookup

	data := components.ObjectData{Object: obj}
	components.Object.SetValue(entry, data)
	addToSpace(ecs, &data)
	return entry
}

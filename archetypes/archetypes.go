package archetypes

import (
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Physics,
		components.Sprite,
		components.SquashStretch,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Through = newArchetype(
		tags.Through,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
	)
	TrailGhost = newArchetype(
		tags.Ghost,
		components.TrailGhost,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package factory

import (
	"github.com/automoto/duodash/archetypes"
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/physics"
	"github.com/automoto/duodash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision world for a level of width x height
// pixels.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	world := physics.NewWorld(physics.Config{
		PixelsPerUnit: cfg.PixelsPerUnit,
		Gravity:       cfg.Physics.Gravity,
		MaxFallSpeed:  cfg.Physics.MaxFallSpeed,
		SolidTags:     []string{tags.ResolvSolid},
	}, width, height, cfg.Physics.CellSize)
	components.Space.SetValue(space, components.SpaceData{World: world})
	return space
}

func addToSpace(ecs *ecs.ECS, obj *components.ObjectData) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj.Object)
	}
}

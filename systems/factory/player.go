package factory

import (
	"github.com/automoto/duodash/archetypes"
	"github.com/automoto/duodash/assets"
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns player index with its feet on spawn. The controller is
// attached separately by systems.AttachController.
func CreatePlayer(ecs *ecs.ECS, index int, spawn assets.PlayerSpawn) *donburi.Entry {
	pc := cfg.Players[index]
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(pc.CollisionWidth), float64(pc.CollisionHeight)
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, tags.ResolvPlayer)
	obj.Data = player
	data := components.ObjectData{Object: obj}
	components.Object.SetValue(player, data)
	addToSpace(ecs, &data)

	components.Player.SetValue(player, components.PlayerData{
		Index:    index,
		Name:     pc.Name,
		Touching: make(map[*donburi.Entry]struct{}),
		SpawnX:   spawn.X,
		SpawnY:   spawn.Y,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		PlayerIndex:   index,
		ControlScheme: pc.ControlScheme,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		GravityScale: pc.GravityScale,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Color:   pc.Color,
		Opacity: 1,
		Params:  make(map[string]float64),
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1, ScaleY: 1,
	})

	return player
}

package systems

import (
	"sort"

	"github.com/automoto/duodash/ability"
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/logging"
	"github.com/automoto/duodash/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// AttachController builds the ability controller of a freshly spawned player
// and binds it to the entity's components.
func AttachController(ecs *ecs.ECS, entry *donburi.Entry) *ability.Controller {
	space := GetSpace(ecs)
	player := components.Player.Get(entry)
	pc := cfg.Players[player.Index]

	var world ability.World
	if space != nil {
		world = worldPort{self: entry, space: space}
	}
	var body ability.Body
	if space != nil {
		body = bodyPort{entry: entry, space: space}
	}

	player.Controller = ability.New(pc.Ability, body, visualPort{entry: entry}, world,
		ability.WithLogger(logging.L().Named("ability")),
		ability.WithName(player.Name),
		ability.WithEnemyHook(func(ability.Handle) {
			if entry.Valid() {
				components.Player.Get(entry).Hits++
			}
		}),
	)
	return player.Controller
}

// UpdatePlayer ticks every player's controller with the scaled frame time.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	levelHeight := levelHeight(ecs)

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Controller == nil {
			return
		}
		input := components.PlayerInput.Get(entry)
		player.Controller.Tick(dt, inputPort{input: input})

		if obj := components.Object.Get(entry); levelHeight > 0 && obj.Y > levelHeight+obj.H {
			respawn(ecs, entry)
		}
	})
}

// respawn puts a player that fell out of the level back on its spawn point.
func respawn(ecs *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	obj.X = player.SpawnX - obj.W/2
	obj.Y = player.SpawnY - obj.H
	obj.Update()
	components.Physics.Get(entry).Velocity = physics.Velocity{}
	logging.L().Named("player").Info("player respawned", zap.String("player", player.Name))
}

// TeardownPlayers releases every active ability. Scenes call it before the
// world is discarded so nothing stays engaged.
func TeardownPlayers(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		if c := components.Player.Get(entry).Controller; c != nil {
			c.Teardown()
		}
	})
}

// ApplyControllerConfigs pushes the current player config to live
// controllers after a tuning reload.
func ApplyControllerConfigs(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Controller != nil {
			player.Controller.SetConfig(cfg.Players[player.Index].Ability)
		}
	})
}

// Players returns the player entries ordered by index.
func Players(ecs *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Player.Get(out[i]).Index < components.Player.Get(out[j]).Index
	})
	return out
}

// GetSpace returns the level's collision world, or nil before it exists.
func GetSpace(ecs *ecs.ECS) *physics.World {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).World
}

func levelHeight(ecs *ecs.ECS) float64 {
	if level := GetLevel(ecs); level != nil && level.CurrentLevel != nil {
		return float64(level.CurrentLevel.Height)
	}
	return 0
}

// GetLevel returns the loaded level data, or nil.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

package systems

import (
	"github.com/automoto/duodash/ability"
	"github.com/automoto/duodash/components"
	"github.com/automoto/duodash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers reports the first tick of each player/enemy overlap to the
// player's controller. Staying inside an enemy does not report again.
func UpdateTriggers(ecs *ecs.ECS) {
	space := GetSpace(ecs)
	if space == nil {
		return
	}

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		obj := components.Object.Get(entry)

		touching := make(map[*donburi.Entry]struct{}, len(player.Touching))
		for _, o := range space.Overlapping(obj.Object, tags.ResolvEnemy) {
			other, ok := o.Data.(*donburi.Entry)
			if !ok {
				continue
			}
			touching[other] = struct{}{}
			if _, was := player.Touching[other]; was {
				continue
			}
			if player.Controller != nil {
				player.Controller.NotifyTriggerEnter(ability.EnemyTag, other)
			}
		}
		player.Touching = touching
	})
}

package systems

import (
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and moves every body through the level's
// collision world. Runs after UpdatePlayer so this tick's velocities apply.
func UpdatePhysics(ecs *ecs.ECS) {
	space := GetSpace(ecs)
	dt := DeltaTime(ecs)
	if space == nil || dt == 0 {
		return
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Physics.Get(e)
		obj := components.Object.Get(e)

		falling := body.Velocity.Y <= 0
		wasOnGround := body.OnGround
		_, hitY := space.Step(obj.Object, &body.Velocity, body.GravityScale, dt)
		body.OnGround = hitY && falling

		if body.OnGround && !wasOnGround && e.HasComponent(components.SquashStretch) {
			TriggerSquashStretch(e, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
		}
	})
}

package systems

import (
	"github.com/automoto/duodash/components"
	"github.com/automoto/duodash/config"
	"github.com/automoto/duodash/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects drops dash trail ghosts, fades them out and eases
// squash/stretch back to normal.
func UpdateEffects(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	if dt == 0 {
		return
	}
	updateTrails(ecs, dt)
	updateTrailGhosts(ecs, dt)
	updateSquashStretchEffects(ecs, dt)
}

func updateTrails(ecs *ecs.ECS, dt float64) {
	enabled := GetOrCreateSettings(ecs).Trail

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if !sprite.Trail {
			sprite.TrailClock = 0
			return
		}
		sprite.TrailClock += dt
		if sprite.TrailClock < config.Trail.Interval {
			return
		}
		sprite.TrailClock = 0
		if !enabled || !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e)
		factory.CreateTrailGhost(ecs, obj.X, obj.Y, obj.W, obj.H, sprite.Color)
	})
}

func updateTrailGhosts(ecs *ecs.ECS, dt float64) {
	var toRemove []*donburi.Entry

	components.TrailGhost.Each(ecs.World, func(e *donburi.Entry) {
		ghost := components.TrailGhost.Get(e)
		alpha, done := ghost.Alpha.Update(float32(dt))
		ghost.Current = float64(alpha)
		if done {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}

func updateSquashStretchEffects(ecs *ecs.ECS, dt float64) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		if ss.Tween == nil {
			ss.ScaleX, ss.ScaleY = 1, 1
			return
		}
		w, done := ss.Tween.Update(float32(dt))
		ss.ScaleX = 1 + (ss.AmountX-1)*float64(w)
		ss.ScaleY = 1 + (ss.AmountY-1)*float64(w)
		if done {
			ss.Tween = nil
			ss.ScaleX, ss.ScaleY = 1, 1
		}
	})
}

// TriggerSquashStretch starts a squash/stretch on entry, replacing any
// effect still running.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, components.SquashStretchData{
		ScaleX:  scaleX,
		ScaleY:  scaleY,
		AmountX: scaleX,
		AmountY: scaleY,
		Tween:   gween.New(1, 0, float32(config.SquashStretch.Duration), ease.OutQuad),
	})
}

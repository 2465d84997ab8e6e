package systems

import (
	"github.com/automoto/duodash/ability"
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/gamemath"
	"github.com/automoto/duodash/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// bodyPort exposes a player's Physics and Object components to its
// controller, converting between pixels and world units.
type bodyPort struct {
	entry *donburi.Entry
	space *physics.World
}

func (b bodyPort) units() gamemath.Units {
	return gamemath.Units{PixelsPerUnit: b.space.PixelsPerUnit()}
}

func (b bodyPort) data() *components.PhysicsData {
	if !b.entry.Valid() {
		return &components.PhysicsData{}
	}
	return components.Physics.Get(b.entry)
}

func (b bodyPort) object() *resolv.Object {
	if !b.entry.Valid() || !b.entry.HasComponent(components.Object) {
		return nil
	}
	return components.Object.Get(b.entry).Object
}

func (b bodyPort) Velocity() ability.Vec2 {
	v := b.data().Velocity
	return ability.Vec2{X: v.X, Y: v.Y}
}

func (b bodyPort) SetVelocity(v ability.Vec2) {
	b.data().Velocity = physics.Velocity{X: v.X, Y: v.Y}
}

func (b bodyPort) GravityScale() float64     { return b.data().GravityScale }
func (b bodyPort) SetGravityScale(s float64) { b.data().GravityScale = s }
func (b bodyPort) Gravity() float64          { return b.space.Gravity() }

func (b bodyPort) Bounds() (ability.Rect, bool) {
	obj := b.object()
	if obj == nil {
		return ability.Rect{}, false
	}
	minX, minY, maxX, maxY := b.units().RectToUnits(obj.X, obj.Y, obj.W, obj.H)
	return ability.Rect{
		Min: ability.Vec2{X: minX, Y: minY},
		Max: ability.Vec2{X: maxX, Y: maxY},
	}, true
}

func (b bodyPort) BoxCast(center, size, dir ability.Vec2, distance float64, layers []string) bool {
	obj := b.object()
	if obj == nil {
		return false
	}
	u := b.units()
	x, y := u.PointToPixels(center.X-size.X/2, center.Y+size.Y/2)
	dx, dy := u.PointToPixels(dir.X*distance, dir.Y*distance)
	return b.space.BoxCast(obj, x, y, u.ToPixels(size.X), u.ToPixels(size.Y), dx, dy, layers...)
}

// visualPort writes presentation state onto the player's Sprite.
type visualPort struct {
	entry *donburi.Entry
}

func (v visualPort) sprite() *components.SpriteData {
	if !v.entry.Valid() {
		return &components.SpriteData{}
	}
	return components.Sprite.Get(v.entry)
}

func (v visualPort) SetFlipX(flip bool) { v.sprite().FlipX = flip }
func (v visualPort) SetTrail(on bool)   { v.sprite().Trail = on }
func (v visualPort) SetOpacity(a float64) {
	v.sprite().Opacity = a
}

func (v visualPort) SetFloat(name string, value float64) {
	s := v.sprite()
	if s.Params == nil {
		s.Params = make(map[string]float64)
	}
	s.Params[name] = value
}

func (v visualPort) SetTrigger(name string) {
	if !v.entry.Valid() {
		return
	}
	switch name {
	case ability.TriggerJump:
		TriggerSquashStretch(v.entry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
	case ability.TriggerDash:
		// Drop the first ghost on the next effects tick.
		v.sprite().TrailClock = cfg.Trail.Interval
	}
}

// worldPort answers tag queries against the level's collision space. Handles
// are *donburi.Entry values.
type worldPort struct {
	self  *donburi.Entry
	space *physics.World
}

func (w worldPort) Tagged(tag string) []ability.Handle {
	var out []ability.Handle
	for _, o := range w.space.Space().Objects() {
		if !o.HasTags(tag) {
			continue
		}
		e, ok := o.Data.(*donburi.Entry)
		if !ok || e == w.self {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (w worldPort) Exists(h ability.Handle) bool {
	e, ok := h.(*donburi.Entry)
	return ok && e.Valid() && e.HasComponent(components.Object)
}

func (w worldPort) IgnoreCollision(h ability.Handle, ignore bool) {
	if !w.Exists(h) || !w.Exists(w.self) {
		return
	}
	other := components.Object.Get(h.(*donburi.Entry)).Object
	self := components.Object.Get(w.self).Object
	w.space.Ignore(self, other, ignore)
}

// inputPort maps controller actions onto a player's bound input.
type inputPort struct {
	input *components.PlayerInputData
}

var actionIDs = [...]cfg.ActionID{
	ability.MoveLeft:        cfg.ActionMoveLeft,
	ability.MoveRight:       cfg.ActionMoveRight,
	ability.Jump:            cfg.ActionJump,
	ability.DashAction:      cfg.ActionDash,
	ability.InvisibleAction: cfg.ActionInvisible,
}

func (p inputPort) Held(a ability.Action) bool {
	if int(a) >= len(actionIDs) {
		return false
	}
	return GetPlayerAction(p.input, actionIDs[a]).Pressed
}

func (p inputPort) JustPressed(a ability.Action) bool {
	if int(a) >= len(actionIDs) {
		return false
	}
	return GetPlayerAction(p.input, actionIDs[a]).JustPressed
}

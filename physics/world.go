// Package physics is the collision world shared by every body in a level.
// Objects live in a resolv space measured in pixels with Y pointing down.
// Velocities and gravity are in world units per second with Y pointing up,
// the frame the player controllers think in.
package physics

import (
	"github.com/solarlune/resolv"
)

type Config struct {
	PixelsPerUnit float64
	Gravity       float64 // units/s^2, negative pulls down
	MaxFallSpeed  float64 // units/s, 0 disables the clamp
	SolidTags     []string
}

// Velocity in world units per second, Y up.
type Velocity struct {
	X, Y float64
}

type World struct {
	cfg     Config
	space   *resolv.Space
	ignored map[*resolv.Object]map[*resolv.Object]struct{}
}

// NewWorld creates a world width x height pixels with square broadphase
// cells of cell pixels.
func NewWorld(cfg Config, width, height, cell int) *World {
	if cfg.PixelsPerUnit <= 0 {
		cfg.PixelsPerUnit = 1
	}
	return &World{
		cfg:     cfg,
		space:   resolv.NewSpace(width, height, cell, cell),
		ignored: make(map[*resolv.Object]map[*resolv.Object]struct{}),
	}
}

func (w *World) Config() Config         { return w.cfg }
func (w *World) Space() *resolv.Space   { return w.space }
func (w *World) Gravity() float64       { return w.cfg.Gravity }
func (w *World) PixelsPerUnit() float64 { return w.cfg.PixelsPerUnit }

func (w *World) Add(objs ...*resolv.Object) {
	w.space.Add(objs...)
}

// Remove takes objects out of the space and drops their ignore pairs.
func (w *World) Remove(objs ...*resolv.Object) {
	for _, o := range objs {
		w.Forget(o)
	}
	w.space.Remove(objs...)
}

// Ignore turns collision between a and b off (on == true) or back on.
func (w *World) Ignore(a, b *resolv.Object, on bool) {
	if a == nil || b == nil || a == b {
		return
	}
	if on {
		w.link(a, b)
		w.link(b, a)
		return
	}
	w.unlink(a, b)
	w.unlink(b, a)
}

func (w *World) link(a, b *resolv.Object) {
	set, ok := w.ignored[a]
	if !ok {
		set = make(map[*resolv.Object]struct{})
		w.ignored[a] = set
	}
	set[b] = struct{}{}
}

func (w *World) unlink(a, b *resolv.Object) {
	set, ok := w.ignored[a]
	if !ok {
		return
	}
	delete(set, b)
	if len(set) == 0 {
		delete(w.ignored, a)
	}
}

func (w *World) Ignored(a, b *resolv.Object) bool {
	_, ok := w.ignored[a][b]
	return ok
}

// Forget drops every ignore pair involving o.
func (w *World) Forget(o *resolv.Object) {
	for other := range w.ignored[o] {
		w.unlink(other, o)
	}
	delete(w.ignored, o)
}

// Step applies gravity to v and moves obj by v*dt against the solid tags.
// The velocity component of a blocked axis is zeroed.
func (w *World) Step(obj *resolv.Object, v *Velocity, gravityScale, dt float64) (hitX, hitY bool) {
	v.Y += w.cfg.Gravity * gravityScale * dt
	if w.cfg.MaxFallSpeed > 0 && v.Y < -w.cfg.MaxFallSpeed {
		v.Y = -w.cfg.MaxFallSpeed
	}

	ppu := w.cfg.PixelsPerUnit
	hitX, hitY = w.Move(obj, v.X*dt*ppu, -v.Y*dt*ppu, w.cfg.SolidTags...)
	if hitX {
		v.X = 0
	}
	if hitY {
		v.Y = 0
	}
	return hitX, hitY
}

// contactSlop is how deep, in pixels, a body may sit inside a solid before
// it counts as already inside it. Shallower contact is pushed back out.
const contactSlop = 1.0

// Move shifts obj by dx then dy pixels, stopping flush against the nearest
// object carrying one of tags. A body resting less than contactSlop inside a
// blocker is pushed back out. Objects it is deeper inside, and ignored
// pairs, do not block.
func (w *World) Move(obj *resolv.Object, dx, dy float64, tags ...string) (hitX, hitY bool) {
	if dx != 0 {
		if stop, ok := w.sweep(obj, dx, 0, tags); ok {
			dx = stop
			hitX = true
		}
		obj.X += dx
		obj.Update()
	}
	if dy != 0 {
		if stop, ok := w.sweep(obj, 0, dy, tags); ok {
			dy = stop
			hitY = true
		}
		obj.Y += dy
		obj.Update()
	}
	return hitX, hitY
}

// sweep returns the move along one axis that keeps obj out of every
// blocker, and whether any blocker was found. The broadphase is padded one
// pixel along the motion: resolv's cell range assumes whole-pixel positions
// and misses contacts inside the last fractional pixel.
func (w *World) sweep(obj *resolv.Object, dx, dy float64, tags []string) (float64, bool) {
	check := obj.Check(dx+sign(dx), dy+sign(dy), tags...)
	if check == nil {
		return 0, false
	}

	nx, ny := obj.X+dx, obj.Y+dy
	best, found := 0.0, false
	for _, o := range check.Objects {
		if !w.blocks(obj, o) {
			continue
		}
		ox, oy := overlap(nx, ny, obj.W, obj.H, o)
		// The perpendicular axis must overlap by more than contact noise,
		// so a body resting slightly sunk in a floor still walks along it.
		if dx != 0 && (ox <= 0 || oy <= contactSlop) {
			continue
		}
		if dy != 0 && (oy <= 0 || ox <= contactSlop) {
			continue
		}
		var stop float64
		switch {
		case dx > 0:
			stop = o.X - (obj.X + obj.W)
		case dx < 0:
			stop = o.X + o.W - obj.X
		case dy > 0:
			stop = o.Y - (obj.Y + obj.H)
		default:
			stop = o.Y + o.H - obj.Y
		}
		// Blockers behind the motion only ever push back by the slop.
		if stop*sign(dx+dy) < -contactSlop {
			continue
		}
		if !found || abs(stop) < abs(best) {
			best, found = stop, true
		}
	}
	return best, found
}

// blocks reports whether o can stop obj: not itself, not ignored and not
// something obj is already deeper than contactSlop inside on both axes.
func (w *World) blocks(obj, o *resolv.Object) bool {
	if o == obj || w.Ignored(obj, o) {
		return false
	}
	ox, oy := overlap(obj.X, obj.Y, obj.W, obj.H, o)
	return ox <= contactSlop || oy <= contactSlop
}

// BoxCast sweeps an x,y,width,height pixel box by dx,dy and reports whether
// it touches an object carrying one of tags. self and objects ignored by
// self are skipped.
func (w *World) BoxCast(self *resolv.Object, x, y, width, height, dx, dy float64, tags ...string) bool {
	minX, minY := min(x, x+dx), min(y, y+dy)
	sw, sh := width+abs(dx), height+abs(dy)

	for _, o := range w.query(minX, minY, sw, sh, tags) {
		if o == self || w.Ignored(self, o) {
			continue
		}
		if overlaps(minX, minY, sw, sh, o) {
			return true
		}
	}
	return false
}

// Overlapping lists objects carrying one of tags whose boxes overlap obj.
func (w *World) Overlapping(obj *resolv.Object, tags ...string) []*resolv.Object {
	var out []*resolv.Object
	for _, o := range w.query(obj.X, obj.Y, obj.W, obj.H, tags) {
		if o == obj || w.Ignored(obj, o) {
			continue
		}
		if overlaps(obj.X, obj.Y, obj.W, obj.H, o) {
			out = append(out, o)
		}
	}
	return out
}

// query returns the broadphase candidates for a pixel box through a
// temporary object grown one pixel on every side.
func (w *World) query(x, y, width, height float64, tags []string) []*resolv.Object {
	area := resolv.NewObject(x-1, y-1, width+2, height+2)
	w.space.Add(area)
	defer w.space.Remove(area)

	check := area.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	out := make([]*resolv.Object, 0, len(check.Objects))
	for _, o := range check.Objects {
		if o != area {
			out = append(out, o)
		}
	}
	return out
}

func overlaps(x, y, width, height float64, o *resolv.Object) bool {
	return x < o.X+o.W && x+width > o.X && y < o.Y+o.H && y+height > o.Y
}

// overlap returns how far a box and o overlap on each axis; zero or less
// means they are apart on that axis.
func overlap(x, y, width, height float64, o *resolv.Object) (ox, oy float64) {
	ox = min(x+width, o.X+o.W) - max(x, o.X)
	oy = min(y+height, o.Y+o.H) - max(y, o.Y)
	return ox, oy
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

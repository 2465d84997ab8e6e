package ability

import (
	"math"

	"go.uber.org/zap"
)

// Controller is the per-player movement and ability state machine. It is
// driven once per simulation tick from a single goroutine.
type Controller struct {
	cfg    Config
	body   Body
	visual Visual
	world  World
	log    *zap.Logger
	name   string

	onEnemyHit func(other Handle)

	facing   float64
	grounded bool
	// gravity is |world gravity * gravity scale| captured at construction.
	gravity float64

	timers  [kindCount]timer
	active  Kind
	effect  *lease
	dashVel Vec2
}

type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithName labels log lines, e.g. "player1".
func WithName(name string) Option {
	return func(c *Controller) { c.name = name }
}

// WithEnemyHook binds the callback run when the player touches an Enemy.
func WithEnemyHook(fn func(other Handle)) Option {
	return func(c *Controller) { c.onEnemyHit = fn }
}

// New creates a controller. body, visual and world may be nil: the parts of
// the tick that need them become no-ops.
func New(cfg Config, body Body, visual Visual, world World, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		body:   body,
		visual: visual,
		world:  world,
		log:    zap.NewNop(),
		facing: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if body != nil {
		c.gravity = math.Abs(body.Gravity() * body.GravityScale())
	}
	c.log = c.log.With(zap.String("player", c.name))
	return c
}

// Tick advances ability timers by dt seconds and then applies this tick's
// input. While dashing, input is not read at all.
func (c *Controller) Tick(dt float64, in Input) {
	if in == nil {
		in = NoInput{}
	}
	c.advance(dt)

	if c.active == Dash {
		c.holdDash()
		return
	}

	c.move(in)
	c.grounded = c.probe()
	c.jump(in)
	c.triggerAbilities(in)
}

func (c *Controller) advance(dt float64) {
	for k := Dash; k < kindCount; k++ {
		if ended := c.timers[k].advance(dt); ended && c.active == k {
			c.finish(k)
		}
	}
}

func (c *Controller) move(in Input) {
	if c.body == nil {
		return
	}
	dir := 0.0
	if in.Held(MoveLeft) {
		dir = -1
	}
	if in.Held(MoveRight) {
		dir = 1
	}

	v := c.body.Velocity()
	v.X = dir * c.cfg.MoveSpeed
	c.body.SetVelocity(v)

	if dir != 0 {
		c.facing = dir
		if c.visual != nil {
			c.visual.SetFlipX(dir < 0)
		}
	}
	if c.visual != nil {
		c.visual.SetFloat(ParamSpeed, math.Abs(dir))
	}
}

// probeBox returns the centre and size of the ground probe before it is
// swept down by ProbeDistance. The box sits on the collider's lower edge.
func (c *Controller) probeBox() (center, size Vec2, ok bool) {
	if c.body == nil {
		return Vec2{}, Vec2{}, false
	}
	b, ok := c.body.Bounds()
	if !ok {
		return Vec2{}, Vec2{}, false
	}
	center = Vec2{X: (b.Min.X + b.Max.X) / 2, Y: b.Min.Y}
	size = Vec2{X: b.Width(), Y: c.cfg.ProbeHeight}
	return center, size, true
}

func (c *Controller) probe() bool {
	center, size, ok := c.probeBox()
	if !ok {
		return false
	}
	return c.body.BoxCast(center, size, Vec2{X: 0, Y: -1}, c.cfg.ProbeDistance, c.cfg.GroundLayers)
}

// ProbeRect is the full area swept by the ground probe, for debug drawing.
func (c *Controller) ProbeRect() (Rect, bool) {
	center, size, ok := c.probeBox()
	if !ok {
		return Rect{}, false
	}
	return Rect{
		Min: Vec2{X: center.X - size.X/2, Y: center.Y - size.Y/2 - c.cfg.ProbeDistance},
		Max: Vec2{X: center.X + size.X/2, Y: center.Y + size.Y/2},
	}, true
}

func (c *Controller) jump(in Input) {
	if c.body == nil || !c.grounded || !in.JustPressed(Jump) {
		return
	}
	if c.visual != nil {
		c.visual.SetTrigger(TriggerJump)
	}
	v := c.body.Velocity()
	v.Y = JumpVelocity(c.gravity, c.cfg.JumpHeight)
	c.body.SetVelocity(v)
	c.grounded = false
}

// JumpVelocity is the launch speed that peaks at height under gravity g.
func JumpVelocity(g, height float64) float64 {
	return math.Sqrt(2 * math.Abs(g) * height)
}

func (c *Controller) triggerAbilities(in Input) {
	if c.active != None {
		return
	}
	switch {
	case c.cfg.Dash != nil && in.JustPressed(DashAction) && c.Ready(Dash):
		c.startDash()
	case c.cfg.Invisible != nil && in.JustPressed(InvisibleAction) && c.Ready(Invisible):
		c.startInvisible()
	}
}

func (c *Controller) startDash() {
	if c.body == nil {
		return
	}
	d := c.cfg.Dash
	c.timers[Dash].start(d.Time, d.Cooldown)
	c.active = Dash

	body, visual := c.body, c.visual
	scale := body.GravityScale()
	body.SetGravityScale(0)
	c.dashVel = Vec2{X: c.facing * d.Power, Y: body.Velocity().Y}
	body.SetVelocity(c.dashVel)
	if visual != nil {
		visual.SetTrail(true)
		visual.SetTrigger(TriggerDash)
	}
	c.effect = newLease(func() {
		body.SetGravityScale(scale)
		if visual != nil {
			visual.SetTrail(false)
		}
	})
	c.log.Debug("ability started", zap.Stringer("ability", Dash), zap.Float64("facing", c.facing))
}

// holdDash re-asserts the dash velocity so collisions or other writers
// cannot bend it mid-dash.
func (c *Controller) holdDash() {
	if c.body != nil {
		c.body.SetVelocity(c.dashVel)
	}
}

func (c *Controller) startInvisible() {
	inv := c.cfg.Invisible
	c.timers[Invisible].start(inv.Time, inv.Cooldown)
	c.active = Invisible

	visual, world := c.visual, c.world
	if visual != nil {
		visual.SetOpacity(inv.Opacity)
	}
	var snapshot []Handle
	if world != nil {
		tag := inv.ThroughTag
		if tag == "" {
			tag = DefaultThrough
		}
		snapshot = world.Tagged(tag)
		for _, h := range snapshot {
			world.IgnoreCollision(h, true)
		}
	}
	c.effect = newLease(func() {
		if visual != nil {
			visual.SetOpacity(1)
		}
		for _, h := range snapshot {
			if world.Exists(h) {
				world.IgnoreCollision(h, false)
			}
		}
	})
	c.log.Debug("ability started", zap.Stringer("ability", Invisible), zap.Int("through", len(snapshot)))
}

// finish ends the active phase of k.
func (c *Controller) finish(k Kind) {
	c.effect.Release()
	c.effect = nil
	c.active = None
	if k == Dash && c.body != nil {
		v := c.body.Velocity()
		v.X = 0
		c.body.SetVelocity(v)
	}
	c.log.Debug("ability ended", zap.Stringer("ability", k))
}

// Teardown releases whatever the active ability left engaged. Call it when
// the player entity or its scene goes away. Safe to call more than once.
func (c *Controller) Teardown() {
	if c.active == None {
		return
	}
	c.log.Debug("teardown released ability", zap.Stringer("ability", c.active))
	c.effect.Release()
	c.effect = nil
	c.active = None
}

// NotifyTriggerEnter reports the start of an overlap with another entity.
// Only Enemy contacts are of interest and they only reach the hook.
func (c *Controller) NotifyTriggerEnter(tag string, other Handle) {
	if tag != EnemyTag {
		return
	}
	c.log.Info("enemy hit")
	if c.onEnemyHit != nil {
		c.onEnemyHit(other)
	}
}

// SetConfig swaps tunables. Running phases keep the timings they started
// with and the captured gravity is not re-read.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
}

func (c *Controller) Config() Config  { return c.cfg }
func (c *Controller) Grounded() bool  { return c.grounded }
func (c *Controller) Facing() float64 { return c.facing }
func (c *Controller) Active() Kind    { return c.active }

// Has reports whether the ability is configured for this player.
func (c *Controller) Has(k Kind) bool {
	switch k {
	case Dash:
		return c.cfg.Dash != nil
	case Invisible:
		return c.cfg.Invisible != nil
	}
	return false
}

func (c *Controller) Ready(k Kind) bool {
	return c.Has(k) && c.timers[k].phase == Ready
}

func (c *Controller) Phase(k Kind) Phase {
	if k <= None || k >= kindCount {
		return Ready
	}
	return c.timers[k].phase
}

// Remaining is the time left in the current phase of k, zero when ready.
func (c *Controller) Remaining(k Kind) float64 {
	if k <= None || k >= kindCount {
		return 0
	}
	return c.timers[k].remaining()
}

// Window returns the active and cooldown lengths captured when k last
// started. They do not follow later SetConfig calls.
func (c *Controller) Window(k Kind) (duration, cooldown float64) {
	if k <= None || k >= kindCount {
		return 0, 0
	}
	return c.timers[k].duration, c.timers[k].cooldown
}

// Locks maps ability names to their ready flag.
func (c *Controller) Locks() map[string]bool {
	locks := make(map[string]bool, 2)
	for k := Dash; k < kindCount; k++ {
		if c.Has(k) {
			locks[k.String()] = c.Ready(k)
		}
	}
	return locks
}

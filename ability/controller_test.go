package ability

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const tick = 1.0 / 60

type fakeBody struct {
	vel      Vec2
	scale    float64
	gravity  float64
	bounds   Rect
	noBounds bool
	ground   bool

	lastCenter, lastSize Vec2
	lastDistance         float64
	lastLayers           []string
}

func newFakeBody() *fakeBody {
	return &fakeBody{
		scale:   1,
		gravity: -9.8,
		bounds:  Rect{Min: Vec2{X: 0, Y: 0}, Max: Vec2{X: 1, Y: 2}},
		ground:  true,
	}
}

func (b *fakeBody) Velocity() Vec2             { return b.vel }
func (b *fakeBody) SetVelocity(v Vec2)         { b.vel = v }
func (b *fakeBody) GravityScale() float64      { return b.scale }
func (b *fakeBody) SetGravityScale(s float64)  { b.scale = s }
func (b *fakeBody) Gravity() float64           { return b.gravity }
func (b *fakeBody) Bounds() (Rect, bool)       { return b.bounds, !b.noBounds }
func (b *fakeBody) BoxCast(center, size, dir Vec2, distance float64, layers []string) bool {
	b.lastCenter, b.lastSize, b.lastDistance, b.lastLayers = center, size, distance, layers
	return b.ground
}

type fakeVisual struct {
	flip     bool
	floats   map[string]float64
	triggers []string
	trail    bool
	opacity  float64
}

func newFakeVisual() *fakeVisual {
	return &fakeVisual{floats: map[string]float64{}, opacity: 1}
}

func (v *fakeVisual) SetFlipX(flip bool)              { v.flip = flip }
func (v *fakeVisual) SetFloat(name string, f float64) { v.floats[name] = f }
func (v *fakeVisual) SetTrigger(name string)          { v.triggers = append(v.triggers, name) }
func (v *fakeVisual) SetTrail(on bool)                { v.trail = on }
func (v *fakeVisual) SetOpacity(a float64)            { v.opacity = a }

type fakeWorld struct {
	tagged  map[string][]Handle
	alive   map[Handle]bool
	ignored map[Handle]bool
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		tagged:  map[string][]Handle{},
		alive:   map[Handle]bool{},
		ignored: map[Handle]bool{},
	}
}

func (w *fakeWorld) add(tag string, h Handle) {
	w.tagged[tag] = append(w.tagged[tag], h)
	w.alive[h] = true
}

func (w *fakeWorld) Tagged(tag string) []Handle {
	return append([]Handle(nil), w.tagged[tag]...)
}
func (w *fakeWorld) Exists(h Handle) bool { return w.alive[h] }
func (w *fakeWorld) IgnoreCollision(h Handle, ignore bool) {
	if !w.alive[h] {
		panic("collision toggled on a destroyed entity")
	}
	w.ignored[h] = ignore
}

type fakeInput struct {
	held    map[Action]bool
	pressed map[Action]bool
}

func press(actions ...Action) *fakeInput {
	in := &fakeInput{held: map[Action]bool{}, pressed: map[Action]bool{}}
	for _, a := range actions {
		in.held[a] = true
		in.pressed[a] = true
	}
	return in
}

func hold(actions ...Action) *fakeInput {
	in := &fakeInput{held: map[Action]bool{}, pressed: map[Action]bool{}}
	for _, a := range actions {
		in.held[a] = true
	}
	return in
}

func (i *fakeInput) Held(a Action) bool        { return i.held[a] }
func (i *fakeInput) JustPressed(a Action) bool { return i.pressed[a] }

func dashConfig() Config {
	cfg := DefaultConfig()
	cfg.Dash = &DashConfig{Power: 24, Time: 0.2, Cooldown: 1.0}
	return cfg
}

func invisibleConfig() Config {
	cfg := DefaultConfig()
	cfg.Invisible = &InvisibleConfig{Time: 3, Cooldown: 5, Opacity: 0.5, ThroughTag: "Through"}
	return cfg
}

func TestMoveSetsVelocityAndFacing(t *testing.T) {
	body := newFakeBody()
	body.vel = Vec2{X: 0, Y: -3}
	visual := newFakeVisual()
	c := New(DefaultConfig(), body, visual, nil)

	c.Tick(tick, hold(MoveRight))

	if body.vel.X != 5 {
		t.Fatalf("vx = %v, want 5", body.vel.X)
	}
	if body.vel.Y != -3 {
		t.Errorf("vy = %v, vertical velocity must be preserved", body.vel.Y)
	}
	if c.Facing() != 1 || visual.flip {
		t.Errorf("facing = %v flip = %v, want +1 unflipped", c.Facing(), visual.flip)
	}
	if visual.floats[ParamSpeed] != 1 {
		t.Errorf("speed param = %v, want 1", visual.floats[ParamSpeed])
	}
}

func TestFacingPersistsWithoutInput(t *testing.T) {
	body := newFakeBody()
	visual := newFakeVisual()
	c := New(DefaultConfig(), body, visual, nil)

	c.Tick(tick, hold(MoveLeft))
	if c.Facing() != -1 || !visual.flip {
		t.Fatalf("facing = %v flip = %v, want -1 flipped", c.Facing(), visual.flip)
	}

	c.Tick(tick, hold())
	if c.Facing() != -1 {
		t.Errorf("facing changed without input: %v", c.Facing())
	}
	if body.vel.X != 0 {
		t.Errorf("vx = %v, want 0 with no intent", body.vel.X)
	}
	if visual.floats[ParamSpeed] != 0 {
		t.Errorf("speed param = %v, want 0", visual.floats[ParamSpeed])
	}
}

func TestRightOverridesLeft(t *testing.T) {
	body := newFakeBody()
	c := New(DefaultConfig(), body, nil, nil)

	c.Tick(tick, hold(MoveLeft, MoveRight))

	if body.vel.X != 5 || c.Facing() != 1 {
		t.Errorf("vx = %v facing = %v, want right to win", body.vel.X, c.Facing())
	}
}

func TestGroundProbeGeometry(t *testing.T) {
	body := newFakeBody()
	body.bounds = Rect{Min: Vec2{X: 2, Y: 1}, Max: Vec2{X: 3, Y: 3}}
	c := New(DefaultConfig(), body, nil, nil)

	c.Tick(tick, hold())

	if !c.Grounded() {
		t.Fatal("expected grounded when the cast hits")
	}
	if body.lastCenter != (Vec2{X: 2.5, Y: 1}) {
		t.Errorf("probe centre = %+v, want bottom centre of bounds", body.lastCenter)
	}
	if body.lastSize != (Vec2{X: 1, Y: 0.3}) {
		t.Errorf("probe size = %+v", body.lastSize)
	}
	if body.lastDistance != 0.3 {
		t.Errorf("probe distance = %v", body.lastDistance)
	}
	if len(body.lastLayers) != 1 || body.lastLayers[0] != "ground" {
		t.Errorf("probe layers = %v", body.lastLayers)
	}

	r, ok := c.ProbeRect()
	if !ok {
		t.Fatal("probe rect unavailable")
	}
	if math.Abs(r.Min.Y-(1-0.15-0.3)) > 1e-9 || math.Abs(r.Max.Y-1.15) > 1e-9 {
		t.Errorf("probe rect = %+v", r)
	}

	body.ground = false
	c.Tick(tick, hold())
	if c.Grounded() {
		t.Error("expected airborne when the cast misses")
	}
}

func TestMissingColliderIsNotGrounded(t *testing.T) {
	body := newFakeBody()
	body.noBounds = true
	c := New(DefaultConfig(), body, nil, nil)

	c.Tick(tick, press(Jump))

	if c.Grounded() {
		t.Error("grounded without a collider")
	}
	if body.vel.Y != 0 {
		t.Errorf("jumped without a collider: vy = %v", body.vel.Y)
	}
}

func TestNilBodyIsANoOp(t *testing.T) {
	c := New(dashConfig(), nil, nil, nil)

	for i := 0; i < 10; i++ {
		c.Tick(tick, press(MoveRight, Jump, DashAction))
	}

	if c.Grounded() {
		t.Error("grounded without a body")
	}
	if c.Active() != None {
		t.Errorf("active = %v without a body", c.Active())
	}
}

func TestJumpVelocity(t *testing.T) {
	body := newFakeBody()
	visual := newFakeVisual()
	c := New(DefaultConfig(), body, visual, nil)

	c.Tick(tick, press(Jump))

	want := math.Sqrt(2 * 9.8 * 2)
	if math.Abs(body.vel.Y-want) > 1e-9 {
		t.Fatalf("vy = %v, want %v", body.vel.Y, want)
	}
	if math.Abs(body.vel.Y-6.26) > 0.01 {
		t.Errorf("vy = %v, want about 6.26", body.vel.Y)
	}
	if c.Grounded() {
		t.Error("grounded right after launch")
	}
	if len(visual.triggers) != 1 || visual.triggers[0] != TriggerJump {
		t.Errorf("triggers = %v", visual.triggers)
	}
}

func TestJumpUsesGravityCapturedAtInit(t *testing.T) {
	body := newFakeBody()
	body.scale = 2
	c := New(DefaultConfig(), body, nil, nil)
	body.scale = 10

	c.Tick(tick, press(Jump))

	want := math.Sqrt(2 * 9.8 * 2 * 2)
	if math.Abs(body.vel.Y-want) > 1e-9 {
		t.Errorf("vy = %v, want %v", body.vel.Y, want)
	}
}

func TestNoJumpWhenAirborneOrHeld(t *testing.T) {
	body := newFakeBody()
	body.ground = false
	c := New(DefaultConfig(), body, nil, nil)

	c.Tick(tick, press(Jump))
	if body.vel.Y != 0 {
		t.Fatalf("jumped while airborne: vy = %v", body.vel.Y)
	}

	body.ground = true
	c.Tick(tick, hold(Jump))
	if body.vel.Y != 0 {
		t.Errorf("jumped on a held key: vy = %v", body.vel.Y)
	}
}

func TestDashEntryAndHold(t *testing.T) {
	body := newFakeBody()
	body.vel = Vec2{X: 0, Y: 1.5}
	visual := newFakeVisual()
	c := New(dashConfig(), body, visual, nil)

	c.Tick(tick, press(MoveLeft, DashAction))

	if c.Active() != Dash {
		t.Fatalf("active = %v, want dash", c.Active())
	}
	if body.vel.X != -24 || body.vel.Y != 1.5 {
		t.Errorf("dash velocity = %+v, want (-24, 1.5)", body.vel)
	}
	if body.scale != 0 {
		t.Errorf("gravity scale = %v during dash", body.scale)
	}
	if !visual.trail {
		t.Error("trail not enabled")
	}

	// Input is ignored and the velocity is held while dashing.
	body.vel = Vec2{X: 0, Y: -7}
	c.Tick(tick, press(MoveRight, Jump))
	if body.vel.X != -24 || body.vel.Y != 1.5 {
		t.Errorf("velocity while dashing = %+v", body.vel)
	}
	if c.Facing() != -1 {
		t.Errorf("facing changed mid-dash")
	}
}

func TestDashEnds(t *testing.T) {
	body := newFakeBody()
	visual := newFakeVisual()
	c := New(dashConfig(), body, visual, nil)

	c.Tick(tick, press(DashAction))
	c.Tick(0.2, hold())

	if c.Active() != None {
		t.Fatalf("active = %v after dash time", c.Active())
	}
	if body.scale != 1 {
		t.Errorf("gravity scale = %v, want restored 1", body.scale)
	}
	if visual.trail {
		t.Error("trail still on")
	}
	if body.vel.X != 0 {
		t.Errorf("vx = %v, want 0 after dash", body.vel.X)
	}
	if c.Phase(Dash) != Cooldown || c.Ready(Dash) {
		t.Errorf("phase = %v ready = %v, want cooldown", c.Phase(Dash), c.Ready(Dash))
	}
}

func TestDashReadyWindow(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"tenth", 0.1},
		{"frame", 1.0 / 60},
		{"odd", 0.013},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(dashConfig(), newFakeBody(), nil, nil)
			c.Tick(0, press(DashAction))
			if c.Ready(Dash) {
				t.Fatal("ready at t=0")
			}

			elapsed := 0.0
			for elapsed+tt.dt < 1.2-1e-6 {
				c.Tick(tt.dt, hold())
				elapsed += tt.dt
				if c.Ready(Dash) {
					t.Fatalf("ready at t=%.4f", elapsed)
				}
			}
			// Step onto or past 1.2.
			c.Tick(tt.dt, hold())
			if !c.Ready(Dash) {
				t.Fatalf("not ready at t=%.4f", elapsed+tt.dt)
			}
		})
	}
}

func TestDashRetriggerIgnored(t *testing.T) {
	body := newFakeBody()
	c := New(dashConfig(), body, nil, nil)

	c.Tick(tick, press(DashAction))
	c.Tick(0.25, hold())
	remaining := c.Remaining(Dash)

	c.Tick(tick, press(DashAction, MoveRight))

	if c.Active() != None {
		t.Fatalf("dash re-triggered during cooldown")
	}
	if body.vel.X != 5 {
		t.Errorf("vx = %v, want plain movement", body.vel.X)
	}
	if body.scale != 1 {
		t.Errorf("gravity scale touched: %v", body.scale)
	}
	if got := c.Remaining(Dash); math.Abs(got-(remaining-tick)) > 1e-9 {
		t.Errorf("cooldown remaining = %v, want %v", got, remaining-tick)
	}
}

func TestDashKeepsLeftoverTime(t *testing.T) {
	c := New(dashConfig(), newFakeBody(), nil, nil)

	c.Tick(0, press(DashAction))
	c.Tick(0.7, hold())

	if c.Phase(Dash) != Cooldown {
		t.Fatalf("phase = %v", c.Phase(Dash))
	}
	if got := c.Remaining(Dash); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("remaining = %v, want 0.5", got)
	}
}

func TestInvisibilityWindow(t *testing.T) {
	body := newFakeBody()
	visual := newFakeVisual()
	world := newFakeWorld()
	world.add("Through", "wall-a")
	world.add("Through", "wall-b")
	c := New(invisibleConfig(), body, visual, world)

	c.Tick(0, press(InvisibleAction))
	if visual.opacity != 0.5 {
		t.Fatalf("opacity = %v at activation", visual.opacity)
	}
	if !world.ignored["wall-a"] || !world.ignored["wall-b"] {
		t.Fatalf("through objects not ignored: %v", world.ignored)
	}

	// Objects tagged after activation are left alone.
	world.add("Through", "wall-late")

	elapsed := 0.0
	for elapsed+tick < 3-1e-6 {
		c.Tick(tick, hold(MoveRight))
		elapsed += tick
		if visual.opacity != 0.5 {
			t.Fatalf("opacity = %v at t=%.3f", visual.opacity, elapsed)
		}
		if !world.ignored["wall-a"] {
			t.Fatalf("collision restored early at t=%.3f", elapsed)
		}
	}
	if body.vel.X != 5 {
		t.Errorf("movement suspended while invisible: vx = %v", body.vel.X)
	}
	if _, touched := world.ignored["wall-late"]; touched {
		t.Error("late through object was affected")
	}

	c.Tick(tick, hold())
	if visual.opacity != 1 {
		t.Errorf("opacity = %v after window", visual.opacity)
	}
	if world.ignored["wall-a"] || world.ignored["wall-b"] {
		t.Errorf("collisions not restored: %v", world.ignored)
	}
	if c.Ready(Invisible) {
		t.Error("ready before cooldown")
	}
}

func TestInvisibilitySkipsDestroyedObjects(t *testing.T) {
	world := newFakeWorld()
	world.add("Through", 1)
	world.add("Through", 2)
	c := New(invisibleConfig(), newFakeBody(), newFakeVisual(), world)

	c.Tick(0, press(InvisibleAction))
	world.alive[1] = false

	// fakeWorld panics if a destroyed handle is touched.
	c.Tick(3, hold())

	if world.ignored[2] {
		t.Error("surviving object still ignored")
	}
}

func TestOneAbilityAtATime(t *testing.T) {
	cfg := dashConfig()
	cfg.Invisible = invisibleConfig().Invisible
	body := newFakeBody()
	visual := newFakeVisual()
	c := New(cfg, body, visual, newFakeWorld())

	c.Tick(0, press(InvisibleAction))
	c.Tick(tick, press(DashAction))

	if c.Active() != Invisible {
		t.Fatalf("active = %v", c.Active())
	}
	if !c.Ready(Dash) {
		t.Error("dash consumed while another ability was active")
	}
	if body.scale != 1 {
		t.Error("dash effects applied while invisible")
	}
}

func TestTeardownReleasesDash(t *testing.T) {
	body := newFakeBody()
	visual := newFakeVisual()
	c := New(dashConfig(), body, visual, nil)

	c.Tick(0, press(DashAction))
	c.Teardown()
	c.Teardown()

	if body.scale != 1 {
		t.Errorf("gravity scale = %v after teardown", body.scale)
	}
	if visual.trail {
		t.Error("trail left on")
	}
	if c.Active() != None {
		t.Errorf("active = %v after teardown", c.Active())
	}

	// The timer ending later must not release a second time.
	body.scale = 3
	c.Tick(1, hold())
	if body.scale != 3 {
		t.Errorf("gravity scale rewritten after teardown: %v", body.scale)
	}
}

func TestTeardownReleasesInvisibility(t *testing.T) {
	visual := newFakeVisual()
	world := newFakeWorld()
	world.add("Through", "a")
	c := New(invisibleConfig(), newFakeBody(), visual, world)

	c.Tick(0, press(InvisibleAction))
	c.Teardown()

	if visual.opacity != 1 || world.ignored["a"] {
		t.Errorf("opacity = %v ignored = %v after teardown", visual.opacity, world.ignored)
	}
}

func TestEnemyHook(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var hits []Handle
	c := New(DefaultConfig(), newFakeBody(), nil, nil,
		WithLogger(zap.New(core)),
		WithName("player1"),
		WithEnemyHook(func(other Handle) { hits = append(hits, other) }),
	)

	c.NotifyTriggerEnter("Through", "wall")
	c.NotifyTriggerEnter(EnemyTag, "slime")

	if len(hits) != 1 || hits[0] != "slime" {
		t.Fatalf("hook calls = %v", hits)
	}
	entries := logs.FilterMessage("enemy hit").All()
	if len(entries) != 1 {
		t.Fatalf("enemy hit logged %d times", len(entries))
	}
	if got := entries[0].ContextMap()["player"]; got != "player1" {
		t.Errorf("player field = %v", got)
	}
	if c.Active() != None || c.Facing() != 1 {
		t.Error("enemy contact changed controller state")
	}
}

func TestLocksAndHas(t *testing.T) {
	c := New(dashConfig(), newFakeBody(), nil, nil)

	if c.Has(Invisible) {
		t.Error("dash variant reports invisibility")
	}
	locks := c.Locks()
	if len(locks) != 1 || !locks["dash"] {
		t.Fatalf("locks = %v", locks)
	}

	c.Tick(0, press(DashAction))
	if c.Locks()["dash"] {
		t.Error("dash still ready after trigger")
	}

	c.Tick(0, press(InvisibleAction))
	if c.Phase(Invisible) != Ready {
		t.Error("unconfigured ability started")
	}
}

func TestSetConfigKeepsRunningTimings(t *testing.T) {
	c := New(dashConfig(), newFakeBody(), nil, nil)
	c.Tick(0, press(DashAction))

	cfg := dashConfig()
	cfg.Dash.Cooldown = 10
	cfg.MoveSpeed = 8
	c.SetConfig(cfg)

	c.Tick(1.2, hold())
	if !c.Ready(Dash) {
		t.Fatal("running cooldown was stretched by reload")
	}

	c.Tick(0, press(DashAction))
	c.Tick(1.2, hold())
	if c.Ready(Dash) {
		t.Error("new cooldown not applied to the next activation")
	}
}

func TestWindowKeepsStartedTimings(t *testing.T) {
	c := New(dashConfig(), newFakeBody(), nil, nil)
	if d, cd := c.Window(Dash); d != 0 || cd != 0 {
		t.Fatalf("window before start = %v, %v", d, cd)
	}

	c.Tick(0, press(DashAction))
	cfg := dashConfig()
	cfg.Dash.Time = 0.5
	cfg.Dash.Cooldown = 10
	c.SetConfig(cfg)

	if d, cd := c.Window(Dash); d != 0.2 || cd != 1.0 {
		t.Errorf("window = %v, %v, want the started 0.2, 1", d, cd)
	}

	c.Tick(0.3, hold())
	if c.Phase(Dash) != Cooldown {
		t.Fatalf("phase = %v, want cooldown", c.Phase(Dash))
	}
	if left := c.Remaining(Dash); math.Abs(left-0.9) > 1e-9 {
		t.Errorf("remaining = %v, want 0.9 of the started cooldown", left)
	}
	if _, cd := c.Window(None); cd != 0 {
		t.Error("window of None is not empty")
	}
}

func TestHorizontalSpeedBound(t *testing.T) {
	body := newFakeBody()
	c := New(dashConfig(), body, nil, nil)
	inputs := []*fakeInput{
		hold(MoveRight), press(DashAction), hold(MoveLeft), press(Jump),
		hold(), press(MoveLeft, DashAction), hold(MoveRight, MoveLeft),
	}

	for i := 0; i < 600; i++ {
		c.Tick(tick, inputs[i%len(inputs)])
		vx := math.Abs(body.vel.X)
		if c.Active() == Dash {
			if vx != 24 {
				t.Fatalf("tick %d: dashing vx = %v", i, vx)
			}
		} else if vx > 5 {
			t.Fatalf("tick %d: vx = %v exceeds move speed", i, vx)
		}
	}
}

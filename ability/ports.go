package ability

// Input is the per-player input source for one tick.
type Input interface {
	Held(a Action) bool
	JustPressed(a Action) bool
}

// Body is the physics body the controller steers. Velocities are in world
// units per second with Y up.
type Body interface {
	Velocity() Vec2
	SetVelocity(v Vec2)
	GravityScale() float64
	SetGravityScale(s float64)
	// Gravity is the vertical world gravity acceleration (negative = down).
	Gravity() float64
	// Bounds returns the collider box. ok is false when the body has no
	// collider.
	Bounds() (r Rect, ok bool)
	// BoxCast sweeps a box centred at center along dir for distance and
	// reports whether it touches any collider carrying one of layers.
	BoxCast(center, size, dir Vec2, distance float64, layers []string) bool
}

// Visual receives fire-and-forget presentation commands.
type Visual interface {
	SetFlipX(flip bool)
	SetFloat(name string, v float64)
	SetTrigger(name string)
	SetTrail(on bool)
	SetOpacity(a float64)
}

// Handle is an opaque reference to a world entity.
type Handle any

// World answers tag queries and toggles pairwise collision between the
// owning player and other entities.
type World interface {
	Tagged(tag string) []Handle
	Exists(h Handle) bool
	IgnoreCollision(h Handle, ignore bool)
}

// NoInput is an Input with nothing pressed.
type NoInput struct{}

func (NoInput) Held(Action) bool        { return false }
func (NoInput) JustPressed(Action) bool { return false }

// Package ability drives a single player's movement, ground probe, jump and
// timed abilities. It has no engine dependency: physics, input, visuals and
// world queries reach it through the ports in ports.go.
package ability

// Kind identifies a timed ability.
type Kind int

const (
	None Kind = iota
	Dash
	Invisible
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Dash:
		return "dash"
	case Invisible:
		return "invisible"
	}
	return "none"
}

// Action is a logical input the controller reads.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	Jump
	DashAction
	InvisibleAction
)

// Phase of a timed ability.
type Phase int

const (
	Ready Phase = iota
	Active
	Cooldown
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case Cooldown:
		return "cooldown"
	}
	return "ready"
}

// Vec2 is a vector in world units, Y pointing up.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned box in world units, Y pointing up.
type Rect struct {
	Min, Max Vec2
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Animation parameter names written to the Visual port.
const (
	ParamSpeed     = "Speed"
	TriggerJump    = "Jump"
	TriggerDash    = "Dash"
	EnemyTag       = "Enemy"
	DefaultThrough = "Through"
)

type DashConfig struct {
	Power    float64 // horizontal speed while dashing
	Time     float64 // seconds
	Cooldown float64 // seconds, counted from the end of the dash
}

type InvisibleConfig struct {
	Time       float64
	Cooldown   float64
	Opacity    float64 // render opacity while invisible
	ThroughTag string  // world tag whose colliders are ignored while invisible
}

// Config holds the tunables of one controller. A nil Dash or Invisible
// disables that ability for the player.
type Config struct {
	MoveSpeed     float64
	JumpHeight    float64
	GroundLayers  []string
	ProbeHeight   float64
	ProbeDistance float64

	Dash      *DashConfig
	Invisible *InvisibleConfig
}

// DefaultConfig returns the basic controller: walk and jump only.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:     5,
		JumpHeight:    2,
		GroundLayers:  []string{"ground"},
		ProbeHeight:   0.3,
		ProbeDistance: 0.3,
	}
}

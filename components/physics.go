package components

import (
	"github.com/automoto/duodash/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData is a dynamic body. Velocity is in world units per second
// with Y up; the physics system converts to pixels when moving the object.
type PhysicsData struct {
	Velocity     physics.Velocity
	GravityScale float64
	OnGround     bool // last tick ended blocked from below
}

var Physics = donburi.NewComponentType[PhysicsData]()

// SpaceData is the level's collision world.
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()

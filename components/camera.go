package components

import (
	"github.com/automoto/duodash/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is one split-screen camera. Position is the world point (in
// pixels) at the centre of its viewport.
type CameraData struct {
	Index    int
	Position math.Vec2
	Viewport gamemath.Viewport // normalized screen rect
	Snapped  bool              // Position has been placed at least once
}

var Camera = donburi.NewComponentType[CameraData]()

// SplitScreenData is the singleton split/merge state.
type SplitScreenData struct {
	Enabled  bool // split allowed at all (options toggle)
	IsSplit  bool
	Distance float64 // world units between the players last tick
}

var SplitScreen = donburi.NewComponentType[SplitScreenData]()

package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData is what the renderer needs for a flat coloured body. The
// player's visual port writes FlipX, Opacity, Params and Trail.
type SpriteData struct {
	Color   color.RGBA
	FlipX   bool
	Opacity float64
	Params  map[string]float64
	Trail   bool

	// Seconds since the last trail ghost was dropped.
	TrailClock float64
}

var Sprite = donburi.NewComponentType[SpriteData]()

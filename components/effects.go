package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation for jump/land feel.
// Tween eases a weight from 1 to 0; the scale moves from Amount back to 1.
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	AmountX, AmountY float64 // scale at the start of the effect
	Tween            *gween.Tween
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// TrailGhostData is a fading copy of a dashing player's box.
type TrailGhostData struct {
	X, Y, W, H float64 // pixels
	Color      color.RGBA
	Alpha      *gween.Tween
	Current    float64
}

var TrailGhost = donburi.NewComponentType[TrailGhostData]()

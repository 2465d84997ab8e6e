// Package gamemath holds the small numeric helpers shared by the camera,
// render and physics glue.
package gamemath

import "math"

// Lerp interpolates from a to b with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = Clamp01(t)
	return a + (b-a)*t
}

func Clamp01(t float64) float64 {
	return Clamp(t, 0, 1)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance is the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Viewport is a screen region in normalized coordinates: 0..1 on both axes.
type Viewport struct {
	X, Y, W, H float64
}

var (
	FullView  = Viewport{X: 0, Y: 0, W: 1, H: 1}
	LeftHalf  = Viewport{X: 0, Y: 0, W: 0.5, H: 1}
	RightHalf = Viewport{X: 0.5, Y: 0, W: 0.5, H: 1}
	NoView    = Viewport{}
)

// LerpViewport moves every component of cur toward target by t.
func LerpViewport(cur, target Viewport, t float64) Viewport {
	return Viewport{
		X: Lerp(cur.X, target.X, t),
		Y: Lerp(cur.Y, target.Y, t),
		W: Lerp(cur.W, target.W, t),
		H: Lerp(cur.H, target.H, t),
	}
}

// Pixels scales v to a screen of width x height and rounds to whole pixels.
func (v Viewport) Pixels(width, height int) (x, y, w, h int) {
	fw, fh := float64(width), float64(height)
	x = int(math.Round(v.X * fw))
	y = int(math.Round(v.Y * fh))
	w = int(math.Round((v.X+v.W)*fw)) - x
	h = int(math.Round((v.Y+v.H)*fh)) - y
	return x, y, w, h
}

// Visible reports whether v still covers at least one pixel of a screen.
func (v Viewport) Visible(width, height int) bool {
	_, _, w, h := v.Pixels(width, height)
	return w > 0 && h > 0
}

// ShouldSplit reports whether two players are far enough apart to need a
// camera each.
func ShouldSplit(distance, mergeDistance float64) bool {
	return distance > mergeDistance
}

// SplitTargets returns the viewports the two cameras ease toward.
func SplitTargets(split bool) (first, second Viewport) {
	if split {
		return LeftHalf, RightHalf
	}
	return FullView, NoView
}

// ClampCenter keeps a camera centre inside a level so the view never shows
// past its edges. When the level is smaller than the view it is centred.
func ClampCenter(center, view, level float64) float64 {
	if level <= view {
		return level / 2
	}
	return Clamp(center, view/2, level-view/2)
}

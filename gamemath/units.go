package gamemath

// Units converts between pixel space (Y down) and world units (Y up).
type Units struct {
	PixelsPerUnit float64
}

func (u Units) ToUnits(px float64) float64 { return px / u.PixelsPerUnit }
func (u Units) ToPixels(v float64) float64 { return v * u.PixelsPerUnit }

// PointToUnits converts a pixel position to world units, flipping Y.
func (u Units) PointToUnits(x, y float64) (float64, float64) {
	return x / u.PixelsPerUnit, -y / u.PixelsPerUnit
}

// PointToPixels is the inverse of PointToUnits.
func (u Units) PointToPixels(x, y float64) (float64, float64) {
	return x * u.PixelsPerUnit, -y * u.PixelsPerUnit
}

// RectToUnits converts a pixel box (top-left origin) to world-unit min/max
// corners.
func (u Units) RectToUnits(x, y, w, h float64) (minX, minY, maxX, maxY float64) {
	minX, maxY = u.PointToUnits(x, y)
	maxX, minY = u.PointToUnits(x+w, y+h)
	return minX, minY, maxX, maxY
}

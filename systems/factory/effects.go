package factory

import (
	"image/color"

	"github.com/automoto/duodash/archetypes"
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrailGhost leaves a copy of a dashing body's box that fades out over
// the configured lifetime.
func CreateTrailGhost(ecs *ecs.ECS, x, y, w, h float64, c color.RGBA) *donburi.Entry {
	ghost := archetypes.TrailGhost.Spawn(ecs)
	start := float32(cfg.Trail.StartAlpha)
	components.TrailGhost.SetValue(ghost, components.TrailGhostData{
		X: x, Y: y, W: w, H: h,
		Color:   c,
		Alpha:   gween.New(start, 0, float32(cfg.Trail.Lifetime), ease.Linear),
		Current: float64(start),
	})
	return ghost
}

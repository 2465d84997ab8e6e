package systems

import (
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/gamemath"
	"github.com/automoto/duodash/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateCameras decides whether the view is split, eases the two viewports
// toward their targets and moves each camera toward what it follows.
// While merged camera 0 follows the midpoint of both players.
func UpdateCameras(ecs *ecs.ECS) {
	players := Players(ecs)
	if len(players) == 0 {
		return
	}
	split := GetOrCreateSplitScreen(ecs)
	split.Enabled = GetOrCreateSettings(ecs).SplitScreen

	centers := make([][2]float64, len(players))
	for i, p := range players {
		obj := components.Object.Get(p)
		centers[i] = [2]float64{obj.X + obj.W/2, obj.Y + obj.H/2}
	}

	wasSplit := split.IsSplit
	if len(centers) > 1 {
		dist := gamemath.Distance(centers[0][0], centers[0][1], centers[1][0], centers[1][1])
		split.Distance = dist / cfg.PixelsPerUnit
	} else {
		split.Distance = 0
	}
	split.IsSplit = split.Enabled && len(centers) > 1 &&
		gamemath.ShouldSplit(split.Distance, cfg.Camera.MergeDistance)
	if split.IsSplit != wasSplit {
		logging.L().Named("camera").Debug("split changed",
			zap.Bool("split", split.IsSplit),
			zap.Float64("distance", split.Distance))
	}

	targets := [2]gamemath.Viewport{}
	targets[0], targets[1] = gamemath.SplitTargets(split.IsSplit)
	t := gamemath.Clamp01(DeltaTime(ecs) * cfg.Camera.TransitionSpeed)

	level := GetLevel(ecs)
	components.Camera.Each(ecs.World, func(e *donburi.Entry) {
		camera := components.Camera.Get(e)
		if camera.Index < 0 || camera.Index > 1 {
			return
		}
		camera.Viewport = gamemath.LerpViewport(camera.Viewport, targets[camera.Index], t)

		var tx, ty float64
		switch {
		case !split.IsSplit && len(centers) > 1:
			tx = (centers[0][0] + centers[1][0]) / 2
			ty = (centers[0][1] + centers[1][1]) / 2
		case camera.Index < len(centers):
			tx, ty = centers[camera.Index][0], centers[camera.Index][1]
		default:
			tx, ty = centers[0][0], centers[0][1]
		}

		if level != nil && level.CurrentLevel != nil {
			_, _, vw, vh := camera.Viewport.Pixels(cfg.C.Width, cfg.C.Height)
			tx = gamemath.ClampCenter(tx, float64(vw), float64(level.CurrentLevel.Width))
			ty = gamemath.ClampCenter(ty, float64(vh), float64(level.CurrentLevel.Height))
		}

		if !camera.Snapped {
			camera.Position.X, camera.Position.Y = tx, ty
			camera.Snapped = true
			return
		}
		camera.Position.X += (tx - camera.Position.X) * cfg.Camera.FollowSmoothing
		camera.Position.Y += (ty - camera.Position.Y) * cfg.Camera.FollowSmoothing
	})
}

// GetOrCreateSplitScreen returns the split state singleton.
func GetOrCreateSplitScreen(ecs *ecs.ECS) *components.SplitScreenData {
	if _, ok := components.SplitScreen.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.SplitScreen))
	}
	e, _ := components.SplitScreen.First(ecs.World)
	return components.SplitScreen.Get(e)
}

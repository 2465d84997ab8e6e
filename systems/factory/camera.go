package factory

import (
	"github.com/automoto/duodash/archetypes"
	"github.com/automoto/duodash/components"
	"github.com/automoto/duodash/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// CreateCameras creates the two split-screen cameras, starting merged, and
// the split state singleton.
func CreateCameras(ecs *ecs.ECS, splitEnabled bool) {
	first, second := gamemath.SplitTargets(false)
	for i, vp := range []gamemath.Viewport{first, second} {
		camera := archetypes.Camera.Spawn(ecs)
		components.Camera.SetValue(camera, components.CameraData{
			Index:    i,
			Viewport: vp,
		})
	}

	split := ecs.World.Entry(ecs.World.Create(components.SplitScreen))
	components.SplitScreen.SetValue(split, components.SplitScreenData{Enabled: splitEnabled})
}

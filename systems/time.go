package systems

import (
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateTime returns the singleton time scale, 1 when first created.
func GetOrCreateTime(ecs *ecs.ECS) *components.TimeData {
	if _, ok := components.Time.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Time))
		components.Time.SetValue(ent, components.TimeData{Scale: 1})
	}

	ent, _ := components.Time.First(ecs.World)
	return components.Time.Get(ent)
}

func SetTimeScale(ecs *ecs.ECS, scale float64) {
	GetOrCreateTime(ecs).Scale = scale
}

// DeltaTime is the scaled length of one simulation tick in seconds.
func DeltaTime(ecs *ecs.ECS) float64 {
	return GetOrCreateTime(ecs).Scale / cfg.TPS
}

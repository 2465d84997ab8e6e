package systems

import (
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/logging"
	"github.com/automoto/duodash/tuning"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// NewUpdateTuning returns a system that reloads the tuning file whenever the
// watcher reports a change and pushes the new controller configs to the
// live players. A nil watcher yields a no-op system.
func NewUpdateTuning(w *tuning.Watcher) ecs.System {
	return func(ecs *ecs.ECS) {
		if w == nil {
			return
		}
		path, changed := w.Poll()
		if !changed {
			return
		}
		log := logging.L().Named("tuning")

		doc, err := tuning.Load(path)
		if err != nil {
			log.Warn("tuning reload failed, keeping current values", zap.String("path", path), zap.Error(err))
			return
		}
		cfg.ApplyTuning(doc)
		ApplyControllerConfigs(ecs)
		log.Info("tuning reloaded", zap.String("path", path))
	}
}

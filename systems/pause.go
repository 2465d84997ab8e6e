package systems

import (
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the Pause action. The options panel closes
// first on a second press.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := GetOrCreateInput(ecs)

	if !GetAction(input, cfg.ActionPause).JustPressed {
		return
	}
	switch {
	case pause.OptionsOpen:
		pause.OptionsOpen = false
	case pause.IsPaused:
		Resume(ecs)
	default:
		Pause(ecs)
	}
}

// Pause shows the pause panel and stops simulated time.
func Pause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = true
	pause.OptionsOpen = false
	SetTimeScale(ecs, 0)
	logging.L().Named("pause").Debug("paused")
}

// Resume hides the pause panel and restores time.
func Resume(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = false
	pause.OptionsOpen = false
	SetTimeScale(ecs, 1)
	logging.L().Named("pause").Debug("resumed")
}

// OpenOptions shows the options panel over the pause panel.
func OpenOptions(ecs *ecs.ECS) {
	GetOrCreatePause(ecs).OptionsOpen = true
}

func CloseOptions(ecs *ecs.ECS) {
	GetOrCreatePause(ecs).OptionsOpen = false
}

// DrawPauseOverlay dims the game behind the pause panel.
func DrawPauseOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}
	b := screen.Bounds()
	vector.FillRect(
		screen,
		0, 0,
		float32(b.Dx()), float32(b.Dy()),
		cfg.Pause.OverlayColor,
		false,
	)
}

// PauseHint returns the navigation hint for the last used device.
func PauseHint(ecs *ecs.ECS) string {
	switch GetOrCreateInput(ecs).LastInputMethod {
	case components.InputPlayStation:
		return "Cross: Select   Options: Resume"
	case components.InputXbox:
		return "A: Select   Start: Resume"
	}
	return "Click: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

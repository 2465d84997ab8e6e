package systems

import (
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// activeSettings outlives scenes: every new world copies it into its
// Settings singleton.
var activeSettings = DefaultSettings()

// DefaultSettings returns the options used before anything is saved.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		ShowProbe:       cfg.Debug.ShowProbe,
		SplitScreen:     true,
		Trail:           true,
	}
}

// LoadActiveSettings replaces the session settings with the saved ones, if
// any, and applies the window options.
func LoadActiveSettings() {
	saved, err := LoadSettings()
	if err == nil && saved != nil {
		activeSettings = fromSaved(saved)
	}
	ApplySettings(activeSettings)
}

// ActiveSettings returns a copy of the session settings.
func ActiveSettings() components.SettingsData {
	return activeSettings
}

// GetOrCreateSettings returns the world's settings singleton.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, activeSettings)
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// UpdateSettings changes the settings through mutate, then applies and
// saves the result.
func UpdateSettings(ecs *ecs.ECS, mutate func(*components.SettingsData)) {
	s := GetOrCreateSettings(ecs)
	before := *s
	mutate(s)
	activeSettings = *s

	if before.Fullscreen != s.Fullscreen || before.ResolutionIndex != s.ResolutionIndex {
		ApplySettings(*s)
	}
	_ = SaveSettings(toSaved(*s))
}

// ApplySettings pushes the window options to ebiten.
func ApplySettings(s components.SettingsData) {
	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen && s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

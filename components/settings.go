package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds the options toggles that are saved between runs.
type SettingsData struct {
	Fullscreen      bool
	ResolutionIndex int
	ShowProbe       bool
	SplitScreen     bool
	Trail           bool
}

var Settings = donburi.NewComponentType[SettingsData]()

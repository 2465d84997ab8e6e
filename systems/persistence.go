package systems

import (
	"encoding/json"

	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/logging"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	ShowProbe       bool `json:"showProbe"`
	SplitScreen     bool `json:"splitScreen"`
	Trail           bool `json:"trail"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for appName. Without it settings
// still work for the session but are not saved.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logging.L().Named("persistence").Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}
	log := logging.L().Named("persistence")

	data, err := gdataManager.LoadItem(cfg.SettingsMenu.StorageKey)
	if err != nil {
		log.Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}
	log := logging.L().Named("persistence")

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("could not serialize settings", zap.Error(err))
		return err
	}
	if err := gdataManager.SaveItem(cfg.SettingsMenu.StorageKey, data); err != nil {
		log.Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

func toSaved(s components.SettingsData) *SavedSettings {
	return &SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		ShowProbe:       s.ShowProbe,
		SplitScreen:     s.SplitScreen,
		Trail:           s.Trail,
	}
}

func fromSaved(saved *SavedSettings) components.SettingsData {
	s := components.SettingsData{
		Fullscreen:      saved.Fullscreen,
		ResolutionIndex: saved.ResolutionIndex,
		ShowProbe:       saved.ShowProbe,
		SplitScreen:     saved.SplitScreen,
		Trail:           saved.Trail,
	}
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		s.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}
	return s
}

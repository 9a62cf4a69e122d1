package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/gooey-cursor/components"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Enabled bool   `json:"enabled"`
	Debug   bool   `json:"debug"`
	Theme   string `json:"theme"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

var openStore = gdata.Open

// InitPersistence initializes the gdata manager for settings storage. On
// failure persistence stays off and settings use their defaults.
func InitPersistence(appName string) error {
	m, err := openStore(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		gdataManager, gdataInitialized = nil, false
		return fmt.Errorf("persistence: open %q: %w", appName, err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
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
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("could not serialize settings", zap.Error(err))
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Enabled: s.Enabled,
		Debug:   s.Debug,
		Theme:   s.Theme,
	})
}

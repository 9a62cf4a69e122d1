package systems

import (
	"github.com/automoto/gooey-cursor/archetypes"
	"github.com/automoto/gooey-cursor/components"
	cfg "github.com/automoto/gooey-cursor/config"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GetOrCreateSettings returns the singleton Settings component. A new one
// starts from the saved settings, or enabled with the default theme.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(ecs.World); ok {
		return components.Settings.Get(entry)
	}

	entry := archetypes.Settings.Spawn(ecs)
	settings := components.Settings.Get(entry)
	settings.Enabled = true
	settings.Debug = cfg.Debug.Enabled

	if saved, err := LoadSettings(); err == nil && saved != nil {
		settings.Enabled = saved.Enabled
		settings.Debug = saved.Debug || cfg.Debug.Enabled
		settings.Theme = saved.Theme
	}
	return settings
}

// UpdateSettings handles the effect, theme and debug toggles and saves
// changes. Must run AFTER UpdateInput.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionToggleEffect).JustPressed {
		settings.Enabled = !settings.Enabled
		settings.Dirty = true
		log.Info("effect toggled", zap.Bool("enabled", settings.Enabled))
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionCycleTheme).JustPressed {
		lib := GetOrCreateThemeLibrary(ecs)
		ApplyTheme(ecs, lib.File.Next(settings.Theme), true)
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

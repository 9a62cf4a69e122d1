package systems

import (
	"github.com/automoto/gooey-cursor/archetypes"
	"github.com/automoto/gooey-cursor/components"
	cfg "github.com/automoto/gooey-cursor/config"
	"github.com/automoto/gooey-cursor/theme"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GetOrCreateThemeLibrary returns the loaded themes, falling back to the
// built-in set.
func GetOrCreateThemeLibrary(ecs *ecs.ECS) *components.ThemeLibraryData {
	entry, ok := components.ThemeLibrary.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.ThemeLibrary))
	}
	lib := components.ThemeLibrary.Get(entry)
	if lib.File == nil {
		lib.File = theme.Default()
	}
	return lib
}

// GetOrCreateThemeColor returns the singleton shader colour. A new one is
// snapped to the saved theme, or the file's active theme.
func GetOrCreateThemeColor(ecs *ecs.ECS) *components.ThemeColorData {
	if entry, ok := components.ThemeColor.First(ecs.World); ok {
		return components.ThemeColor.Get(entry)
	}
	entry := archetypes.ThemeColor.Spawn(ecs)
	ApplyTheme(ecs, resolveTheme(ecs), false)
	return components.ThemeColor.Get(entry)
}

// resolveTheme picks the user's theme when the library still has it
func resolveTheme(ecs *ecs.ECS) theme.Theme {
	lib := GetOrCreateThemeLibrary(ecs)
	settings := GetOrCreateSettings(ecs)
	if t, err := lib.File.Lookup(settings.Theme); err == nil {
		return t
	}
	t, _ := lib.File.Lookup(lib.File.Active)
	return t
}

// ApplyTheme makes t the active theme and moves the shader colour to it
func ApplyTheme(ecs *ecs.ECS, t theme.Theme, animate bool) {
	rgb, err := t.RGB()
	if err != nil {
		log.Warn("ignoring theme", zap.String("theme", t.Name), zap.Error(err))
		return
	}

	settings := GetOrCreateSettings(ecs)
	if settings.Theme != t.Name {
		settings.Theme = t.Name
		settings.Dirty = true
	}

	entry, ok := components.ThemeColor.First(ecs.World)
	if !ok {
		entry = archetypes.ThemeColor.Spawn(ecs)
	}
	color := components.ThemeColor.Get(entry)
	if animate {
		color.TransitionTo(rgb, cfg.Theme.TransitionSeconds)
	} else {
		color.Snap(rgb)
	}
}

// SetThemeFile replaces the theme library. A changed active theme in the
// file wins over the user's choice; otherwise the user's theme is kept when
// it still exists.
func SetThemeFile(ecs *ecs.ECS, f *theme.File) {
	lib := GetOrCreateThemeLibrary(ecs)
	prev := lib.File.Active
	lib.File = f
	if f.Active != prev {
		t, _ := f.Lookup(f.Active)
		ApplyTheme(ecs, t, true)
		return
	}
	ApplyTheme(ecs, resolveTheme(ecs), true)
}

// NewUpdateThemeFile returns a system that reloads the theme file when the
// watcher reports a change. A file that fails to load keeps the old themes.
func NewUpdateThemeFile(w *theme.Watcher) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				f, err := theme.Load(path)
				if err != nil {
					log.Warn("theme reload failed", zap.String("path", path), zap.Error(err))
					continue
				}
				log.Info("theme file reloaded", zap.String("path", path), zap.String("active", f.Active))
				SetThemeFile(ecs, f)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("theme watcher", zap.Error(err))
			default:
				return
			}
		}
	}
}

// UpdateThemeColor advances a running colour transition
func UpdateThemeColor(ecs *ecs.ECS) {
	color := GetOrCreateThemeColor(ecs)
	if color.Animating() {
		color.Update(TickSeconds())
	}
}

package components

import "github.com/yohamta/donburi"

// SettingsData stores the user's toggles for the effect
type SettingsData struct {
	Enabled bool   // effect switched on by the user (F1)
	Debug   bool   // debug HUD visible (F3)
	Theme   string // active theme name
	Dirty   bool   // needs saving
}

var Settings = donburi.NewComponentType[SettingsData]()

package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleEffect
	ActionCycleTheme
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionToggleEffect: {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionCycleTheme:   {Keys: []ebiten.Key{ebiten.KeyF2, ebiten.KeyT}},
			ActionToggleDebug:  {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionQuit:         {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}

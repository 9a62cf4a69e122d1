package components

import (
	"github.com/automoto/gooey-cursor/field"
	"github.com/automoto/gooey-cursor/theme"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ThemeColorData is the colour fed to the shader. Theme changes tween each
// channel from the current colour to the target.
type ThemeColorData struct {
	Current field.RGB
	Target  field.RGB
	tweens  [3]*gween.Tween
	Dirty   bool // colour changed since the renderer last saw it
}

var ThemeColor = donburi.NewComponentType[ThemeColorData]()

// Snap sets the colour immediately, without a transition
func (t *ThemeColorData) Snap(c field.RGB) {
	t.Current = c
	t.Target = c
	t.tweens = [3]*gween.Tween{}
	t.Dirty = true
}

// TransitionTo starts a tween towards c lasting seconds. A non-positive
// duration snaps.
func (t *ThemeColorData) TransitionTo(c field.RGB, seconds float32) {
	if seconds <= 0 {
		t.Snap(c)
		return
	}
	t.Target = c
	for i := range t.tweens {
		t.tweens[i] = gween.New(float32(t.Current[i]), float32(c[i]), seconds, ease.InOutQuad)
	}
}

// Animating reports whether a transition is in progress
func (t *ThemeColorData) Animating() bool {
	for _, tw := range t.tweens {
		if tw != nil {
			return true
		}
	}
	return false
}

// Update advances the transition by dt seconds
func (t *ThemeColorData) Update(dt float32) {
	for i, tw := range t.tweens {
		if tw == nil {
			continue
		}
		v, finished := tw.Update(dt)
		t.Current[i] = float64(v)
		if finished {
			t.Current[i] = t.Target[i]
			t.tweens[i] = nil
		}
		t.Dirty = true
	}
}

// ThemeLibraryData holds the loaded theme file
type ThemeLibraryData struct {
	File *theme.File
}

var ThemeLibrary = donburi.NewComponentType[ThemeLibraryData]()

package systems

import (
	"github.com/automoto/gooey-cursor/components"
	"github.com/automoto/gooey-cursor/field"
	"github.com/automoto/gooey-cursor/trail"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Effect is the mounted trail renderer as seen by the draw systems
type Effect interface {
	SetColor(c field.RGB)
	Draw(screen *ebiten.Image, t *trail.Trail) error
	Parity() int
	Size() (int, int)
	LiveBuffers() int
}

// EffectSource returns the mounted effect, or nil while unmounted
type EffectSource func() Effect

// NewDrawTrail returns a renderer that draws one frame of the trail on top of
// the screen. A failed frame is passed to onError and nothing is drawn.
func NewDrawTrail(effect EffectSource, onError func(error)) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		eff := effect()
		if eff == nil {
			return
		}
		entry, ok := components.Cursor.First(ecs.World)
		if !ok {
			return
		}

		color := GetOrCreateThemeColor(ecs)
		if color.Dirty {
			eff.SetColor(color.Current)
			color.Dirty = false
		}

		if err := eff.Draw(screen, components.Cursor.Get(entry).Trail()); err != nil {
			onError(err)
		}
	}
}

package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/gooey-cursor/components"
	"github.com/automoto/gooey-cursor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugPanel = color.RGBA{0, 0, 0, 160}
	debugText  = color.RGBA{220, 220, 235, 255}
)

// DebugLines describes the effect state shown by the debug HUD
func DebugLines(ecs *ecs.ECS, eff Effect, reason error) []string {
	settings := GetOrCreateSettings(ecs)
	vp := GetOrCreateViewport(ecs)

	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("theme %s", settings.Theme),
		fmt.Sprintf("canvas %dx%d @%.2gx", vp.CanvasW, vp.CanvasH, vp.DPR),
	}

	if entry, ok := components.Cursor.First(ecs.World); ok {
		cursor := components.Cursor.Get(entry)
		lines = append(lines,
			fmt.Sprintf("points %d  velocity %.0f px/s", cursor.Trail().Len(), cursor.Sampler.Velocity()),
		)
	}

	switch {
	case eff != nil:
		w, h := eff.Size()
		lines = append(lines,
			fmt.Sprintf("buffers %dx%d  parity %d  live %d", w, h, eff.Parity(), eff.LiveBuffers()),
		)
	case reason != nil:
		lines = append(lines, "off: "+reason.Error())
	case !settings.Enabled:
		lines = append(lines, "off: toggled by user")
	default:
		lines = append(lines, "off")
	}
	return lines
}

// NewDrawDebug returns the debug HUD renderer (F3)
func NewDrawDebug(effect EffectSource, reason func() error) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateSettings(ecs).Debug || !fonts.Loaded(fonts.Mono) {
			return
		}

		lines := DebugLines(ecs, effect(), reason())
		face := fonts.Mono.Get()
		lineHeight := face.Metrics().Height.Ceil()

		widest := 0
		for _, l := range lines {
			widest = max(widest, text.BoundString(face, l).Dx())
		}
		pad := 8
		vector.FillRect(screen, 0, 0,
			float32(widest+pad*2), float32(lineHeight*len(lines)+pad*2),
			debugPanel, false)

		text.Draw(screen, strings.Join(lines, "\n"), face, pad, pad+face.Metrics().Ascent.Ceil(), debugText)
	}
}

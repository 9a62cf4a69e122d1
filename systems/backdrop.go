package systems

import (
	"image"

	cfg "github.com/automoto/gooey-cursor/config"
	"github.com/automoto/gooey-cursor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawBackdrop draws stand-in page content under the trail. Transparent
// overlay windows have no backdrop; the desktop shows through instead.
func DrawBackdrop(ecs *ecs.ECS, screen *ebiten.Image) {
	if cfg.Debug.Overlay {
		return
	}
	screen.Fill(cfg.Backdrop.Background)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	gap := cfg.Backdrop.StripeGap * float32(max(GetOrCreateViewport(ecs).DPR, 1))

	for y := gap; y < h; y += gap {
		vector.FillRect(screen, 0, y, w, 1, cfg.Backdrop.Stripe, false)
	}

	// Centred card
	cw, ch := w/2, h/3
	cx, cy := (w-cw)/2, (h-ch)/2
	vector.FillRect(screen, cx, cy, cw, ch, cfg.Backdrop.Card, true)

	if !fonts.Loaded(fonts.Regular) {
		return
	}
	face := fonts.Regular.Get()
	card := image.Rect(int(cx), int(cy), int(cx+cw), int(cy+ch))
	for i, p := range captionOrigins(face, cfg.Backdrop.Caption, card) {
		text.Draw(screen, cfg.Backdrop.Caption[i], face, p.X, p.Y, cfg.Backdrop.Text)
	}
}

// captionOrigins returns the baseline origin of each line, centring every
// line horizontally and the block vertically within card.
func captionOrigins(face font.Face, lines []string, card image.Rectangle) []image.Point {
	lineHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	top := card.Min.Y + (card.Dy()-lineHeight*len(lines))/2

	origins := make([]image.Point, len(lines))
	for i, l := range lines {
		lw := text.BoundString(face, l).Dx()
		origins[i] = image.Pt(card.Min.X+(card.Dx()-lw)/2, top+i*lineHeight+ascent)
	}
	return origins
}

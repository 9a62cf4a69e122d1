package field

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/automoto/gooey-cursor/pipeline"
	"github.com/automoto/gooey-cursor/trail"
)

// Surface is a float render target. Channels are clamped to [0,1] on write,
// like an 8-bit GPU texture, but keep full precision in between.
type Surface struct {
	Width, Height int
	Pix           []Pixel
}

func (s *Surface) At(x, y int) Pixel {
	return s.Pix[y*s.Width+x]
}

func (s *Surface) set(x, y int, p Pixel) {
	s.Pix[y*s.Width+x] = Pixel{R: clamp01(p.R), G: clamp01(p.G), B: clamp01(p.B), A: clamp01(p.A)}
}

func (s *Surface) clear() {
	clear(s.Pix)
}

// SurfaceAllocator hands out CPU surfaces to a pipeline.
type SurfaceAllocator struct{}

func (SurfaceAllocator) Allocate(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pipeline.ErrInvalidSize, width, height)
	}
	return &Surface{Width: width, Height: height, Pix: make([]Pixel, width*height)}, nil
}

func (SurfaceAllocator) Release(s *Surface) {
	if s != nil {
		s.Pix = nil
	}
}

// Reference is a software renderer for the trail. It runs the fragment maths
// for every pixel and feeds frames back through a ping-pong pair exactly as
// the GPU path does.
type Reference struct {
	opts     Options
	buffers  *pipeline.PingPong[*Surface]
	snapshot []trail.CursorPoint
}

func NewReference(opts Options, width, height int) (*Reference, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	buffers, err := pipeline.New[*Surface](SurfaceAllocator{}, width, height)
	if err != nil {
		return nil, err
	}
	return &Reference{
		opts:     opts,
		buffers:  buffers,
		snapshot: make([]trail.CursorPoint, 0, trail.Capacity),
	}, nil
}

func (r *Reference) SetColor(c RGB) {
	r.opts.Color = c
}

func (r *Reference) Resize(width, height int) error {
	return r.buffers.Resize(width, height)
}

func (r *Reference) Size() (int, int) {
	return r.buffers.Size()
}

func (r *Reference) Parity() int {
	return r.buffers.Parity()
}

// Render draws one frame of t and returns the surface written.
func (r *Reference) Render(t *trail.Trail) (*Surface, error) {
	r.snapshot = t.Snapshot(r.snapshot)
	return r.buffers.Step(func(read, write *Surface) error {
		write.clear()
		h := float64(write.Height)
		for y := 0; y < write.Height; y++ {
			for x := 0; x < write.Width; x++ {
				// Pixel centre, flipped to a bottom-left origin.
				p := trail.CursorPoint{X: float64(x) + 0.5, Y: h - (float64(y) + 0.5)}
				s := Evaluate(p, r.snapshot, r.opts.Thickness, r.opts.GlowStrength)
				write.set(x, y, Shade(s, read.At(x, y), r.opts.Color, r.opts.Threshold, r.opts.TrailDecayFactor, r.opts.FadeFloor))
			}
		}
		return nil
	})
}

// Pixmap composites s over background with a screen blend, the way the
// overlay is presented on top of page content.
func (r *Reference) Pixmap(s *Surface, background gg.RGBA) *gg.Pixmap {
	pm := gg.NewPixmap(s.Width, s.Height)
	screen := func(a, b float64) float64 { return a + b - a*b }
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			p := s.At(x, y)
			pm.SetPixel(x, y, gg.RGBA{
				R: screen(p.R, background.R),
				G: screen(p.G, background.G),
				B: screen(p.B, background.B),
				A: 1,
			})
		}
	}
	return pm
}

func (r *Reference) Dispose() {
	r.buffers.Dispose()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

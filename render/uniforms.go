package render

import (
	"github.com/automoto/gooey-cursor/field"
	"github.com/automoto/gooey-cursor/trail"
)

// Uniform names in assets/shaders/gooey.kage.
const (
	uniformPoints       = "Points"
	uniformCount        = "Count"
	uniformColor        = "Color"
	uniformGlowStrength = "GlowStrength"
	uniformThickness    = "Thickness"
	uniformDecay        = "Decay"
	uniformFadeFloor    = "FadeFloor"
	uniformThreshold    = "Threshold"
)

// Uniforms is the per-renderer uniform block. The maps and slices are reused
// frame to frame.
type Uniforms struct {
	values map[string]any
	points []float32
	color  []float32
}

func NewUniforms(opts field.Options) *Uniforms {
	u := &Uniforms{
		values: make(map[string]any, 8),
		points: make([]float32, 2*trail.Capacity),
		color:  make([]float32, 3),
	}
	u.values[uniformPoints] = u.points
	u.values[uniformColor] = u.color
	u.values[uniformCount] = 0
	u.values[uniformGlowStrength] = float32(opts.GlowStrength)
	u.values[uniformThickness] = float32(opts.Thickness)
	u.values[uniformDecay] = float32(opts.TrailDecayFactor)
	u.values[uniformFadeFloor] = float32(opts.FadeFloor)
	u.values[uniformThreshold] = float32(opts.Threshold)
	u.SetColor(opts.Color)
	return u
}

// SetColor updates the colour uniform only.
func (u *Uniforms) SetColor(c field.RGB) {
	for i := range u.color {
		u.color[i] = float32(c[i])
	}
}

// SetPoints packs points into the fixed-size array and sets Count. Points
// past trail.Capacity are ignored; unused slots are zeroed.
func (u *Uniforms) SetPoints(points []trail.CursorPoint) {
	n := min(len(points), trail.Capacity)
	for i := 0; i < n; i++ {
		u.points[2*i] = float32(points[i].X)
		u.points[2*i+1] = float32(points[i].Y)
	}
	clear(u.points[2*n:])
	u.values[uniformCount] = n
}

func (u *Uniforms) Count() int {
	return u.values[uniformCount].(int)
}

func (u *Uniforms) Map() map[string]any {
	return u.values
}

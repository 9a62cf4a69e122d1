// Package field evaluates the metaball trail on the CPU with the same maths as
// the Kage shader in assets/shaders/gooey.kage.
package field

import (
	"math"

	"github.com/automoto/gooey-cursor/trail"
)

const (
	// Epsilon keeps the inverse-square falloff finite at a point's centre.
	Epsilon = 1e-4

	cohesionBand = 0.1
	glowMix      = 0.3
	alphaScale   = 0.9
)

// Sample is the accumulated field at one pixel.
type Sample struct {
	Field   float64
	MaxGlow float64
}

// Evaluate sums every point's contribution at p. Points are ordered oldest
// first, matching the trail.
func Evaluate(p trail.CursorPoint, points []trail.CursorPoint, thickness, glowStrength float64) Sample {
	var s Sample
	count := min(len(points), trail.Capacity)
	n := float64(count)
	for i := 0; i < count; i++ {
		age := (n - float64(i)) / n
		radius := thickness * (0.5 + age*0.5)
		glow := glowStrength * (1 - age*0.6)

		dx := p.X - points[i].X
		dy := p.Y - points[i].Y
		c := radius / (dx*dx + dy*dy + Epsilon)

		s.Field += c
		s.MaxGlow = math.Max(s.MaxGlow, c*glow)
	}
	return s
}

// Smoothstep matches the GLSL/Kage builtin.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	t = math.Max(0, math.Min(1, t))
	return t * t * (3 - 2*t)
}

// Intensity is the cohesion step: how far inside the blob a field value is.
func Intensity(field, threshold float64) float64 {
	return Smoothstep(threshold-cohesionBand, threshold+cohesionBand, field)
}

// Pixel is a straight RGBA colour in float precision.
type Pixel struct {
	R, G, B, A float64
}

// Shade produces a pixel's output from its field sample and the previous
// frame's value at the same pixel. The previous value is scaled by decay,
// lowered by floor and clamped at zero.
func Shade(s Sample, prev Pixel, color RGB, threshold, decay, floor float64) Pixel {
	intensity := Intensity(s.Field, threshold)
	channel := func(c, p float64) float64 {
		final := c*intensity + c*s.MaxGlow*glowMix
		return math.Max(final, math.Max(p*decay-floor, 0))
	}
	return Pixel{
		R: channel(color[0], prev.R),
		G: channel(color[1], prev.G),
		B: channel(color[2], prev.B),
		A: intensity * alphaScale,
	}
}

package field

import (
	"errors"
	"fmt"

	"github.com/automoto/gooey-cursor/trail"
)

var ErrInvalidOptions = errors.New("field: invalid options")

// RenderScaleCap bounds the device pixel ratio used for the canvas.
const RenderScaleCap = 2.0

// Options is fixed for the lifetime of a renderer. Only Color changes at
// runtime, and only through the renderer's colour uniform.
type Options struct {
	Color            RGB
	GlowStrength     float64
	Thickness        float64
	TrailDecayFactor float64 // per-frame attenuation of the previous frame, in (0,1)
	FadeFloor        float64 // subtracted after decay so 8-bit afterglow reaches zero
	Threshold        float64 // field value at which a pixel is inside the blob
	MaxTrailLength   int
	RenderScale      float64 // device pixel ratio, capped at RenderScaleCap
}

// RGB is a linear colour with components in [0,1].
type RGB [3]float64

func DefaultOptions() Options {
	return Options{
		Color:            RGB{0.49, 0.36, 1},
		GlowStrength:     0.6,
		Thickness:        30,
		TrailDecayFactor: 0.92,
		FadeFloor:        0.5 / 255,
		Threshold:        0.25,
		MaxTrailLength:   trail.HardMaxLength,
		RenderScale:      1,
	}
}

// ClampScale caps a device pixel ratio to RenderScaleCap.
func ClampScale(dpr float64) float64 {
	if dpr <= 0 || dpr != dpr {
		return 1
	}
	return min(dpr, RenderScaleCap)
}

func (o Options) Validate() error {
	switch {
	case o.TrailDecayFactor <= 0 || o.TrailDecayFactor >= 1:
		return fmt.Errorf("%w: decay factor %v not in (0,1)", ErrInvalidOptions, o.TrailDecayFactor)
	case o.FadeFloor < 0 || o.FadeFloor >= 1:
		return fmt.Errorf("%w: fade floor %v not in [0,1)", ErrInvalidOptions, o.FadeFloor)
	case o.Thickness <= 0:
		return fmt.Errorf("%w: thickness %v", ErrInvalidOptions, o.Thickness)
	case o.GlowStrength < 0:
		return fmt.Errorf("%w: glow strength %v", ErrInvalidOptions, o.GlowStrength)
	case o.MaxTrailLength < 1 || o.MaxTrailLength > trail.Capacity:
		return fmt.Errorf("%w: max trail length %d", ErrInvalidOptions, o.MaxTrailLength)
	case o.RenderScale <= 0 || o.RenderScale > RenderScaleCap:
		return fmt.Errorf("%w: render scale %v", ErrInvalidOptions, o.RenderScale)
	}
	return nil
}

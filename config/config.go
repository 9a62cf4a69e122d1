package config

import (
	"image/color"

	"github.com/automoto/gooey-cursor/field"
	"github.com/automoto/gooey-cursor/trail"
)

// Config holds general window configuration
type Config struct {
	Width  int // initial window size in viewport pixels
	Height int
	Title  string
	TPS    int
}

// RenderConfig holds the trail's look. Colour comes from the theme.
type RenderConfig struct {
	GlowStrength     float64
	Thickness        float64 // in device pixels at render scale 1
	TrailDecayFactor float64
	FadeFloor        float64
	Threshold        float64
	MaxTrailLength   int
}

// TrailConfig holds pointer sampling and idle decay settings
type TrailConfig struct {
	Sampler          trail.Config
	DecayEveryFrames int // idle frames per evicted point
}

// ThemeConfig holds colour transition and settings persistence values
type ThemeConfig struct {
	TransitionSeconds  float32 // colour tween duration when the theme changes
	PersistenceAppName string
}

// BackdropConfig holds the stand-in page content drawn under the overlay
type BackdropConfig struct {
	Background color.RGBA
	Stripe     color.RGBA
	StripeGap  float32
	Card       color.RGBA
	Caption    []string // drawn centred on the card in the regular font
	Text       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // show the debug HUD at start
	Overlay bool // transparent window, no backdrop
}

// Global configuration instances
var C *Config
var Render RenderConfig
var Trail TrailConfig
var Theme ThemeConfig
var Backdrop BackdropConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "gooey cursor",
		TPS:    60,
	}

	defaults := field.DefaultOptions()
	Render = RenderConfig{
		GlowStrength:     defaults.GlowStrength,
		Thickness:        defaults.Thickness,
		TrailDecayFactor: defaults.TrailDecayFactor,
		FadeFloor:        defaults.FadeFloor,
		Threshold:        defaults.Threshold,
		MaxTrailLength:   trail.HardMaxLength,
	}

	sampler := trail.DefaultConfig()
	sampler.MaxLength = Render.MaxTrailLength
	Trail = TrailConfig{
		Sampler:          sampler,
		DecayEveryFrames: 3,
	}

	Theme = ThemeConfig{
		TransitionSeconds:  0.35,
		PersistenceAppName: "gooey-cursor",
	}

	Backdrop = BackdropConfig{
		Background: color.RGBA{R: 18, G: 18, B: 28, A: 255},
		Stripe:     color.RGBA{R: 28, G: 28, B: 44, A: 255},
		StripeGap:  48,
		Card:       color.RGBA{R: 40, G: 40, B: 62, A: 255},
		Caption: []string{
			"move the pointer across the page",
			"F1 effect   T theme   F3 debug   Esc quit",
		},
		Text: color.RGBA{R: 150, G: 150, B: 180, A: 255},
	}
}

// RenderOptions builds the renderer options for a device pixel ratio and
// colour. Thickness scales with the square of the ratio so the blob keeps its
// on-screen size under the inverse-square falloff.
func RenderOptions(dpr float64, c field.RGB) field.Options {
	scale := field.ClampScale(dpr)
	return field.Options{
		Color:            c,
		GlowStrength:     Render.GlowStrength,
		Thickness:        Render.Thickness * scale * scale,
		TrailDecayFactor: Render.TrailDecayFactor,
		FadeFloor:        Render.FadeFloor,
		Threshold:        Render.Threshold,
		MaxTrailLength:   Render.MaxTrailLength,
		RenderScale:      scale,
	}
}

// Command trailsnap renders a scripted pointer sweep with the software
// reference renderer and writes the last frame to a PNG.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/automoto/gooey-cursor/config"
	"github.com/automoto/gooey-cursor/field"
	"github.com/automoto/gooey-cursor/logger"
	"github.com/automoto/gooey-cursor/theme"
	"github.com/automoto/gooey-cursor/trail"
	"github.com/gogpu/gg"
	"go.uber.org/zap"
)

type options struct {
	Width, Height int
	DPR           float64
	Frames        int
	Rest          int // idle frames after the sweep
	ThemeName     string
	ThemesPath    string
	Background    string
	Out           string
}

func main() {
	var o options
	flag.IntVar(&o.Width, "w", 320, "viewport width in pixels")
	flag.IntVar(&o.Height, "h", 200, "viewport height in pixels")
	flag.Float64Var(&o.DPR, "dpr", 1, "device pixel ratio")
	flag.IntVar(&o.Frames, "frames", 90, "frames of pointer movement")
	flag.IntVar(&o.Rest, "rest", 0, "idle frames rendered after the sweep")
	flag.StringVar(&o.ThemeName, "theme", "", "theme name (default: the file's active theme)")
	flag.StringVar(&o.ThemesPath, "themes", "", "theme YAML file (default: built-in themes)")
	flag.StringVar(&o.Background, "bg", "#12121c", "backdrop colour")
	flag.StringVar(&o.Out, "o", "trail.png", "output PNG")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	log, err := logger.New(logger.Config{LogLevel: *logLevel, Component: "trailsnap"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(o, log); err != nil {
		log.Error("trailsnap failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(o options, log *zap.Logger) error {
	color, err := resolveColor(o.ThemesPath, o.ThemeName)
	if err != nil {
		return err
	}

	pm, stats, err := Render(o, color)
	if err != nil {
		return err
	}
	if err := pm.SavePNG(o.Out); err != nil {
		return fmt.Errorf("write %s: %w", o.Out, err)
	}

	log.Info("wrote frame",
		zap.String("path", o.Out),
		zap.Int("width", pm.Width()),
		zap.Int("height", pm.Height()),
		zap.Int("points", stats.Points),
		zap.Int("frames", stats.Frames),
		zap.Float64("peak_velocity", stats.PeakVelocity))
	return nil
}

func resolveColor(path, name string) (field.RGB, error) {
	themes := theme.Default()
	if path != "" {
		f, err := theme.Load(path)
		if err != nil {
			return field.RGB{}, err
		}
		themes = f
	}
	if name == "" {
		name = themes.Active
	}
	t, err := themes.Lookup(name)
	if err != nil {
		return field.RGB{}, err
	}
	return t.RGB()
}

// Stats summarises a rendered sweep
type Stats struct {
	Frames       int
	Points       int // trail length at the last frame
	PeakVelocity float64
}

// Render runs the sweep at 60 frames per second and returns the last frame
// composited over the backdrop.
func Render(o options, color field.RGB) (*gg.Pixmap, Stats, error) {
	scale := field.ClampScale(o.DPR)
	cw := int(math.Ceil(float64(o.Width) * scale))
	ch := int(math.Ceil(float64(o.Height) * scale))

	ref, err := field.NewReference(config.RenderOptions(scale, color), cw, ch)
	if err != nil {
		return nil, Stats{}, err
	}
	defer ref.Dispose()

	sampler := trail.NewSampler(config.Trail.Sampler, trail.New())
	sampler.SetViewport(scale, float64(ch))
	decay := trail.NewDecay(config.Trail.DecayEveryFrames)

	var stats Stats
	var frame *field.Surface
	step := func(i int, moving bool) error {
		now := float64(i) * 1000 / 60
		if moving {
			x, y := sweep(float64(i)/60, float64(o.Width), float64(o.Height))
			sampler.OnPointerMove(x, y, now)
		}
		sampler.Settle(now)
		decay.Tick(sampler.Trail(), sampler.Idle())
		stats.PeakVelocity = max(stats.PeakVelocity, sampler.Velocity())

		frame, err = ref.Render(sampler.Trail())
		stats.Frames++
		return err
	}

	for i := 0; i < o.Frames; i++ {
		if err := step(i, true); err != nil {
			return nil, stats, err
		}
	}
	for i := o.Frames; i < o.Frames+o.Rest; i++ {
		if err := step(i, false); err != nil {
			return nil, stats, err
		}
	}
	if frame == nil {
		return nil, stats, fmt.Errorf("no frames rendered")
	}
	stats.Points = sampler.Trail().Len()

	return ref.Pixmap(frame, gg.Hex(o.Background)), stats, nil
}

// sweep is a figure-of-eight across the viewport at t seconds
func sweep(t, w, h float64) (float64, float64) {
	x := w/2 + w*0.35*math.Sin(2*math.Pi*0.5*t)
	y := h/2 + h*0.25*math.Sin(2*math.Pi*t)
	return x, y
}

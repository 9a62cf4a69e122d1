package scenes

import (
	"errors"
	"sync"

	"github.com/automoto/gooey-cursor/capability"
	cfg "github.com/automoto/gooey-cursor/config"
	"github.com/automoto/gooey-cursor/field"
	"github.com/automoto/gooey-cursor/pipeline"
	"github.com/automoto/gooey-cursor/render"
	"github.com/automoto/gooey-cursor/systems"
	"github.com/automoto/gooey-cursor/systems/factory"
	"github.com/automoto/gooey-cursor/theme"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Effect is a mounted trail renderer. Dispose releases every resource it
// holds.
type Effect interface {
	systems.Effect
	Resize(width, height int) error
	Dispose()
}

// EffectFactory creates an effect for a canvas of width x height pixels
type EffectFactory func(opts field.Options, width, height int) (Effect, error)

// OverlayOptions wires the scene to its environment
type OverlayOptions struct {
	Gate      *capability.Gate
	Themes    *theme.File    // nil = built-in themes
	Watcher   *theme.Watcher // optional hot reload
	NewEffect EffectFactory  // nil = GPU renderer
	Log       *zap.Logger
}

// OverlayScene mounts the trail effect over the window while the capability
// gate and the user allow it, and unmounts it otherwise.
type OverlayScene struct {
	ecs  *ecs.ECS
	opts OverlayOptions
	log  *zap.Logger
	once sync.Once

	effect Effect
	cursor *donburi.Entry
	quit   bool
}

// NewOverlayScene creates the scene. Nothing is allocated until the first
// Update or Resize.
func NewOverlayScene(opts OverlayOptions) *OverlayScene {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Gate == nil {
		opts.Gate = capability.NewGate(capability.NewStatic(false, false), opts.Log)
	}
	if opts.NewEffect == nil {
		log := opts.Log.Named("render")
		opts.NewEffect = func(o field.Options, w, h int) (Effect, error) {
			r, err := render.New(o, w, h, log)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
	}
	return &OverlayScene{opts: opts, log: opts.Log.Named("overlay")}
}

func (s *OverlayScene) Update() {
	s.once.Do(s.configure)
	s.reconcile()
	s.ecs.Update()
	if systems.QuitRequested(s.ecs) {
		s.quit = true
	}
}

func (s *OverlayScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Resize records the window geometry and returns the canvas size in device
// pixels. The effect's buffers follow the canvas. A scale change unmounts the
// effect and the next Update mounts it with thickness for the new scale.
func (s *OverlayScene) Resize(width, height, dpr float64) (float64, float64) {
	s.once.Do(s.configure)

	prevDPR := systems.GetOrCreateViewport(s.ecs).DPR
	changed := systems.SetViewport(s.ecs, width, height, dpr)
	vp := systems.GetOrCreateViewport(s.ecs)
	outW, outH := float64(max(vp.CanvasW, 1)), float64(max(vp.CanvasH, 1))
	if !changed || s.effect == nil {
		return outW, outH
	}

	if vp.DPR != prevDPR {
		s.log.Info("device scale changed", zap.Float64("dpr", vp.DPR))
		s.unmount()
		return outW, outH
	}

	// A hidden or collapsed window keeps the current buffers until it has an area again.
	if vp.CanvasW <= 0 || vp.CanvasH <= 0 {
		s.log.Debug("viewport collapsed", zap.Int("w", vp.CanvasW), zap.Int("h", vp.CanvasH))
		return outW, outH
	}

	if err := s.effect.Resize(vp.CanvasW, vp.CanvasH); err != nil {
		if errors.Is(err, pipeline.ErrInvalidSize) {
			s.log.Warn("resize skipped", zap.Error(err))
			return outW, outH
		}
		s.opts.Gate.Disable(err)
		s.unmount()
	}
	return outW, outH
}

// Mounted reports whether the effect currently holds GPU resources
func (s *OverlayScene) Mounted() bool {
	return s.effect != nil
}

// Quit reports whether the user asked to exit
func (s *OverlayScene) Quit() bool {
	return s.quit
}

// Close unmounts the effect and stops listening to the environment
func (s *OverlayScene) Close() {
	s.unmount()
	s.opts.Gate.Close()
	if s.opts.Watcher != nil {
		if err := s.opts.Watcher.Close(); err != nil {
			s.log.Warn("closing theme watcher", zap.Error(err))
		}
	}
}

func (s *OverlayScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	s.ecs = ecs

	if s.opts.Themes != nil {
		systems.GetOrCreateThemeLibrary(ecs).File = s.opts.Themes
	}

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	if s.opts.Watcher != nil {
		ecs.AddSystem(systems.NewUpdateThemeFile(s.opts.Watcher))
	}
	ecs.AddSystem(systems.UpdateThemeColor)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateIdleDecay)

	ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	ecs.AddRenderer(cfg.Overlay, systems.NewDrawTrail(s.currentEffect, s.opts.Gate.Disable))
	ecs.AddRenderer(cfg.HUD, systems.NewDrawDebug(s.currentEffect, s.opts.Gate.Reason))

	// Resolve the starting colour before the first mount
	systems.GetOrCreateThemeColor(ecs)
}

func (s *OverlayScene) currentEffect() systems.Effect {
	if s.effect == nil {
		return nil
	}
	return s.effect
}

// reconcile mounts or unmounts so the effect runs exactly when the gate and
// the user allow it.
func (s *OverlayScene) reconcile() {
	run := systems.GetOrCreateSettings(s.ecs).Enabled && s.opts.Gate.ShouldRun()
	switch {
	case run && s.effect == nil:
		s.mount()
	case !run && s.effect != nil:
		s.unmount()
	}
}

func (s *OverlayScene) mount() {
	vp := systems.GetOrCreateViewport(s.ecs)
	if vp.CanvasW <= 0 || vp.CanvasH <= 0 {
		return
	}

	color := systems.GetOrCreateThemeColor(s.ecs)
	eff, err := s.opts.NewEffect(cfg.RenderOptions(vp.DPR, color.Current), vp.CanvasW, vp.CanvasH)
	if err != nil {
		s.opts.Gate.Disable(err)
		return
	}
	s.effect = eff
	s.cursor = factory.CreateCursor(s.ecs, vp)
	color.Dirty = true

	s.log.Info("effect mounted",
		zap.Int("width", vp.CanvasW),
		zap.Int("height", vp.CanvasH),
		zap.Float64("dpr", vp.DPR))
}

func (s *OverlayScene) unmount() {
	if s.cursor != nil && s.cursor.Valid() {
		s.ecs.World.Remove(s.cursor.Entity())
	}
	s.cursor = nil

	if s.effect == nil {
		return
	}
	s.effect.Dispose()
	s.effect = nil
	s.log.Info("effect unmounted")
}

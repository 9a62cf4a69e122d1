// Package capability decides whether the trail effect should run on this
// device.
package capability

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrDisabled = errors.New("capability: effect disabled")

// Environment reports host capabilities. Reduced motion may change while the
// program runs.
type Environment interface {
	IsMobile() bool
	ReducedMotion() bool
	// OnReducedMotionChange registers fn for preference changes and returns a
	// function that removes it.
	OnReducedMotionChange(fn func(reduced bool)) (cancel func())
}

// Gate is evaluated once at mount and again whenever the reduced-motion
// preference changes. A GPU failure disables it for good.
type Gate struct {
	mu            sync.Mutex
	mobile        bool
	reducedMotion bool
	failure       error
	cancel        func()
	log           *zap.Logger
}

func NewGate(env Environment, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Gate{
		mobile:        env.IsMobile(),
		reducedMotion: env.ReducedMotion(),
		log:           log,
	}
	g.cancel = env.OnReducedMotionChange(g.setReducedMotion)
	return g
}

func (g *Gate) setReducedMotion(reduced bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.reducedMotion != reduced {
		g.log.Info("reduced motion preference changed", zap.Bool("reduced", reduced))
	}
	g.reducedMotion = reduced
}

// ShouldRun is true unless the device is touch-primary, reduced motion is
// requested, or the GPU path failed.
func (g *Gate) ShouldRun() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.mobile && !g.reducedMotion && g.failure == nil
}

// Disable turns the effect off after a GPU context, shader or allocation
// failure. It is logged, never surfaced.
func (g *Gate) Disable(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failure != nil {
		return
	}
	if err == nil {
		err = ErrDisabled
	}
	g.failure = err
	g.log.Warn("trail effect disabled", zap.Error(err))
}

// Reason explains why ShouldRun is false, or returns nil.
func (g *Gate) Reason() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case g.failure != nil:
		return g.failure
	case g.mobile:
		return errors.Join(ErrDisabled, errors.New("touch-primary device"))
	case g.reducedMotion:
		return errors.Join(ErrDisabled, errors.New("reduced motion requested"))
	}
	return nil
}

// Close stops listening for preference changes.
func (g *Gate) Close() {
	g.mu.Lock()
	cancel := g.cancel
	g.cancel = nil
	g.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

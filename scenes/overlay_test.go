package scenes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/automoto/gooey-cursor/capability"
	"github.com/automoto/gooey-cursor/components"
	"github.com/automoto/gooey-cursor/field"
	"github.com/automoto/gooey-cursor/pipeline"
	"github.com/automoto/gooey-cursor/systems"
	"github.com/automoto/gooey-cursor/trail"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

type fakeEffect struct {
	factory   *fakeFactory
	opts      field.Options
	w, h      int
	resizeErr error
	disposed  bool
	color     field.RGB
}

func (e *fakeEffect) SetColor(c field.RGB)                   { e.color = c }
func (e *fakeEffect) Draw(*ebiten.Image, *trail.Trail) error { return nil }
func (e *fakeEffect) Parity() int                            { return 0 }
func (e *fakeEffect) Size() (int, int)                       { return e.w, e.h }
func (e *fakeEffect) LiveBuffers() int                       { return 2 }
func (e *fakeEffect) Resize(w, h int) error {
	if e.resizeErr != nil {
		return e.resizeErr
	}
	if w <= 0 || h <= 0 {
		return pipeline.ErrInvalidSize
	}
	e.w, e.h = w, h
	return nil
}
func (e *fakeEffect) Dispose() {
	if !e.disposed {
		e.disposed = true
		e.factory.live--
	}
}

type fakeFactory struct {
	created []*fakeEffect
	live    int
	err     error
}

func (f *fakeFactory) New(opts field.Options, w, h int) (Effect, error) {
	if f.err != nil {
		return nil, f.err
	}
	e := &fakeEffect{factory: f, opts: opts, w: w, h: h}
	f.created = append(f.created, e)
	f.live++
	return e, nil
}

func newTestScene(env capability.Environment) (*OverlayScene, *fakeFactory, *capability.Gate) {
	f := &fakeFactory{}
	gate := capability.NewGate(env, zap.NewNop())
	s := NewOverlayScene(OverlayOptions{
		Gate:      gate,
		NewEffect: f.New,
	})
	return s, f, gate
}

func cursorCount(s *OverlayScene) int {
	n := 0
	components.Cursor.Each(s.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func TestOverlayMountsWhenAllowed(t *testing.T) {
	s, f, _ := newTestScene(capability.NewStatic(false, false))

	w, h := s.Resize(800, 600, 1.5)
	assert.Equal(t, 1200.0, w)
	assert.Equal(t, 900.0, h)

	s.reconcile()
	require.True(t, s.Mounted())
	require.Len(t, f.created, 1)
	assert.Equal(t, 1200, f.created[0].w)
	assert.Equal(t, 900, f.created[0].h)
	assert.Equal(t, 1.5, f.created[0].opts.RenderScale)
	assert.Equal(t, 1, cursorCount(s))
}

func TestOverlayWaitsForLayout(t *testing.T) {
	s, f, _ := newTestScene(capability.NewStatic(false, false))
	s.once.Do(s.configure)

	s.reconcile()
	assert.False(t, s.Mounted())
	assert.Empty(t, f.created)
}

func TestOverlayGateClosed(t *testing.T) {
	tests := []struct {
		name   string
		mobile bool
		motion bool
	}{
		{"mobile", true, false},
		{"reduced motion", false, true},
		{"both", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f, _ := newTestScene(capability.NewStatic(tt.mobile, tt.motion))
			s.Resize(800, 600, 1)
			s.reconcile()

			assert.False(t, s.Mounted())
			assert.Empty(t, f.created, "no GPU resources when gated")
			assert.Zero(t, cursorCount(s), "no pointer sampling when gated")
		})
	}
}

func TestOverlayReducedMotionIsLive(t *testing.T) {
	env := capability.NewStatic(false, false)
	s, f, _ := newTestScene(env)
	s.Resize(640, 480, 1)
	s.reconcile()
	require.True(t, s.Mounted())

	env.SetReducedMotion(true)
	s.reconcile()
	assert.False(t, s.Mounted())
	assert.Zero(t, f.live)
	assert.Zero(t, cursorCount(s))

	env.SetReducedMotion(false)
	s.reconcile()
	assert.True(t, s.Mounted())
	assert.Equal(t, 1, f.live)
}

func TestOverlayRepeatedMountLeaksNothing(t *testing.T) {
	s, f, _ := newTestScene(capability.NewStatic(false, false))
	s.Resize(320, 240, 1)
	settings := systems.GetOrCreateSettings(s.ecs)

	for i := 0; i < 25; i++ {
		settings.Enabled = true
		s.reconcile()
		require.True(t, s.Mounted())
		require.Equal(t, 1, f.live)
		require.Equal(t, 1, cursorCount(s))

		settings.Enabled = false
		s.reconcile()
		require.False(t, s.Mounted())
		require.Zero(t, f.live)
		require.Zero(t, cursorCount(s))
	}
	assert.Len(t, f.created, 25)
}

func TestOverlayResizeFollowsCanvas(t *testing.T) {
	s, f, _ := newTestScene(capability.NewStatic(false, false))
	s.Resize(800, 600, 1)
	s.reconcile()
	require.True(t, s.Mounted())

	s.Resize(1001, 500, 1)
	eff := f.created[0]
	assert.Equal(t, 1001, eff.w)
	assert.Equal(t, 500, eff.h)

	entry, ok := components.Cursor.First(s.ecs.World)
	require.True(t, ok)
	sampler := components.Cursor.Get(entry).Sampler
	sampler.OnPointerMove(10, 0, 1)
	tail, ok := sampler.Trail().Tail()
	require.True(t, ok)
	assert.Equal(t, 500.0, tail.Y, "sampler uses the new canvas height")
}

func TestOverlayCollapsedViewportKeepsEffect(t *testing.T) {
	s, f, gate := newTestScene(capability.NewStatic(false, false))
	s.Resize(800, 600, 1)
	s.reconcile()
	require.True(t, s.Mounted())

	w, h := s.Resize(0, 0, 1)
	assert.Equal(t, 1.0, w, "layout never reports an empty screen")
	assert.Equal(t, 1.0, h)
	assert.True(t, s.Mounted())
	assert.True(t, gate.ShouldRun())
	s.reconcile()
	assert.True(t, s.Mounted())

	w, h = s.Resize(800, 600, 1)
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)
	require.Len(t, f.created, 1)
	eff := f.created[0]
	assert.Equal(t, 800, eff.w)
	assert.Equal(t, 600, eff.h)
	assert.False(t, eff.disposed)
}

func TestOverlayMountsAfterEmptyStart(t *testing.T) {
	s, f, gate := newTestScene(capability.NewStatic(false, false))

	w, h := s.Resize(0, 0, 1)
	assert.Equal(t, 1.0, w)
	assert.Equal(t, 1.0, h)
	s.reconcile()
	assert.False(t, s.Mounted())
	assert.Empty(t, f.created)
	assert.True(t, gate.ShouldRun())

	s.Resize(640, 480, 1)
	s.reconcile()
	require.True(t, s.Mounted())
	eff := f.created[0]
	assert.Equal(t, 640, eff.w)
	assert.Equal(t, 480, eff.h)
}

func TestOverlayInvalidSizeIsNotFatal(t *testing.T) {
	s, f, gate := newTestScene(capability.NewStatic(false, false))
	s.Resize(800, 600, 1)
	s.reconcile()
	require.True(t, s.Mounted())

	f.created[0].resizeErr = fmt.Errorf("%w: odd surface", pipeline.ErrInvalidSize)
	s.Resize(400, 300, 1)
	assert.True(t, s.Mounted())
	assert.True(t, gate.ShouldRun())
}

func TestOverlayResizeCapsScale(t *testing.T) {
	s, f, _ := newTestScene(capability.NewStatic(false, false))
	w, h := s.Resize(100, 50, 3)
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 100.0, h)

	s.reconcile()
	require.Len(t, f.created, 1)
	assert.Equal(t, field.RenderScaleCap, f.created[0].opts.RenderScale)
}

func TestOverlayScaleChangeRemounts(t *testing.T) {
	s, f, _ := newTestScene(capability.NewStatic(false, false))
	s.Resize(400, 300, 1)
	s.reconcile()
	require.True(t, s.Mounted())

	s.Resize(400, 300, 2)
	assert.False(t, s.Mounted())
	assert.Zero(t, f.live)

	s.reconcile()
	require.Len(t, f.created, 2)
	assert.Equal(t, 800, f.created[1].w)
	assert.Greater(t, f.created[1].opts.Thickness, f.created[0].opts.Thickness)
}

func TestOverlayResizeFailureDisables(t *testing.T) {
	s, f, gate := newTestScene(capability.NewStatic(false, false))
	s.Resize(400, 300, 1)
	s.reconcile()
	require.True(t, s.Mounted())

	f.created[0].resizeErr = pipeline.ErrAllocation
	s.Resize(500, 300, 1)

	assert.False(t, s.Mounted())
	assert.Zero(t, f.live)
	assert.False(t, gate.ShouldRun())
	assert.ErrorIs(t, gate.Reason(), pipeline.ErrAllocation)

	s.reconcile()
	assert.False(t, s.Mounted(), "disable is sticky")
}

func TestOverlayFactoryFailureDisables(t *testing.T) {
	s, f, gate := newTestScene(capability.NewStatic(false, false))
	f.err = errors.New("no webgl")
	s.Resize(400, 300, 1)

	s.reconcile()
	assert.False(t, s.Mounted())
	assert.False(t, gate.ShouldRun())
	assert.Zero(t, cursorCount(s))
}

func TestOverlayCloseUnmounts(t *testing.T) {
	s, f, _ := newTestScene(capability.NewStatic(false, false))
	s.Resize(400, 300, 1)
	s.reconcile()
	require.True(t, s.Mounted())

	s.Close()
	assert.False(t, s.Mounted())
	assert.Zero(t, f.live)
	assert.True(t, f.created[0].disposed)
}

package capability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateInitialState(t *testing.T) {
	cases := []struct {
		name    string
		mobile  bool
		reduced bool
		want    bool
	}{
		{"desktop", false, false, true},
		{"mobile", true, false, false},
		{"reduced_motion", false, true, false},
		{"both", true, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGate(NewStatic(c.mobile, c.reduced), nil)
			defer g.Close()
			assert.Equal(t, c.want, g.ShouldRun())
			if c.want {
				assert.NoError(t, g.Reason())
			} else {
				assert.ErrorIs(t, g.Reason(), ErrDisabled)
			}
		})
	}
}

func TestGateFollowsReducedMotionChanges(t *testing.T) {
	env := NewStatic(false, false)
	g := NewGate(env, nil)

	env.SetReducedMotion(true)
	assert.False(t, g.ShouldRun())

	env.SetReducedMotion(false)
	assert.True(t, g.ShouldRun())

	g.Close()
	env.SetReducedMotion(true)
	assert.True(t, g.ShouldRun(), "closed gate no longer listens")
}

func TestGateDisableIsSticky(t *testing.T) {
	env := NewStatic(false, false)
	g := NewGate(env, nil)
	defer g.Close()

	gpu := errors.New("no GPU context")
	g.Disable(gpu)
	g.Disable(errors.New("second failure"))

	assert.False(t, g.ShouldRun())
	assert.ErrorIs(t, g.Reason(), gpu)

	env.SetReducedMotion(true)
	env.SetReducedMotion(false)
	assert.False(t, g.ShouldRun())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GOOEY_REDUCED_MOTION", "true")
	t.Setenv("GOOEY_MOBILE", "nope")

	env := FromEnv(false, false)
	require.True(t, env.ReducedMotion())
	assert.False(t, env.IsMobile())

	assert.True(t, FromEnv(true, false).IsMobile())
}

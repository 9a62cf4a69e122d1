package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	id     int
	w, h   int
	freed  bool
	writes int
}

type fakeAllocator struct {
	next     int
	failures int // number of upcoming Allocate calls that fail
	live     map[int]*target
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{live: map[int]*target{}}
}

func (a *fakeAllocator) Allocate(w, h int) (*target, error) {
	if a.failures > 0 {
		a.failures--
		return nil, errors.New("out of texture memory")
	}
	a.next++
	t := &target{id: a.next, w: w, h: h}
	a.live[t.id] = t
	return t, nil
}

func (a *fakeAllocator) Release(t *target) {
	t.freed = true
	delete(a.live, t.id)
}

func TestStepSwapsReadAndWrite(t *testing.T) {
	alloc := newFakeAllocator()
	p, err := New[*target](alloc, 64, 32)
	require.NoError(t, err)

	var lastWrite *target
	for frame := 0; frame < 6; frame++ {
		require.Equal(t, frame%2, p.Parity())

		written, err := p.Step(func(read, write *target) error {
			require.NotSame(t, read, write, "a target is never read and written in one pass")
			if lastWrite != nil {
				assert.Same(t, lastWrite, read, "each frame reads what the previous frame wrote")
			}
			write.writes++
			return nil
		})
		require.NoError(t, err)
		lastWrite = written
	}

	assert.Equal(t, uint64(6), p.Frame())
	for _, tg := range alloc.live {
		assert.Equal(t, 3, tg.writes)
	}
}

func TestStepErrorDoesNotAdvance(t *testing.T) {
	p, err := New[*target](newFakeAllocator(), 8, 8)
	require.NoError(t, err)

	boom := errors.New("draw failed")
	_, err = p.Step(func(read, write *target) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(0), p.Frame())
	assert.Equal(t, 0, p.Parity())
}

func TestResizeRecreatesPairAtNewSize(t *testing.T) {
	alloc := newFakeAllocator()
	p, err := New[*target](alloc, 100, 50)
	require.NoError(t, err)

	_, err = p.Step(func(read, write *target) error { return nil })
	require.NoError(t, err)

	require.NoError(t, p.Resize(320, 240))
	w, h := p.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
	assert.Equal(t, 2, p.Live())
	require.Len(t, alloc.live, 2)
	for _, tg := range alloc.live {
		assert.Equal(t, 320, tg.w)
		assert.Equal(t, 240, tg.h)
	}
	assert.Equal(t, uint64(0), p.Frame())
}

func TestResizeRetriesOnce(t *testing.T) {
	alloc := newFakeAllocator()
	p, err := New[*target](alloc, 10, 10)
	require.NoError(t, err)

	alloc.failures = 1
	require.NoError(t, p.Resize(20, 20), "one transient failure is absorbed")
	assert.Equal(t, 2, p.Live())

	alloc.failures = 2
	err = p.Resize(30, 30)
	require.ErrorIs(t, err, ErrAllocation)
	assert.Zero(t, p.Live())
	assert.Empty(t, alloc.live, "partial allocations are released")

	_, err = p.Step(func(read, write *target) error { return nil })
	assert.ErrorIs(t, err, ErrDisposed)
}

func TestResizeRejectsEmptySize(t *testing.T) {
	_, err := New[*target](newFakeAllocator(), 0, 10)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRepeatedLifecycleDoesNotLeak(t *testing.T) {
	alloc := newFakeAllocator()
	for i := 0; i < 20; i++ {
		p, err := New[*target](alloc, 16+i, 16)
		require.NoError(t, err)
		require.NoError(t, p.Resize(32, 32+i))
		p.Dispose()
		p.Dispose()
		assert.Zero(t, p.Live())
	}
	assert.Empty(t, alloc.live)
}

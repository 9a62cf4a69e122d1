// Package pipeline alternates two render targets so each frame can read the
// previous frame's result while writing the next one.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
)

var (
	ErrInvalidSize = errors.New("pipeline: invalid buffer size")
	ErrAllocation  = errors.New("pipeline: buffer allocation failed")
	ErrDisposed    = errors.New("pipeline: disposed")
)

// Allocator creates and frees render targets of a given size.
type Allocator[T any] interface {
	Allocate(width, height int) (T, error)
	Release(T)
}

// PingPong owns two targets of identical size. Each Step reads
// buffers[parity] and writes buffers[1-parity], then flips the parity.
type PingPong[T any] struct {
	alloc   Allocator[T]
	buffers [2]T
	width   int
	height  int
	frame   uint64
	live    int
	ready   bool
	retries uint64
}

// New allocates a pair of width x height targets.
func New[T any](alloc Allocator[T], width, height int) (*PingPong[T], error) {
	p := &PingPong[T]{alloc: alloc, retries: 1}
	if err := p.Resize(width, height); err != nil {
		return nil, err
	}
	return p, nil
}

// Resize drops both targets and allocates a new pair at the new size.
// Content is not carried over. A failed allocation is retried once.
func (p *PingPong[T]) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	p.release()

	var pair [2]T
	op := func() error {
		var err error
		pair, err = p.allocatePair(width, height)
		return err
	}
	if err := backoff.Retry(op, backoff.WithMaxRetries(&backoff.ZeroBackOff{}, p.retries)); err != nil {
		return fmt.Errorf("%w: %dx%d: %v", ErrAllocation, width, height, err)
	}

	p.buffers = pair
	p.width, p.height = width, height
	p.frame = 0
	p.ready = true
	return nil
}

func (p *PingPong[T]) allocatePair(width, height int) ([2]T, error) {
	var pair [2]T
	for i := range pair {
		b, err := p.alloc.Allocate(width, height)
		if err != nil {
			for j := 0; j < i; j++ {
				p.alloc.Release(pair[j])
				p.live--
			}
			return [2]T{}, err
		}
		pair[i] = b
		p.live++
	}
	return pair, nil
}

// Step runs draw with the previous frame as read and the current target as
// write, then advances the frame counter. It returns the target just written.
func (p *PingPong[T]) Step(draw func(read, write T) error) (T, error) {
	var zero T
	if !p.ready {
		return zero, ErrDisposed
	}
	readIndex := p.Parity()
	writeIndex := 1 - readIndex
	if err := draw(p.buffers[readIndex], p.buffers[writeIndex]); err != nil {
		return zero, err
	}
	p.frame++
	return p.buffers[writeIndex], nil
}

// Parity is the index of the buffer the next Step reads from.
func (p *PingPong[T]) Parity() int {
	return int(p.frame % 2)
}

func (p *PingPong[T]) Frame() uint64 {
	return p.frame
}

func (p *PingPong[T]) Size() (int, int) {
	return p.width, p.height
}

// Live is the number of targets currently allocated through this pipeline.
func (p *PingPong[T]) Live() int {
	return p.live
}

// Dispose releases both targets. Safe to call more than once.
func (p *PingPong[T]) Dispose() {
	p.release()
}

func (p *PingPong[T]) release() {
	if !p.ready {
		return
	}
	for i := range p.buffers {
		p.alloc.Release(p.buffers[i])
		p.live--
	}
	var zero [2]T
	p.buffers = zero
	p.ready = false
}

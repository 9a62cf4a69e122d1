package components

import (
	"github.com/automoto/gooey-cursor/trail"
	"github.com/yohamta/donburi"
)

// CursorData owns the pointer trail of the mounted effect. It only exists
// while the effect is mounted; removing the entity detaches pointer sampling.
type CursorData struct {
	Sampler *trail.Sampler
	Decay   *trail.Decay

	// Last cursor position seen in window pixels. Ebitengine has no move
	// events, so a sample is taken only when this changes.
	LastX, LastY int
	HasLast      bool
}

var Cursor = donburi.NewComponentType[CursorData]()

// Trail returns the sampled point list
func (c *CursorData) Trail() *trail.Trail {
	return c.Sampler.Trail()
}

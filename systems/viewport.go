package systems

import (
	"math"

	"github.com/automoto/gooey-cursor/archetypes"
	"github.com/automoto/gooey-cursor/components"
	"github.com/automoto/gooey-cursor/field"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateViewport returns the singleton Viewport component
func GetOrCreateViewport(ecs *ecs.ECS) *components.ViewportData {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		entry = archetypes.Viewport.Spawn(ecs)
	}
	return components.Viewport.Get(entry)
}

// SetViewport records a new window geometry. It returns false when the
// canvas size and scale did not change.
func SetViewport(ecs *ecs.ECS, width, height, dpr float64) bool {
	vp := GetOrCreateViewport(ecs)
	dpr = field.ClampScale(dpr)
	cw := int(math.Ceil(width * dpr))
	ch := int(math.Ceil(height * dpr))
	if cw == vp.CanvasW && ch == vp.CanvasH && dpr == vp.DPR {
		return false
	}
	*vp = components.ViewportData{
		Width:   width,
		Height:  height,
		DPR:     dpr,
		CanvasW: cw,
		CanvasH: ch,
	}

	// Trail points are in the old canvas space.
	if entry, ok := components.Cursor.First(ecs.World); ok {
		cursor := components.Cursor.Get(entry)
		cursor.Sampler.SetViewport(dpr, float64(ch))
		cursor.Sampler.Reset()
		cursor.HasLast = false
	}
	return true
}

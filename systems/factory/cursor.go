package factory

import (
	"github.com/automoto/gooey-cursor/archetypes"
	"github.com/automoto/gooey-cursor/components"
	cfg "github.com/automoto/gooey-cursor/config"
	"github.com/automoto/gooey-cursor/trail"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCursor spawns the entity that samples the pointer into a new trail,
// sized for the current viewport.
func CreateCursor(ecs *ecs.ECS, vp *components.ViewportData) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(ecs)

	sampler := trail.NewSampler(cfg.Trail.Sampler, trail.New())
	sampler.SetViewport(vp.DPR, float64(vp.CanvasH))

	components.Cursor.SetValue(cursor, components.CursorData{
		Sampler: sampler,
		Decay:   trail.NewDecay(cfg.Trail.DecayEveryFrames),
	})
	return cursor
}

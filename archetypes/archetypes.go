package archetypes

import (
	"github.com/automoto/gooey-cursor/components"
	cfg "github.com/automoto/gooey-cursor/config"
	"github.com/automoto/gooey-cursor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Cursor = newArchetype(
		tags.Cursor,
		components.Cursor,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Settings = newArchetype(
		components.Settings,
	)
	ThemeColor = newArchetype(
		components.ThemeColor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package systems

import (
	"github.com/automoto/gooey-cursor/components"
	cfg "github.com/automoto/gooey-cursor/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the scene clock by one tick. Must run first.
func UpdateClock(ecs *ecs.ECS) {
	getOrCreateClock(ecs).Ticks++
}

// NowMs returns scene time in milliseconds. Update runs at a fixed TPS, so
// one tick is 1000/TPS ms.
func NowMs(ecs *ecs.ECS) float64 {
	return float64(getOrCreateClock(ecs).Ticks) * 1000 / float64(cfg.C.TPS)
}

// TickSeconds is the duration of one update
func TickSeconds() float32 {
	return 1 / float32(cfg.C.TPS)
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

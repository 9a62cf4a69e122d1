package systems

import (
	"github.com/automoto/gooey-cursor/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var cursorPosition = ebiten.CursorPosition

// UpdatePointer feeds cursor movement to the sampler of the mounted cursor.
// Positions from Ebitengine are in canvas pixels and are converted back to
// viewport pixels before sampling.
func UpdatePointer(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	cursor := components.Cursor.Get(entry)
	now := NowMs(ecs)

	x, y := cursorPosition()
	if !cursor.HasLast || x != cursor.LastX || y != cursor.LastY {
		cursor.LastX, cursor.LastY, cursor.HasLast = x, y, true
		dpr := GetOrCreateViewport(ecs).DPR
		if dpr <= 0 {
			dpr = 1
		}
		cursor.Sampler.OnPointerMove(float64(x)/dpr, float64(y)/dpr, now)
	}
	cursor.Sampler.Settle(now)
}

// UpdateIdleDecay shrinks the trail while the pointer rests
func UpdateIdleDecay(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	cursor := components.Cursor.Get(entry)
	cursor.Decay.Tick(cursor.Trail(), cursor.Sampler.Idle())
}

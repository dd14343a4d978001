package systems

import (
	"github.com/defvs/touhosu/arena"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// frameMillis is the simulated time of one ebiten tick.
func frameMillis() float64 {
	return 1000 / float64(ebiten.TPS())
}

// NewUpdateArena steps the session by one frame of song time.
func NewUpdateArena(a *arena.Arena) ecs.System {
	return func(e *ecs.ECS) {
		a.Update(frameMillis())
	}
}

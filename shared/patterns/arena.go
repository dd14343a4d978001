// Package patterns expands hit objects into projectiles. Every generator is a
// pure function of its arguments and returns a flat slice in emission order.
package patterns

import (
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/yohamta/donburi/features/math"
)

// ToArena maps a base-space position into arena space.
func ToArena(v math.Vec2) math.Vec2 {
	return math.Vec2{
		X: v.X * gameconfig.Arena.XScale,
		Y: v.Y * gameconfig.Arena.YScale,
	}
}

// InBounds reports whether an arena-space position lies inside the arena,
// edges included.
func InBounds(v math.Vec2) bool {
	return v.X >= 0 && v.X <= gameconfig.Arena.ActualWidth &&
		v.Y >= 0 && v.Y <= gameconfig.Arena.ActualHeight
}

func add(a, b math.Vec2) math.Vec2 {
	return math.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

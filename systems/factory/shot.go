package factory

import (
	"github.com/defvs/touhosu/archetypes"
	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/gamemath"
	"github.com/defvs/touhosu/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateShot spawns a player shot flying at angle from origin.
func CreateShot(w donburi.World, origin math.Vec2, angle float64) *donburi.Entry {
	e := archetypes.Shot.Spawn(w)

	size := gameconfig.Motion.ShotSize
	obj := resolv.NewObject(origin.X-size/2, origin.Y-size/2, size, size, tags.ResolvShot)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	dx, dy := gamemath.Direction(angle)
	components.Shot.SetValue(e, components.ShotData{
		SpeedX: dx * gameconfig.Motion.ShotSpeed,
		SpeedY: dy * gameconfig.Motion.ShotSpeed,
	})

	return e
}

// WorldShooter turns player shots into shot entities.
type WorldShooter struct {
	World donburi.World
}

// Shoot fires one straight shot when focused, three spread shots otherwise.
func (s WorldShooter) Shoot(origin math.Vec2, focused bool) {
	if focused {
		CreateShot(s.World, origin, 0)
		return
	}
	spread := gameconfig.Motion.ShotSpread
	for _, angle := range []float64{-spread, 0, spread} {
		CreateShot(s.World, origin, gamemath.SafeAngle(angle))
	}
}

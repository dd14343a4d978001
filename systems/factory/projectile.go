package factory

import (
	"github.com/defvs/touhosu/archetypes"
	"github.com/defvs/touhosu/components"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/gamemath"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/defvs/touhosu/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a generated projectile. Tracking kinds keep a
// read-only reference to target and aim relative to it: an angle of 180
// points straight at the target.
func CreateProjectile(w donburi.World, p projectile.Projectile, target components.PositionSource) *donburi.Entry {
	tracking := p.Kind.Tracks() && target != nil

	var e *donburi.Entry
	if tracking {
		e = archetypes.TrackingProjectile.Spawn(w)
		components.Tracking.SetValue(e, components.TrackingData{Target: target})
	} else {
		e = archetypes.Projectile.Spawn(w)
	}

	heading := p.Angle
	if tracking {
		t := target.Position()
		heading = gamemath.SafeAngle(gamemath.AimAngle(p.Position.X, p.Position.Y, t.X, t.Y) + p.Angle - 180)
	}
	dx, dy := gamemath.Direction(heading)
	speed := gameconfig.Motion.BulletSpeed * p.Travel()

	components.Projectile.SetValue(e, components.ProjectileData{
		Projectile: p,
		SpeedX:     dx * speed,
		SpeedY:     dy * speed,
	})

	size := gameconfig.Motion.ProjectileRadius * 2
	obj := resolv.NewObject(p.Position.X-size/2, p.Position.Y-size/2, size, size, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return e
}

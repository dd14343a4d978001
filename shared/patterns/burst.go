package patterns

import (
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/gamemath"
	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/yohamta/donburi/features/math"
)

// Burst emits count moving bullets from pos, spread evenly over angleRange
// starting at angleOffset.
func Burst(startTime float64, pos math.Vec2, count int, angleOffset, angleRange float64) []projectile.Projectile {
	if count <= 0 {
		return nil
	}
	out := make([]projectile.Projectile, 0, count)
	for i := 0; i < count; i++ {
		angle := gamemath.BulletDistribution(count, i, angleOffset, angleRange)
		out = append(out, projectile.NewMovingBullet(startTime, pos, angle))
	}
	return out
}

// ImpactCircle converts a circle that starts a combo: a small wide burst
// followed by its sound. pos is in base space.
func ImpactCircle(startTime float64, pos math.Vec2, samples []hitobject.Sample) []projectile.Projectile {
	at := ToArena(pos)
	var out []projectile.Projectile
	if InBounds(at) {
		out = Burst(startTime, at, gameconfig.Pattern.BulletsPerImpact, gameconfig.Pattern.ImpactAngleOffset, 360)
	}
	return append(out, projectile.NewSoundMarker(startTime, at, samples))
}

// DefaultCircle converts a circle inside a combo. Later members of a combo
// fire denser, further rotated rings.
func DefaultCircle(startTime float64, pos math.Vec2, index int, samples []hitobject.Sample) []projectile.Projectile {
	cfg := gameconfig.Pattern
	at := ToArena(pos)
	var out []projectile.Projectile
	if InBounds(at) {
		count := gamemath.ClampInt(cfg.DefaultCircleMinCount+index, cfg.DefaultCircleMinCount, cfg.DefaultCircleMaxCount)
		offset := float64(index) * cfg.DefaultCircleAngle
		for i := 0; i < count; i++ {
			angle := gamemath.BulletDistribution(count, i, offset, 360)
			out = append(out, projectile.NewConstantMovingProjectile(startTime, at, angle, 1))
		}
	}
	return append(out, projectile.NewSoundMarker(startTime, at, samples))
}

package patterns

import (
	"math"

	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/gamemath"
	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/shared/projectile"
	dmath "github.com/yohamta/donburi/features/math"
)

// ShapedExplosion emits a regular polygon of angled projectiles whose travel
// multipliers place them on the polygon's outline, then one sound marker.
// pos is in base space. Shapes with fewer than three sides or no points per
// side only produce the sound.
func ShapedExplosion(startTime float64, pos dmath.Vec2, sideCount, pointsPerSide int, angleOffset float64, samples []hitobject.Sample) []projectile.Projectile {
	at := ToArena(pos)
	var out []projectile.Projectile
	if sideCount >= 3 && pointsPerSide > 0 && InBounds(at) {
		out = make([]projectile.Projectile, 0, sideCount*pointsPerSide+1)
		n := float64(sideCount)
		side := 1 / (2 * math.Sin(math.Pi/n))
		partDistance := 1 / float64(pointsPerSide)
		interior := 180 * (n - 2) / (2 * n)
		cosInterior := math.Cos(gamemath.DegreesToRadians(interior))

		for i := 0; i < sideCount; i++ {
			for j := 0; j < pointsPerSide; j++ {
				c := partDistance * float64(j)
				length := math.Sqrt(side*side + c*c - 2*side*c*cosInterior)

				missing := 0.0
				if c != 0 && length != 0 {
					cos := (side*side + length*length - c*c) / (2 * side * length)
					missing = gamemath.RadiansToDegrees(math.Acos(gamemath.Clamp(cos, -1, 1)))
				}

				angle := gamemath.SafeAngle(180 + (90 - interior) - missing + float64(i)*(360/n) + angleOffset)
				delta := length / side * gameconfig.Pattern.ShapedExplosionMagnitude
				out = append(out, projectile.NewAngledProjectile(startTime, at, angle, delta))
			}
		}
	}
	return append(out, projectile.NewSoundMarker(startTime, at, samples))
}

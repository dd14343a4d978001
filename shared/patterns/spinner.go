package patterns

import (
	"math"

	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/gamemath"
	"github.com/defvs/touhosu/shared/projectile"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpinnerMagnitude returns the travel multiplier of spinner projectiles for a
// beat length. Faster songs push spinner bullets further.
func SpinnerMagnitude(beatLength float64) float64 {
	cfg := gameconfig.Pattern
	if beatLength <= 0 {
		return 1
	}
	return gamemath.Clamp(cfg.SpinnerReferenceBeat/beatLength, cfg.SpinnerMinMagnitude, cfg.SpinnerMaxMagnitude)
}

// Spinner converts a spinner into rotating bursts, one per span. Only whole
// spans fire. pos is in base space.
func Spinner(startTime float64, pos dmath.Vec2, duration, beatLength float64) []projectile.Projectile {
	cfg := gameconfig.Pattern
	if duration <= 0 || cfg.SpinnerSpanDelay <= 0 {
		return nil
	}
	at := ToArena(pos)
	if !InBounds(at) {
		return nil
	}

	spans := int(math.Floor(duration / cfg.SpinnerSpanDelay))
	magnitude := SpinnerMagnitude(beatLength)
	count := cfg.BulletsPerSpinnerSpan

	out := make([]projectile.Projectile, 0, spans*count)
	for span := 0; span < spans; span++ {
		t := startTime + float64(span)*cfg.SpinnerSpanDelay
		offset := float64(span) * cfg.SpinnerAnglePerSpan
		for i := 0; i < count; i++ {
			angle := gamemath.BulletDistribution(count, i, offset, 360)
			out = append(out, projectile.NewAngledProjectile(t, at, angle, magnitude))
		}
	}
	return out
}

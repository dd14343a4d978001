package patterns

import (
	"math"

	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/gamemath"
	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/defvs/touhosu/shared/sliderevents"
	dmath "github.com/yohamta/donburi/features/math"
)

// Slider bundles what the slider generators need to know about one slider.
type Slider struct {
	StartTime float64
	Origin    dmath.Vec2 // base space
	Data      *hitobject.SliderData
	Samples   []hitobject.Sample

	// Buzz pins every event to the origin instead of the curve.
	Buzz bool
}

// IsBuzz reports whether a slider repeats so quickly that its events should
// be pinned to the origin.
func IsBuzz(s *hitobject.SliderData) bool {
	return s.RepeatCount > 0 && s.SpanDuration() < gameconfig.Pattern.BuzzSpanThreshold
}

// SliderBody lays slider part bullets along the whole multi-span travel,
// evenly spaced in progress.
func SliderBody(s Slider) []projectile.Projectile {
	cfg := gameconfig.Pattern
	spans := float64(s.Data.SpanCount())
	count := math.Min(s.Data.Distance()*spans/cfg.BodyBulletSpacing, cfg.MaxBodyBulletsPerSpan*spans)
	if count <= 0 || math.IsNaN(count) {
		return nil
	}

	var out []projectile.Projectile
	for i := 0; float64(i) < count; i++ {
		progress := float64(i) / count
		pos := ToArena(add(s.Data.CurvePositionAt(progress), s.Origin))
		if !InBounds(pos) {
			continue
		}
		out = append(out, projectile.NewSliderPartBullet(s.StartTime+s.Data.Duration*progress, pos))
	}
	return out
}

// SliderEvents turns the head, ticks, repeats and tail of a slider into
// bullets and sound markers. Sounds are always emitted; bullets only when
// their position is inside the arena.
func SliderEvents(s Slider, events []sliderevents.Event) []projectile.Projectile {
	cfg := gameconfig.Pattern
	spanDuration := s.Data.SpanDuration()
	fixed := ToArena(s.Origin)

	var out []projectile.Projectile
	for _, e := range events {
		pos := fixed
		if !s.Buzz {
			pos = ToArena(add(s.Data.PathPositionAt(e.PathProgress), s.Origin))
		}
		valid := InBounds(pos)

		switch e.Type {
		case sliderevents.Head:
			out = append(out, projectile.NewSoundMarker(s.StartTime, fixed, s.Samples))

		case sliderevents.Tick:
			if valid {
				out = append(out, projectile.NewTickBullet(e.Time, pos, cfg.TickBulletAngle))
			}
			out = append(out, projectile.NewSoundMarker(e.Time, pos, TickSamples(s.Samples)))

		case sliderevents.Repeat:
			if valid {
				t := s.StartTime + float64(e.SpanIndex+1)*spanDuration
				out = append(out, Burst(t, pos, cfg.BulletsPerSliderRepeat, cfg.SliderAnglePerSpan*float64(e.SpanIndex), 360)...)
			}
			out = append(out, projectile.NewSoundMarker(e.Time, pos, s.Samples))

		case sliderevents.Tail:
			if valid {
				count := TailBulletCount(s.Data.Distance())
				offset := 0.0
				if s.Buzz {
					offset = cfg.SliderAnglePerSpan * float64(s.Data.RepeatCount)
				}
				out = append(out, Burst(e.Time, pos, count, offset, 360)...)
			}
			out = append(out, projectile.NewSoundMarker(s.StartTime+s.Data.Duration, pos, s.Samples))
		}
	}
	return out
}

// TailBulletCount returns the size of the burst fired at a slider's tail.
func TailBulletCount(distance float64) int {
	cfg := gameconfig.Pattern
	if cfg.TailBulletDistance <= 0 {
		return cfg.MaxTailBullets
	}
	return gamemath.ClampInt(int(distance)/cfg.TailBulletDistance, cfg.MinTailBullets, cfg.MaxTailBullets)
}

// TickSamples renames samples to the tick sample while keeping bank and volume.
func TickSamples(samples []hitobject.Sample) []hitobject.Sample {
	if len(samples) == 0 {
		return nil
	}
	out := make([]hitobject.Sample, len(samples))
	for i, s := range samples {
		out[i] = hitobject.Sample{
			Name:   gameconfig.Pattern.TickSampleName,
			Bank:   s.Bank,
			Volume: s.Volume,
		}
	}
	return out
}

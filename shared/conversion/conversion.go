// Package conversion drives the pattern generators over a beatmap. A run
// walks hit objects in order, keeps the combo index in a per-run context and
// post-processes each object's projectiles.
package conversion

import (
	"context"
	"errors"
	"fmt"

	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/gamemath"
	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/shared/patterns"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/defvs/touhosu/shared/sliderevents"
	"go.uber.org/zap"
)

// ErrUnsupportedBeatmap is returned when a beatmap contains a hit object
// without a position.
var ErrUnsupportedBeatmap = errors.New("beatmap contains hit objects without a position")

// TimingLookup answers timing questions for a point in the song.
type TimingLookup interface {
	BeatLengthAt(t float64) float64
	SpeedMultiplierAt(t float64) float64
}

// Converter turns beatmaps into projectiles. It holds no per-run state and is
// safe for concurrent use.
type Converter struct {
	logger *zap.SugaredLogger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for run-level messages.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CanConvert checks that every hit object carries a position.
func CanConvert(b *hitobject.Beatmap) error {
	for i := range b.HitObjects {
		if !b.HitObjects[i].HasPosition() {
			return fmt.Errorf("hit object %d at %.0fms: %w", i, b.HitObjects[i].StartTime, ErrUnsupportedBeatmap)
		}
	}
	return nil
}

// Convert converts a whole beatmap in a fresh run. Cancellation is checked
// between hit objects; a cancelled run returns no projectiles.
func (c *Converter) Convert(ctx context.Context, b *hitobject.Beatmap) ([]projectile.Projectile, error) {
	if err := CanConvert(b); err != nil {
		return nil, err
	}

	rc := NewRunContext()
	log := c.logger.With("run", rc.ID.String(), "beatmap", b.Title)
	log.Infow("conversion started", "hit_objects", len(b.HitObjects))

	var out []projectile.Projectile
	for i := range b.HitObjects {
		if err := ctx.Err(); err != nil {
			log.Warnw("conversion cancelled", "converted", i)
			return nil, fmt.Errorf("convert %q: %w", b.Title, err)
		}
		out = append(out, c.ConvertHitObject(rc, &b.HitObjects[i], b.Difficulty, &b.ControlPoints)...)
	}

	log.Infow("conversion finished", "projectiles", len(out))
	return out, nil
}

// ConvertHitObject converts one hit object within the run described by rc.
func (c *Converter) ConvertHitObject(rc *RunContext, obj *hitobject.HitObject, difficulty hitobject.Difficulty, lookup TimingLookup) []projectile.Projectile {
	index := rc.advance(obj.NewCombo)
	origin := obj.Origin()

	var out []projectile.Projectile
	switch obj.Kind {
	case hitobject.Slider:
		out = convertSlider(obj, difficulty, lookup)

	case hitobject.Spinner:
		var duration float64
		if obj.Spinner != nil {
			duration = obj.Spinner.Duration
		}
		out = patterns.Spinner(obj.StartTime, origin, duration, lookup.BeatLengthAt(obj.StartTime))

	case hitobject.ShapedExplosion:
		if obj.Explosion != nil {
			e := obj.Explosion
			out = patterns.ShapedExplosion(obj.StartTime, origin, e.SideCount, e.PointsPerSide, e.AngleOffset, obj.Samples)
		}

	default:
		if obj.NewCombo {
			out = patterns.ImpactCircle(obj.StartTime, origin, obj.Samples)
		} else {
			out = patterns.DefaultCircle(obj.StartTime, origin, index, obj.Samples)
		}
	}

	postProcess(out, obj, index, lookup)
	return out
}

func postProcess(out []projectile.Projectile, obj *hitobject.HitObject, index int, lookup TimingLookup) {
	cfg := gameconfig.Conversion
	speed := gamemath.Interpolate(
		lookup.SpeedMultiplierAt(obj.StartTime),
		cfg.SpeedFromLow, cfg.SpeedFromHigh,
		cfg.SpeedToLow, cfg.SpeedToHigh,
	)

	for i := range out {
		p := &out[i]
		p.NewCombo = i == 0 && obj.NewCombo
		p.ComboOffset = obj.ComboOffset
		p.IndexInBeatmap = index
		if p.Kind.HasSpeed() {
			p.SpeedMultiplier *= speed
		}
	}
}

func convertSlider(obj *hitobject.HitObject, difficulty hitobject.Difficulty, lookup TimingLookup) []projectile.Projectile {
	if obj.Slider == nil {
		return nil
	}

	beatLength := lookup.BeatLengthAt(obj.StartTime)
	scoringDistance := gameconfig.Conversion.BaseScoringDistance * difficulty.SliderMultiplier * lookup.SpeedMultiplierAt(obj.StartTime)

	var velocity, tickDistance float64
	if beatLength > 0 {
		velocity = scoringDistance / beatLength
	}
	if difficulty.SliderTickRate > 0 {
		tickDistance = scoringDistance / difficulty.SliderTickRate
	}

	data := *obj.Slider
	if data.Duration <= 0 && velocity > 0 {
		data.Duration = float64(data.SpanCount()) * data.Distance() / velocity
	}
	spanDuration := data.SpanDuration()

	s := patterns.Slider{
		StartTime: obj.StartTime,
		Origin:    obj.Origin(),
		Data:      &data,
		Samples:   obj.Samples,
		Buzz:      patterns.IsBuzz(&data),
	}

	events := sliderevents.Generate(sliderevents.Params{
		StartTime:            obj.StartTime,
		SpanDuration:         spanDuration,
		Velocity:             velocity,
		TickDistance:         tickDistance,
		TotalDistance:        data.Distance(),
		SpanCount:            data.SpanCount(),
		LegacyLastTickOffset: data.LegacyLastTickOffset,
	})

	out := patterns.SliderBody(s)
	return append(out, patterns.SliderEvents(s, events)...)
}

package conversion

import (
	"context"
	"errors"
	"testing"

	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/shared/projectile"
	"github.com/defvs/touhosu/shared/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeLookup struct {
	beat  float64
	speed float64
}

func (f fakeLookup) BeatLengthAt(float64) float64      { return f.beat }
func (f fakeLookup) SpeedMultiplierAt(float64) float64 { return f.speed }

var center = math.Vec2{X: 256, Y: 192}

func circle(t float64, newCombo bool) hitobject.HitObject {
	h := hitobject.NewCircle(t, center, hitobject.Sample{Name: "hitnormal"})
	h.NewCombo = newCombo
	return h
}

func beatmap(objects ...hitobject.HitObject) *hitobject.Beatmap {
	b := &hitobject.Beatmap{
		Title:      "test",
		HitObjects: objects,
		Difficulty: hitobject.Difficulty{SliderMultiplier: 1.4, SliderTickRate: 1},
	}
	b.ControlPoints.AddTimingPoint(timing.TimingPoint{Time: 0, BeatLength: 500})
	return b
}

func indexOf(ps []projectile.Projectile, t float64) []int {
	var out []int
	for _, p := range ps {
		if p.StartTime == t {
			out = append(out, p.IndexInBeatmap)
		}
	}
	return out
}

func TestConvertRejectsObjectsWithoutPosition(t *testing.T) {
	b := beatmap(circle(0, true), hitobject.HitObject{Kind: hitobject.Circle, StartTime: 100})

	out, err := New().Convert(context.Background(), b)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedBeatmap))
	assert.Nil(t, out)
}

func TestConvertComboIndex(t *testing.T) {
	b := beatmap(
		circle(0, true),
		circle(100, false),
		circle(200, false),
		circle(300, true),
		circle(400, false),
	)

	out, err := New().Convert(context.Background(), b)
	require.NoError(t, err)

	for _, tt := range []struct {
		time  float64
		index int
	}{{0, 0}, {100, 1}, {200, 2}, {300, 0}, {400, 1}} {
		for _, got := range indexOf(out, tt.time) {
			assert.Equal(t, tt.index, got, "object at %v", tt.time)
		}
	}
}

func TestRunContextStartsBeforeFirstObject(t *testing.T) {
	rc := NewRunContext()
	assert.Equal(t, -1, rc.Index())

	c := New()
	c.ConvertHitObject(rc, ptr(circle(0, false)), hitobject.DefaultDifficulty(), fakeLookup{beat: 500, speed: 1})
	assert.Equal(t, 0, rc.Index())

	other := NewRunContext()
	assert.Equal(t, -1, other.Index())
	assert.NotEqual(t, rc.ID, other.ID)
}

func ptr(h hitobject.HitObject) *hitobject.HitObject { return &h }

func TestNewComboOnlyOnFirstEntity(t *testing.T) {
	obj := circle(0, true)
	obj.ComboOffset = 3

	out := New().ConvertHitObject(NewRunContext(), &obj, hitobject.DefaultDifficulty(), fakeLookup{beat: 500, speed: 1})

	require.Len(t, out, 5)
	assert.True(t, out[0].NewCombo)
	for _, p := range out[1:] {
		assert.False(t, p.NewCombo)
	}
	for _, p := range out {
		assert.Equal(t, 3, p.ComboOffset)
	}

	plain := circle(100, false)
	for _, p := range New().ConvertHitObject(NewRunContext(), &plain, hitobject.DefaultDifficulty(), fakeLookup{beat: 500, speed: 1}) {
		assert.False(t, p.NewCombo)
	}
}

func TestSpeedScaling(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  float64
	}{
		{"slowest", 0.8, 0.5},
		{"fastest", 1.3, 4.5},
		{"below range", 0.5, 0.5},
		{"above range", 2, 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := circle(0, false)
			out := New().ConvertHitObject(NewRunContext(), &obj, hitobject.DefaultDifficulty(), fakeLookup{beat: 500, speed: tt.speed})

			var scaled int
			for _, p := range out {
				if p.Kind.HasSpeed() {
					assert.InDelta(t, tt.want, p.SpeedMultiplier, 1e-9)
					scaled++
				}
			}
			assert.Equal(t, 4, scaled)
		})
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	path := hitobject.NewLinearPath([]math.Vec2{{X: 0, Y: 0}, {X: 150, Y: 50}}, 0)
	b := beatmap(
		circle(0, true),
		hitobject.NewSlider(500, math.Vec2{X: 100, Y: 100}, path, 2, 0),
		hitobject.NewSpinner(3000, center, 1000),
		hitobject.NewShapedExplosion(4500, center, 5, 4, 10),
	)

	c := New()
	first, err := c.Convert(context.Background(), b)
	require.NoError(t, err)
	second, err := c.Convert(context.Background(), b)
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSliderDurationDerivedFromVelocity(t *testing.T) {
	// 140 px at 100 * 1.4 / 500 = 0.28 px/ms takes 500 ms
	path := hitobject.NewLinearPath([]math.Vec2{{X: 0, Y: 0}, {X: 140, Y: 0}}, 0)
	obj := hitobject.NewSlider(1000, math.Vec2{X: 100, Y: 100}, path, 0, 0, hitobject.Sample{Name: "hitnormal"})

	out := New().ConvertHitObject(NewRunContext(), &obj, hitobject.DefaultDifficulty(), fakeLookup{beat: 500, speed: 1})

	last := out[len(out)-1]
	assert.Equal(t, projectile.SoundMarker, last.Kind)
	assert.InDelta(t, 1500, last.StartTime, 1e-9)
	assert.Equal(t, projectile.SliderPartBullet, out[0].Kind, "body comes first")
}

func TestSpinnerUsesBeatLength(t *testing.T) {
	obj := hitobject.NewSpinner(0, center, 500)

	out := New().ConvertHitObject(NewRunContext(), &obj, hitobject.DefaultDifficulty(), fakeLookup{beat: 250, speed: 1})

	require.Len(t, out, 40)
	assert.Equal(t, 2.0, out[0].DeltaMultiplier)
}

func TestConvertCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := New().Convert(ctx, beatmap(circle(0, true)))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

func TestConvertLogsRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := New(WithLogger(zap.New(core).Sugar()))

	_, err := c.Convert(context.Background(), beatmap(circle(0, true)))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "conversion started", entries[0].Message)
	assert.Equal(t, "conversion finished", entries[1].Message)
	assert.Equal(t, entries[0].ContextMap()["run"], entries[1].ContextMap()["run"])
	assert.EqualValues(t, 5, entries[1].ContextMap()["projectiles"])
}

func TestConvertAll(t *testing.T) {
	maps := []*hitobject.Beatmap{
		beatmap(circle(0, true), circle(100, false)),
		beatmap(circle(0, false)),
	}

	results, err := ConvertAll(context.Background(), New(), maps)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// each run starts its own combo counter
	assert.Equal(t, 0, results[0][0].IndexInBeatmap)
	assert.Equal(t, 1, results[0][len(results[0])-1].IndexInBeatmap)
	assert.Equal(t, 0, results[1][0].IndexInBeatmap)
}

func TestConvertAllFails(t *testing.T) {
	maps := []*hitobject.Beatmap{
		beatmap(circle(0, true)),
		beatmap(hitobject.HitObject{Kind: hitobject.Circle}),
	}

	results, err := ConvertAll(context.Background(), New(), maps)
	assert.ErrorIs(t, err, ErrUnsupportedBeatmap)
	assert.Nil(t, results)
}

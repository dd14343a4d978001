package beatmapdata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const sample = `
title: sample
difficulty:
  slider_multiplier: 1.8
  slider_tick_rate: 2
timing_points:
  - {time: 0, beat_length: 500}
  - {time: 4000, beat_length: 400}
difficulty_points:
  - {time: 2000, speed_multiplier: 1.2}
hit_objects:
  - time: 1500
    position: [100, 100]
    slider:
      points: [[0, 0], [120, 0]]
      distance: 100
      repeats: 1
  - time: 1000
    position: [256, 192]
    new_combo: true
    combo_offset: 2
    samples:
      - {name: hitclap, bank: drum, volume: 80}
  - time: 3000
    position: [256, 192]
    spinner: {duration: 1000}
  - time: 5000
    position: [256, 192]
    explosion: {sides: 6, points_per_side: 4, angle_offset: 30}
`

func TestParse(t *testing.T) {
	b, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "sample", b.Title)
	assert.Equal(t, hitobject.Difficulty{SliderMultiplier: 1.8, SliderTickRate: 2}, b.Difficulty)
	assert.Equal(t, 400.0, b.ControlPoints.BeatLengthAt(4500))
	assert.Equal(t, 1.2, b.ControlPoints.SpeedMultiplierAt(2500))

	require.Len(t, b.HitObjects, 4)

	circle := b.HitObjects[0]
	assert.Equal(t, hitobject.Circle, circle.Kind)
	assert.Equal(t, 1000.0, circle.StartTime)
	assert.True(t, circle.NewCombo)
	assert.Equal(t, 2, circle.ComboOffset)
	assert.Equal(t, []hitobject.Sample{{Name: "hitclap", Bank: "drum", Volume: 80}}, circle.Samples)

	slider := b.HitObjects[1]
	assert.Equal(t, hitobject.Slider, slider.Kind)
	require.NotNil(t, slider.Slider)
	assert.Equal(t, 1, slider.Slider.RepeatCount)
	assert.Equal(t, 100.0, slider.Slider.Distance())
	assert.Equal(t, math.Vec2{X: 100, Y: 100}, slider.Origin())

	assert.Equal(t, hitobject.Spinner, b.HitObjects[2].Kind)
	assert.Equal(t, 4000.0, b.HitObjects[2].EndTime())

	explosion := b.HitObjects[3]
	assert.Equal(t, hitobject.ShapedExplosion, explosion.Kind)
	assert.Equal(t, &hitobject.ExplosionData{SideCount: 6, PointsPerSide: 4, AngleOffset: 30}, explosion.Explosion)
}

func TestParseDefaults(t *testing.T) {
	b, err := Parse(strings.NewReader("hit_objects:\n  - time: 10\n"))
	require.NoError(t, err)

	assert.Equal(t, hitobject.DefaultDifficulty(), b.Difficulty)
	require.Len(t, b.HitObjects, 1)
	assert.False(t, b.HitObjects[0].HasPosition(), "missing positions are kept for the converter to reject")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"two shapes", "hit_objects:\n  - time: 0\n    spinner: {duration: 10}\n    explosion: {sides: 3, points_per_side: 1}\n", true},
		{"slider without points", "hit_objects:\n  - time: 0\n    slider: {repeats: 1}\n", true},
		{"negative repeats", "hit_objects:\n  - time: 0\n    slider: {points: [[0, 0]], repeats: -1}\n", true},
		{"unknown field", "hit_objects:\n  - time: 0\n    colour: red\n", false},
		{"bad beat length", "timing_points:\n  - {time: 0, beat_length: 0}\n", false},
		{"short position", "hit_objects:\n  - time: 0\n    position: [1]\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidHitObject)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/sample.yaml": &fstest.MapFile{Data: []byte(sample)},
	}

	b, err := Load(fsys, "maps/sample.yaml")
	require.NoError(t, err)
	assert.Len(t, b.HitObjects, 4)

	_, err = Load(fsys, "maps/missing.yaml")
	assert.Error(t, err)
}

package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimingPointAt(t *testing.T) {
	var c ControlPointInfo
	c.AddTimingPoint(TimingPoint{Time: 1000, BeatLength: 500})
	c.AddTimingPoint(TimingPoint{Time: 0, BeatLength: 300})
	c.AddTimingPoint(TimingPoint{Time: 5000, BeatLength: 250})

	tests := []struct {
		name string
		time float64
		want float64
	}{
		{"before first point", -200, 300},
		{"on first point", 0, 300},
		{"between points", 999, 300},
		{"exactly on point", 1000, 500},
		{"after last point", 9000, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.BeatLengthAt(tt.time))
		})
	}
}

func TestAddTimingPointReplacesSameTime(t *testing.T) {
	var c ControlPointInfo
	c.AddTimingPoint(TimingPoint{Time: 0, BeatLength: 300})
	c.AddTimingPoint(TimingPoint{Time: 0, BeatLength: 400})

	assert.Len(t, c.TimingPoints, 1)
	assert.Equal(t, 400.0, c.BeatLengthAt(0))
}

func TestDefaults(t *testing.T) {
	var c ControlPointInfo
	assert.Equal(t, 1000.0, c.BeatLengthAt(123))
	assert.Equal(t, 1.0, c.SpeedMultiplierAt(123))
}

func TestSpeedMultiplierAt(t *testing.T) {
	var c ControlPointInfo
	c.AddDifficultyPoint(DifficultyPoint{Time: 2000, SpeedMultiplier: 1.5})
	c.AddDifficultyPoint(DifficultyPoint{Time: 4000, SpeedMultiplier: 40})

	assert.Equal(t, 1.0, c.SpeedMultiplierAt(1999))
	assert.Equal(t, 1.5, c.SpeedMultiplierAt(2000))
	assert.Equal(t, 10.0, c.SpeedMultiplierAt(4500), "clamped to the maximum")
}

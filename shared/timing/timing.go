// Package timing answers "what is the beat length and slider speed at time t"
// for a beatmap's control points.
package timing

import (
	"sort"

	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/gamemath"
)

// TimingPoint starts a section with a fixed beat length (ms per beat).
type TimingPoint struct {
	Time       float64
	BeatLength float64
}

// DifficultyPoint changes the slider speed multiplier from Time onwards.
type DifficultyPoint struct {
	Time            float64
	SpeedMultiplier float64
}

// ControlPointInfo holds both point lists, each sorted by time.
type ControlPointInfo struct {
	TimingPoints     []TimingPoint
	DifficultyPoints []DifficultyPoint
}

// AddTimingPoint inserts a timing point keeping the list sorted. A point at an
// existing time replaces it.
func (c *ControlPointInfo) AddTimingPoint(p TimingPoint) {
	i := sort.Search(len(c.TimingPoints), func(i int) bool {
		return c.TimingPoints[i].Time >= p.Time
	})
	if i < len(c.TimingPoints) && c.TimingPoints[i].Time == p.Time {
		c.TimingPoints[i] = p
		return
	}
	c.TimingPoints = append(c.TimingPoints, TimingPoint{})
	copy(c.TimingPoints[i+1:], c.TimingPoints[i:])
	c.TimingPoints[i] = p
}

// AddDifficultyPoint inserts a difficulty point keeping the list sorted.
func (c *ControlPointInfo) AddDifficultyPoint(p DifficultyPoint) {
	i := sort.Search(len(c.DifficultyPoints), func(i int) bool {
		return c.DifficultyPoints[i].Time >= p.Time
	})
	if i < len(c.DifficultyPoints) && c.DifficultyPoints[i].Time == p.Time {
		c.DifficultyPoints[i] = p
		return
	}
	c.DifficultyPoints = append(c.DifficultyPoints, DifficultyPoint{})
	copy(c.DifficultyPoints[i+1:], c.DifficultyPoints[i:])
	c.DifficultyPoints[i] = p
}

// TimingPointAt returns the last timing point at or before t. Times before the
// first point use the first point; a map without points gets the default beat.
func (c *ControlPointInfo) TimingPointAt(t float64) TimingPoint {
	if len(c.TimingPoints) == 0 {
		return TimingPoint{BeatLength: gameconfig.Conversion.DefaultBeatLength}
	}
	i := sort.Search(len(c.TimingPoints), func(i int) bool {
		return c.TimingPoints[i].Time > t
	})
	if i == 0 {
		return c.TimingPoints[0]
	}
	return c.TimingPoints[i-1]
}

// DifficultyPointAt returns the last difficulty point at or before t, or a
// neutral point when none applies.
func (c *ControlPointInfo) DifficultyPointAt(t float64) DifficultyPoint {
	i := sort.Search(len(c.DifficultyPoints), func(i int) bool {
		return c.DifficultyPoints[i].Time > t
	})
	if i == 0 {
		return DifficultyPoint{SpeedMultiplier: 1}
	}
	return c.DifficultyPoints[i-1]
}

// BeatLengthAt returns the beat length in effect at t.
func (c *ControlPointInfo) BeatLengthAt(t float64) float64 {
	return c.TimingPointAt(t).BeatLength
}

// SpeedMultiplierAt returns the slider speed multiplier in effect at t,
// clamped to the configured range.
func (c *ControlPointInfo) SpeedMultiplierAt(t float64) float64 {
	return gamemath.Clamp(
		c.DifficultyPointAt(t).SpeedMultiplier,
		gameconfig.Conversion.MinSpeedMultiplier,
		gameconfig.Conversion.MaxSpeedMultiplier,
	)
}

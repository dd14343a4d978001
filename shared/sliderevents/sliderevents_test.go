package sliderevents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSingleSpan(t *testing.T) {
	// 100 px at 0.1 px/ms, ticks every 25 px, ends kept 1 px clear
	events := Generate(Params{
		StartTime:     1000,
		SpanDuration:  1000,
		Velocity:      0.1,
		TickDistance:  25,
		TotalDistance: 100,
		SpanCount:     1,
	})

	require.Len(t, events, 5)
	assert.Equal(t, Head, events[0].Type)
	assert.Equal(t, 1000.0, events[0].Time)

	for i, want := range []float64{1250, 1500, 1750} {
		assert.Equal(t, Tick, events[i+1].Type)
		assert.InDelta(t, want, events[i+1].Time, 1e-9)
	}

	tail := events[4]
	assert.Equal(t, Tail, tail.Type)
	assert.Equal(t, 2000.0, tail.Time)
	assert.Equal(t, 1.0, tail.PathProgress)
	assert.Zero(t, Count(events, Repeat))
}

func TestGenerateRepeatsReverseTicks(t *testing.T) {
	events := Generate(Params{
		StartTime:     0,
		SpanDuration:  500,
		Velocity:      0.2,
		TickDistance:  50,
		TotalDistance: 100,
		SpanCount:     2,
	})

	var types []Type
	for _, e := range events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []Type{Head, Tick, Repeat, Tick, Tail}, types)

	repeat := events[2]
	assert.Equal(t, 0, repeat.SpanIndex)
	assert.Equal(t, 500.0, repeat.Time)
	assert.Equal(t, 1.0, repeat.PathProgress)

	back := events[3]
	assert.Equal(t, 1, back.SpanIndex)
	assert.Equal(t, 750.0, back.Time)
	assert.Equal(t, 0.5, back.PathProgress)

	assert.Equal(t, 0.0, events[4].PathProgress)
	assert.Equal(t, 1000.0, events[4].Time)
}

func TestGenerateTicksOrderedInReversedSpan(t *testing.T) {
	events := Generate(Params{
		SpanDuration:  1000,
		Velocity:      0.01,
		TickDistance:  25,
		TotalDistance: 100,
		SpanCount:     2,
	})

	var last float64
	for _, e := range events {
		if e.Type == Tail {
			continue
		}
		assert.GreaterOrEqual(t, e.Time, last)
		last = e.Time
	}
}

func TestGenerateLegacyLastTickOffset(t *testing.T) {
	events := Generate(Params{
		SpanDuration:         1000,
		Velocity:             0.1,
		TotalDistance:        100,
		SpanCount:            1,
		LegacyLastTickOffset: 36,
	})

	tail := events[len(events)-1]
	assert.Equal(t, 964.0, tail.Time)
	assert.InDelta(t, 0.964, tail.PathProgress, 1e-9)
}

func TestGenerateZeroTickDistance(t *testing.T) {
	events := Generate(Params{
		SpanDuration:  300,
		Velocity:      0.5,
		TickDistance:  0,
		TotalDistance: 150,
		SpanCount:     3,
	})

	assert.Equal(t, 1, Count(events, Head))
	assert.Zero(t, Count(events, Tick))
	assert.Zero(t, Count(events, Repeat))
	assert.Equal(t, 1, Count(events, Tail))
}

func TestGenerateDegenerateSlider(t *testing.T) {
	events := Generate(Params{StartTime: 40, TickDistance: 10})

	require.Len(t, events, 2)
	assert.Equal(t, Tail, events[1].Type)
	assert.Equal(t, 40.0, events[1].Time)
	assert.Equal(t, 1.0, events[1].PathProgress)
}

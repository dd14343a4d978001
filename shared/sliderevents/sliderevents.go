// Package sliderevents enumerates the timed events along a slider: the head,
// ticks at a fixed path distance, a repeat at each reversal and the tail.
package sliderevents

import (
	"math"

	"github.com/defvs/touhosu/shared/gameconfig"
)

// maxLength caps the path length considered for tick placement.
const maxLength = 100000

// Type of a slider event.
type Type int

const (
	Head Type = iota
	Tick
	Repeat
	Tail
)

func (t Type) String() string {
	switch t {
	case Head:
		return "head"
	case Tick:
		return "tick"
	case Repeat:
		return "repeat"
	case Tail:
		return "tail"
	}
	return "unknown"
}

// Event is a single point of interest on a slider.
type Event struct {
	Type          Type
	SpanIndex     int
	SpanStartTime float64
	Time          float64

	// PathProgress is the progress along the path in [0, 1], already
	// reversed on odd spans.
	PathProgress float64
}

// Params describes the slider being walked.
type Params struct {
	StartTime            float64
	SpanDuration         float64
	Velocity             float64 // path distance per ms
	TickDistance         float64
	TotalDistance        float64
	SpanCount            int
	LegacyLastTickOffset float64
}

// Generate returns the events of a slider in time order within each span.
// A zero tick distance produces neither ticks nor repeats.
func Generate(p Params) []Event {
	spanCount := p.SpanCount
	if spanCount < 1 {
		spanCount = 1
	}

	length := math.Min(maxLength, p.TotalDistance)
	if length < 0 {
		length = 0
	}
	tickDistance := math.Max(0, math.Min(p.TickDistance, length))
	minDistanceFromEnd := p.Velocity * gameconfig.Pattern.MinimumTickDistanceMult

	events := []Event{{
		Type:          Head,
		SpanStartTime: p.StartTime,
		Time:          p.StartTime,
	}}

	if tickDistance != 0 {
		for span := 0; span < spanCount; span++ {
			spanStartTime := p.StartTime + float64(span)*p.SpanDuration
			reversed := span%2 == 1

			ticks := generateTicks(span, spanStartTime, p.SpanDuration, reversed, length, tickDistance, minDistanceFromEnd)
			if reversed {
				for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
					ticks[i], ticks[j] = ticks[j], ticks[i]
				}
			}
			events = append(events, ticks...)

			if span < spanCount-1 {
				events = append(events, Event{
					Type:          Repeat,
					SpanIndex:     span,
					SpanStartTime: spanStartTime,
					Time:          spanStartTime + p.SpanDuration,
					PathProgress:  float64((span + 1) % 2),
				})
			}
		}
	}

	totalDuration := float64(spanCount) * p.SpanDuration
	finalSpanIndex := spanCount - 1
	finalSpanStartTime := p.StartTime + float64(finalSpanIndex)*p.SpanDuration
	finalSpanEndTime := math.Max(
		p.StartTime+totalDuration/2,
		finalSpanStartTime+p.SpanDuration-p.LegacyLastTickOffset,
	)

	finalProgress := float64(spanCount % 2)
	if p.SpanDuration > 0 {
		finalProgress = (finalSpanEndTime - finalSpanStartTime) / p.SpanDuration
		if spanCount%2 == 0 {
			finalProgress = 1 - finalProgress
		}
	}

	events = append(events, Event{
		Type:          Tail,
		SpanIndex:     finalSpanIndex,
		SpanStartTime: finalSpanStartTime,
		Time:          finalSpanEndTime,
		PathProgress:  finalProgress,
	})

	return events
}

func generateTicks(spanIndex int, spanStartTime, spanDuration float64, reversed bool, length, tickDistance, minDistanceFromEnd float64) []Event {
	var ticks []Event
	for d := tickDistance; d <= length; d += tickDistance {
		if d >= length-minDistanceFromEnd {
			break
		}

		pathProgress := d / length
		timeProgress := pathProgress
		if reversed {
			timeProgress = 1 - pathProgress
		}

		ticks = append(ticks, Event{
			Type:          Tick,
			SpanIndex:     spanIndex,
			SpanStartTime: spanStartTime,
			Time:          spanStartTime + timeProgress*spanDuration,
			PathProgress:  pathProgress,
		})
	}
	return ticks
}

// Count returns how many events of type t are in events.
func Count(events []Event, t Type) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

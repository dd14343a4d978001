package hitobject

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// Path is a slider curve. Positions are relative to the slider origin and
// progress runs over a single span in [0, 1].
type Path interface {
	Distance() float64
	PositionAt(progress float64) math.Vec2
}

// SliderData is the payload of a slider.
type SliderData struct {
	Path        Path
	RepeatCount int

	// Duration covers every span. Zero means "derive from velocity".
	Duration float64

	LegacyLastTickOffset float64
}

// SpanCount returns the number of times the path is travelled.
func (s *SliderData) SpanCount() int {
	if s.RepeatCount < 0 {
		return 1
	}
	return s.RepeatCount + 1
}

// SpanDuration returns the time spent on a single span.
func (s *SliderData) SpanDuration() float64 {
	return s.Duration / float64(s.SpanCount())
}

// Distance returns the length of one span, zero without a path.
func (s *SliderData) Distance() float64 {
	if s.Path == nil {
		return 0
	}
	return s.Path.Distance()
}

// PathPositionAt samples the path at single-span progress.
func (s *SliderData) PathPositionAt(progress float64) math.Vec2 {
	if s.Path == nil {
		return math.Vec2{}
	}
	return s.Path.PositionAt(progress)
}

// CurvePositionAt returns the position relative to the origin at progress over
// the whole slider. Odd spans travel the path backwards.
func (s *SliderData) CurvePositionAt(progress float64) math.Vec2 {
	return s.PathPositionAt(s.progressToPath(progress))
}

func (s *SliderData) progressToPath(progress float64) float64 {
	spans := float64(s.SpanCount())
	p := gomath.Max(0, gomath.Min(1, progress)) * spans
	span := gomath.Floor(p)
	if span >= spans {
		span = spans - 1
	}
	p -= span
	if int(span)%2 == 1 {
		p = 1 - p
	}
	return p
}

// Package hitobject models the rhythm map input: timestamped hit objects
// resolved once into a tagged union over their shapes.
package hitobject

import (
	"github.com/defvs/touhosu/shared/timing"
	"github.com/yohamta/donburi/features/math"
)

// Kind selects which shape payload of a HitObject is populated.
type Kind int

const (
	Circle Kind = iota
	Slider
	Spinner
	ShapedExplosion
)

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Slider:
		return "slider"
	case Spinner:
		return "spinner"
	case ShapedExplosion:
		return "shaped_explosion"
	}
	return "unknown"
}

// Sample describes an audio sample attached to a hit object.
type Sample struct {
	Name   string
	Bank   string
	Volume int
}

// HitObject is one input marker. Exactly the payload matching Kind is set;
// the others stay nil.
type HitObject struct {
	Kind      Kind
	StartTime float64

	// Position is in base playfield space. Nil when the source had none.
	Position *math.Vec2

	NewCombo    bool
	ComboOffset int
	Samples     []Sample

	Slider    *SliderData
	Spinner   *SpinnerData
	Explosion *ExplosionData
}

// HasPosition reports whether the object carries a position.
func (h *HitObject) HasPosition() bool {
	return h.Position != nil
}

// Origin returns the position, or the zero vector when there is none.
func (h *HitObject) Origin() math.Vec2 {
	if h.Position == nil {
		return math.Vec2{}
	}
	return *h.Position
}

// EndTime returns the time the object stops being active.
func (h *HitObject) EndTime() float64 {
	switch h.Kind {
	case Slider:
		if h.Slider != nil {
			return h.StartTime + h.Slider.Duration
		}
	case Spinner:
		if h.Spinner != nil {
			return h.StartTime + h.Spinner.Duration
		}
	}
	return h.StartTime
}

// SpinnerData is the payload of a spinner.
type SpinnerData struct {
	Duration float64
}

// ExplosionData is the payload of a shaped explosion.
type ExplosionData struct {
	SideCount     int
	PointsPerSide int
	AngleOffset   float64
}

// Difficulty holds the beatmap-wide values sliders depend on.
type Difficulty struct {
	SliderMultiplier float64
	SliderTickRate   float64
}

// DefaultDifficulty returns the values a map gets when it declares none.
func DefaultDifficulty() Difficulty {
	return Difficulty{SliderMultiplier: 1.4, SliderTickRate: 1}
}

// Beatmap is a full conversion input.
type Beatmap struct {
	Title         string
	HitObjects    []HitObject
	Difficulty    Difficulty
	ControlPoints timing.ControlPointInfo
}

// NewCircle builds a circle at a base-space position.
func NewCircle(startTime float64, pos math.Vec2, samples ...Sample) HitObject {
	return HitObject{Kind: Circle, StartTime: startTime, Position: &pos, Samples: samples}
}

// NewSlider builds a slider over path starting at pos.
func NewSlider(startTime float64, pos math.Vec2, path Path, repeatCount int, duration float64, samples ...Sample) HitObject {
	return HitObject{
		Kind:      Slider,
		StartTime: startTime,
		Position:  &pos,
		Samples:   samples,
		Slider: &SliderData{
			Path:        path,
			RepeatCount: repeatCount,
			Duration:    duration,
		},
	}
}

// NewSpinner builds a spinner lasting duration ms.
func NewSpinner(startTime float64, pos math.Vec2, duration float64, samples ...Sample) HitObject {
	return HitObject{
		Kind:      Spinner,
		StartTime: startTime,
		Position:  &pos,
		Samples:   samples,
		Spinner:   &SpinnerData{Duration: duration},
	}
}

// NewShapedExplosion builds a polygonal explosion.
func NewShapedExplosion(startTime float64, pos math.Vec2, sides, pointsPerSide int, angleOffset float64, samples ...Sample) HitObject {
	return HitObject{
		Kind:      ShapedExplosion,
		StartTime: startTime,
		Position:  &pos,
		Samples:   samples,
		Explosion: &ExplosionData{
			SideCount:     sides,
			PointsPerSide: pointsPerSide,
			AngleOffset:   angleOffset,
		},
	}
}

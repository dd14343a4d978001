package hitobject

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// LinearPath is a polyline through control points, relative to the slider
// origin. When ExpectedDistance is set the path is cut to that length.
type LinearPath struct {
	Points           []math.Vec2
	ExpectedDistance float64

	cumulative []float64
}

// NewLinearPath builds a polyline. A non-positive expectedDistance uses the
// full polyline length.
func NewLinearPath(points []math.Vec2, expectedDistance float64) *LinearPath {
	p := &LinearPath{Points: points, ExpectedDistance: expectedDistance}
	p.calculateLengths()
	return p
}

func (p *LinearPath) calculateLengths() {
	p.cumulative = make([]float64, len(p.Points))
	for i := 1; i < len(p.Points); i++ {
		p.cumulative[i] = p.cumulative[i-1] + distance(p.Points[i-1], p.Points[i])
	}
}

func (p *LinearPath) polylineLength() float64 {
	if len(p.cumulative) != len(p.Points) {
		p.calculateLengths()
	}
	if len(p.cumulative) == 0 {
		return 0
	}
	return p.cumulative[len(p.cumulative)-1]
}

// Distance returns the travelled length of the path.
func (p *LinearPath) Distance() float64 {
	if p.ExpectedDistance > 0 {
		return p.ExpectedDistance
	}
	return p.polylineLength()
}

// PositionAt returns the point at progress along the path.
func (p *LinearPath) PositionAt(progress float64) math.Vec2 {
	if len(p.Points) == 0 {
		return math.Vec2{}
	}
	total := p.polylineLength()
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	d := progress * p.Distance()
	if d > total {
		d = total
	}

	for i := 1; i < len(p.Points); i++ {
		if d > p.cumulative[i] {
			continue
		}
		segment := p.cumulative[i] - p.cumulative[i-1]
		if segment == 0 {
			return p.Points[i]
		}
		t := (d - p.cumulative[i-1]) / segment
		a, b := p.Points[i-1], p.Points[i]
		return math.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
	}
	return p.Points[len(p.Points)-1]
}

func distance(a, b math.Vec2) float64 {
	return gomath.Hypot(b.X-a.X, b.Y-a.Y)
}

package gamemath

import "math"

// Angles are in degrees, 0 pointing up and growing clockwise, matching the
// screen space where Y grows downwards.

// SafeAngle wraps an angle into [0, 360).
func SafeAngle(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// BulletDistribution returns the angle of bullet index out of count, spread
// evenly over angleRange starting at offset.
func BulletDistribution(count, index int, offset, angleRange float64) float64 {
	if count <= 0 {
		return SafeAngle(offset)
	}
	return SafeAngle(offset + float64(index)*angleRange/float64(count))
}

// Direction returns the unit vector for an angle.
func Direction(angle float64) (x, y float64) {
	rad := angle * math.Pi / 180
	return math.Sin(rad), -math.Cos(rad)
}

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

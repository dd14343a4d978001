package gamemath

import "math"

// AimAngle returns the angle pointing from one position to another. A zero
// distance aims straight down.
func AimAngle(fromX, fromY, toX, toY float64) float64 {
	dx := toX - fromX
	dy := toY - fromY
	if dx == 0 && dy == 0 {
		return 180
	}
	return SafeAngle(RadiansToDegrees(math.Atan2(dx, -dy)))
}

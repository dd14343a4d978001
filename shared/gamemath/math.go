// Package gamemath holds the pure numeric helpers shared by the pattern
// generators, the player simulation and the client.
package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Interpolate maps v from [fromLow, fromHigh] onto [toLow, toHigh]. Inputs
// outside the source range are clamped to the matching end of the target.
func Interpolate(v, fromLow, fromHigh, toLow, toHigh float64) float64 {
	if fromHigh == fromLow {
		return toLow
	}
	t := Clamp((v-fromLow)/(fromHigh-fromLow), 0, 1)
	return toLow + t*(toHigh-toLow)
}

package tui

import "math"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// wrapAngle maps a to (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

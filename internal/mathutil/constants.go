package mathutil

import "math"

// MirrorX reflects across the vertical plane through the origin: diag(-1, 1, 1).
var MirrorX = Mat3Diag(-1, 1, 1)

// MirrorY reflects across the horizontal plane through the origin: diag(1, -1, 1).
var MirrorY = Mat3Diag(1, -1, 1)

// WrapDegrees maps any angle in degrees into [0, 360).
func WrapDegrees(a float64) float64 {
	d := math.Mod(a, 360)
	if d < 0 {
		d += 360
	}
	return d
}

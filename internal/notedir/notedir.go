// Package notedir holds the note cut-direction tables of the beatmap format:
// the canonical angle for each direction code and the mirror pairs.
package notedir

import (
	"beatplace/internal/beatmap"
	"beatplace/internal/mathutil"
)

// Canonical direction codes.
const (
	Up        = 0
	Down      = 1
	Left      = 2
	Right     = 3
	UpLeft    = 4
	UpRight   = 5
	DownLeft  = 6
	DownRight = 7
	Any       = 8
)

// FineMax is the exclusive upper bound of the fine angle encoding.
const FineMax = 1360

// angles holds the renderer rotation, in degrees, of each canonical code.
var angles = [...]float64{
	Up:        180,
	Down:      0,
	Left:      270,
	Right:     90,
	UpLeft:    225,
	UpRight:   135,
	DownLeft:  315,
	DownRight: 45,
	Any:       0,
}

var horizontal = [...]int{
	Up:        Up,
	Down:      Down,
	Left:      Right,
	Right:     Left,
	UpLeft:    UpRight,
	UpRight:   UpLeft,
	DownLeft:  DownRight,
	DownRight: DownLeft,
	Any:       Any,
}

var vertical = [...]int{
	Up:        Down,
	Down:      Up,
	Left:      Left,
	Right:     Right,
	UpLeft:    DownLeft,
	UpRight:   DownRight,
	DownLeft:  UpLeft,
	DownRight: UpRight,
	Any:       Any,
}

// IsCanonical reports whether d is one of the nine discrete codes.
func IsCanonical(d int) bool {
	return d >= Up && d <= Any
}

// IsFine reports whether d uses the 1000–1360 fine angle encoding.
func IsFine(d int) bool {
	return d >= beatmap.PrecisionThreshold && d < FineMax
}

// Angle returns the canonical angle in degrees and whether d is known.
func Angle(d int) (float64, bool) {
	if !IsCanonical(d) {
		return 0, false
	}
	return angles[d], true
}

// MirrorHorizontal swaps the left/right component of a direction.
// Unknown codes are returned unchanged.
func MirrorHorizontal(d int) int {
	switch {
	case IsCanonical(d):
		return horizontal[d]
	case IsFine(d):
		return fine(-float64(d - beatmap.PrecisionThreshold))
	}
	return d
}

// MirrorVertical swaps the up/down component of a direction.
func MirrorVertical(d int) int {
	switch {
	case IsCanonical(d):
		return vertical[d]
	case IsFine(d):
		return fine(180 - float64(d-beatmap.PrecisionThreshold))
	}
	return d
}

func fine(deg float64) int {
	return beatmap.PrecisionThreshold + int(mathutil.WrapDegrees(deg))
}

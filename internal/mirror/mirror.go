// Package mirror computes the mirrored counterpart of a placed object.
package mirror

import (
	"fmt"
	"strings"

	"beatplace/internal/beatmap"
	"beatplace/internal/notedir"
)

// Axis selects the mirror line.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis accepts "horizontal"/"h" and "vertical"/"v".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("mirror: unknown axis %q", s)
}

// Result holds only the fields a mirror changed. A nil field was either
// absent on the input or not touched by the axis.
type Result struct {
	PosX      *float64
	PosY      *float64
	Color     *beatmap.NoteColor
	Direction *int

	// AngleOffset is set only when the input had a non-zero offset.
	AngleOffset *float64
}

// Apply mirrors obj across axis on the given grid.
func Apply(obj beatmap.Object, axis Axis, grid beatmap.GridConfig) Result {
	var r Result
	switch axis {
	case Horizontal:
		if obj.PosX != nil {
			r.PosX = beatmap.Float(reflectX(obj, grid.NumCols))
		}
		if obj.Color != nil {
			r.Color = beatmap.Color(obj.Color.Opposite())
		}
		if obj.Direction != nil {
			r.Direction = beatmap.Int(notedir.MirrorHorizontal(*obj.Direction))
			r.AngleOffset = mirrorOffset(obj.AngleOffset)
		}
	case Vertical:
		if obj.PosY != nil {
			r.PosY = beatmap.Float(reflect(*obj.PosY, grid.NumRows))
		}
		if obj.Direction != nil {
			r.Direction = beatmap.Int(notedir.MirrorVertical(*obj.Direction))
			r.AngleOffset = mirrorOffset(obj.AngleOffset)
		}
	}
	return r
}

// ApplyTo returns a copy of obj with the mirrored fields replaced.
func (r Result) ApplyTo(obj beatmap.Object) beatmap.Object {
	if r.PosX != nil {
		obj.PosX = r.PosX
	}
	if r.PosY != nil {
		obj.PosY = r.PosY
	}
	if r.Color != nil {
		obj.Color = r.Color
	}
	if r.Direction != nil {
		obj.Direction = r.Direction
	}
	if r.AngleOffset != nil {
		obj.AngleOffset = *r.AngleOffset
	}
	return obj
}

// reflectX mirrors a column. Obstacles are anchored at their lowest column,
// so a discrete wall of width w lands at n-x-w.
func reflectX(obj beatmap.Object, n int) float64 {
	x := *obj.PosX
	if obj.Kind == beatmap.KindObstacle && obj.Width != nil &&
		!beatmap.IsPrecision(x) && !beatmap.IsPrecision(*obj.Width) {
		return float64(n) - x - *obj.Width
	}
	return reflect(x, n)
}

// mirrorOffset negates a fine-tuning offset: both axes reflect the
// rotation angle, so the offset turns the other way.
func mirrorOffset(off float64) *float64 {
	if off == 0 {
		return nil
	}
	return beatmap.Float(-off)
}

// reflect mirrors a cell index about the middle of n cells. Precision
// values stay in the precision encoding and mirror about zero.
func reflect(v float64, n int) float64 {
	if beatmap.IsPrecision(v) {
		return -v
	}
	return float64(n-1) - v
}

// Package placement converts logical grid/time coordinates of placed objects
// into 3D positions for the track renderer.
package placement

import (
	"errors"

	"beatplace/internal/beatmap"
	"beatplace/internal/mathutil"
)

// Calibration constants tied to the renderer's coordinate convention.
// The offsets center the default 4×3 grid on the origin; SongOffset pulls
// the whole field back so the playback plane sits at a fixed depth.
const (
	CellSize   = 1.0
	OffsetX    = CellSize * -1.5
	OffsetY    = CellSize * -1
	SongOffset = 6.0
)

// ErrMissingTemporalField is returned when a depth is requested for an
// object that carries no time.
var ErrMissingTemporalField = errors.New("placement: object has no time")

// Options controls depth resolution and grid shape.
type Options struct {
	// BeatDepth scales beats to depth units. Nil = flat (z = 0).
	BeatDepth *float64
	// Grid overrides the default 4×3 layout. Nil = calibration constants.
	Grid *beatmap.GridConfig
}

// ResolvePosition places an object using the default grid constants.
// It is total: missing coordinates resolve as cell 0 and a missing time or
// beat depth yields z = 0.
func ResolvePosition(obj beatmap.Object, opts Options) mathutil.Vec3 {
	p := obj.Position()
	return mathutil.Vec3{
		resolveAxis(p.PosX, OffsetX, CellSize),
		resolveAxis(p.PosY, OffsetY, CellSize),
		depth(obj.Time, opts.BeatDepth),
	}
}

// ResolvePositionOnGrid is ResolvePosition for an arbitrary grid shape.
// The grid is centered on the origin the same way the default one is.
func ResolvePositionOnGrid(obj beatmap.Object, grid beatmap.GridConfig, opts Options) mathutil.Vec3 {
	p := obj.Position()
	offX := -float64(grid.NumCols-1) / 2 * grid.ColWidth
	offY := -float64(grid.NumRows-1) / 2 * grid.RowHeight
	return mathutil.Vec3{
		resolveAxis(p.PosX, offX, grid.ColWidth),
		resolveAxis(p.PosY, offY, grid.RowHeight),
		depth(obj.Time, opts.BeatDepth),
	}
}

// ResolveDepth returns the z coordinate for an object's time.
func ResolveDepth(obj beatmap.Object, beatDepth float64) (float64, error) {
	if obj.Time == nil {
		return 0, ErrMissingTemporalField
	}
	return depth(obj.Time, &beatDepth), nil
}

// resolveAxis maps one logical coordinate. Precision values are thousandths
// of a cell and are pushed one extra cell away from center.
func resolveAxis(v, offset, cell float64) float64 {
	if !beatmap.IsPrecision(v) {
		return v*cell + offset
	}
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	return v/beatmap.PrecisionThreshold*cell + offset + sign*cell
}

func depth(t, beatDepth *float64) float64 {
	if t == nil || beatDepth == nil {
		return 0
	}
	return -SongOffset + *t**beatDepth*-1
}

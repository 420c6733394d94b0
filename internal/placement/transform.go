package placement

import (
	"fmt"
	"math"

	"beatplace/internal/beatmap"
	"beatplace/internal/mathutil"
	"beatplace/internal/rotation"
)

// Transform is a render-ready placement for one object.
type Transform struct {
	Position mathutil.Vec3
	Rotation float64 // radians about Z
	Quat     mathutil.Quat
	Matrix   mathutil.Mat4
}

// ResolveTransform resolves position and rotation together.
// When a beat depth is supplied the object must carry a time.
func ResolveTransform(obj beatmap.Object, opts Options) (Transform, error) {
	if opts.BeatDepth != nil && obj.Time == nil {
		return Transform{}, fmt.Errorf("placement: resolve %q: %w", obj.ID, ErrMissingTemporalField)
	}

	var pos mathutil.Vec3
	if opts.Grid != nil {
		pos = ResolvePositionOnGrid(obj, *opts.Grid, opts)
	} else {
		pos = ResolvePosition(obj, opts)
	}

	var rot float64
	if obj.Direction != nil && obj.Kind != beatmap.KindBomb && obj.Kind != beatmap.KindObstacle {
		rot = rotation.Resolve(*obj.Direction, obj.AngleOffset)
	}

	return Transform{
		Position: pos,
		Rotation: rot,
		Quat:     mathutil.EulerToQuat(0, 0, rot),
		Matrix:   mathutil.FromMat3Translation(mathutil.RotZ(rot), pos),
	}, nil
}

// ResolveObstacleDimensions returns an obstacle's extents: width and height
// in world units and its depth from duration × beatDepth.
// Missing width is one column, missing height is the full grid height.
func ResolveObstacleDimensions(obj beatmap.Object, grid beatmap.GridConfig, beatDepth float64) (mathutil.Vec3, error) {
	if obj.Duration == nil {
		return mathutil.Vec3{}, fmt.Errorf("placement: obstacle %q has no duration: %w", obj.ID, ErrMissingTemporalField)
	}

	width, height := 1.0, float64(grid.NumRows)
	if obj.Width != nil {
		width = extentCells(*obj.Width)
	}
	if obj.Height != nil {
		height = extentCells(*obj.Height)
	}

	return mathutil.Vec3{
		width * grid.ColWidth,
		height * grid.RowHeight,
		*obj.Duration * beatDepth,
	}, nil
}

// extentCells decodes an obstacle extent; precision extents start at 1000
// for a zero-size wall.
func extentCells(v float64) float64 {
	if beatmap.IsPrecision(v) {
		return (math.Abs(v) - beatmap.PrecisionThreshold) / beatmap.PrecisionThreshold
	}
	return math.Abs(v)
}

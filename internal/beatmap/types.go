package beatmap

import (
	"fmt"
	"math"
)

// PrecisionThreshold is the magnitude at which a grid position or direction
// stops being a discrete code and becomes a precision value.
const PrecisionThreshold = 1000

// GridPosition is a logical column/row. |v| < 1000 is a discrete cell,
// |v| >= 1000 a precision offset in thousandths of a cell.
type GridPosition struct {
	PosX float64
	PosY float64
}

// IsPrecision reports whether v uses the precision placement encoding.
func IsPrecision(v float64) bool {
	return math.Abs(v) >= PrecisionThreshold
}

// NoteColor is the saber a note belongs to.
type NoteColor int

const (
	ColorLeft NoteColor = iota
	ColorRight
)

// Opposite swaps left and right.
func (c NoteColor) Opposite() NoteColor {
	if c == ColorLeft {
		return ColorRight
	}
	return ColorLeft
}

func (c NoteColor) String() string {
	if c == ColorLeft {
		return "left"
	}
	return "right"
}

// ObjectKind distinguishes the placed-object families.
type ObjectKind string

const (
	KindNote     ObjectKind = "note"
	KindBomb     ObjectKind = "bomb"
	KindObstacle ObjectKind = "obstacle"
)

// Object is a placed-object record as the editor stores it.
// Nil fields are absent on the record; no field is defaulted.
type Object struct {
	ID        string
	Kind      ObjectKind
	PosX      *float64
	PosY      *float64
	Time      *float64
	Direction *int
	Color     *NoteColor

	// AngleOffset fine-tunes a canonical direction, in degrees.
	AngleOffset float64

	// Obstacle extents, in cells and beats.
	Width    *float64
	Height   *float64
	Duration *float64
}

// Position returns the grid position, treating absent coordinates as cell 0.
func (o Object) Position() GridPosition {
	var p GridPosition
	if o.PosX != nil {
		p.PosX = *o.PosX
	}
	if o.PosY != nil {
		p.PosY = *o.PosY
	}
	return p
}

// GridConfig describes the logical placement grid.
type GridConfig struct {
	NumRows   int
	NumCols   int
	ColWidth  float64
	RowHeight float64
}

// DefaultGrid is the standard 3-row × 4-column grid of unit cells.
var DefaultGrid = GridConfig{NumRows: 3, NumCols: 4, ColWidth: 1, RowHeight: 1}

// Validate checks the grid shape.
func (g GridConfig) Validate() error {
	if g.NumRows < 1 || g.NumCols < 1 {
		return fmt.Errorf("beatmap: grid must have at least one row and column, got %dx%d", g.NumRows, g.NumCols)
	}
	if g.ColWidth <= 0 || g.RowHeight <= 0 {
		return fmt.Errorf("beatmap: grid cell size must be positive, got %gx%g", g.ColWidth, g.RowHeight)
	}
	return nil
}

// Float returns a pointer to v, for building records.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Color returns a pointer to c.
func Color(c NoteColor) *NoteColor { return &c }

// Package preview draws a front view of the placed objects in a beat window,
// as seen from the player's position.
package preview

import (
	"image"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"beatplace/internal/beatmap"
	"beatplace/internal/mathutil"
	"beatplace/internal/notedir"
	"beatplace/internal/placement"
	"beatplace/internal/postprocess"
)

// Options controls the preview frame.
type Options struct {
	Size        int
	Supersample int
	Grid        beatmap.GridConfig
	BeatDepth   float64

	// Objects with From <= time < From+WindowBeats are drawn.
	From        float64
	WindowBeats float64
}

type rgb struct{ r, g, b float64 }

var (
	leftColor     = rgb{0.85, 0.16, 0.16}
	rightColor    = rgb{0.16, 0.42, 0.9}
	bombColor     = rgb{0.15, 0.15, 0.18}
	obstacleColor = rgb{0.9, 0.2, 0.3}
	gridColor     = rgb{0.55, 0.55, 0.6}
)

type sprite struct {
	obj  beatmap.Object
	tr   placement.Transform
	dims mathutil.Vec3
	t    float64
}

// Render draws the visible objects. Farther objects are drawn first,
// smaller and more transparent.
func Render(objs []beatmap.Object, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	window := opts.WindowBeats
	if window <= 0 {
		window = 1
	}
	full := opts.Size * ss
	dc := gg.NewContext(full, full)

	cells := float64(max(opts.Grid.NumCols, opts.Grid.NumRows) + 2)
	unit := float64(full) / (cells * math.Max(opts.Grid.ColWidth, opts.Grid.RowHeight))
	center := float64(full) / 2

	toPixel := func(v mathutil.Vec3) (float64, float64) {
		return center + v.X()*unit, center - v.Y()*unit
	}

	drawGrid(dc, opts.Grid, unit, toPixel)

	var sprites []sprite
	grid := opts.Grid
	for _, obj := range objs {
		if obj.Time == nil || *obj.Time < opts.From || *obj.Time >= opts.From+window {
			continue
		}
		tr, err := placement.ResolveTransform(obj, placement.Options{Grid: &grid})
		if err != nil {
			continue
		}
		s := sprite{obj: obj, tr: tr, t: *obj.Time}
		if obj.Kind == beatmap.KindObstacle {
			dims, err := placement.ResolveObstacleDimensions(obj, grid, opts.BeatDepth)
			if err != nil {
				continue
			}
			s.dims = dims
		}
		sprites = append(sprites, s)
	}
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].t > sprites[j].t })

	for _, s := range sprites {
		// 1.0 at the playback plane, fading toward the end of the window
		near := 1 - (s.t-opts.From)/window
		scale := 0.55 + 0.45*near
		alpha := 0.35 + 0.65*near
		x, y := toPixel(s.tr.Position)

		switch s.obj.Kind {
		case beatmap.KindBomb:
			setColor(dc, bombColor, alpha)
			dc.DrawCircle(x, y, unit*0.3*scale)
			dc.Fill()
		case beatmap.KindObstacle:
			w, h := s.dims.X()*unit, s.dims.Y()*unit
			// obstacles are anchored at their lowest cell, not centered
			top := y + unit*opts.Grid.RowHeight/2 - h
			left := x - unit*opts.Grid.ColWidth/2
			setColor(dc, obstacleColor, alpha*0.5)
			dc.DrawRectangle(left, top, w, h)
			dc.Fill()
		default:
			drawNote(dc, s.obj, x, y, s.tr.Rotation, unit*0.8*scale, alpha)
		}
	}

	frame := image.NewNRGBA(image.Rect(0, 0, full, full))
	draw.Draw(frame, frame.Bounds(), dc.Image(), image.Point{}, draw.Src)
	if ss > 1 {
		frame = postprocess.Downsample(frame, opts.Size)
	}
	return frame
}

func drawGrid(dc *gg.Context, grid beatmap.GridConfig, unit float64, toPixel func(mathutil.Vec3) (float64, float64)) {
	setColor(dc, gridColor, 0.6)
	dc.SetLineWidth(math.Max(1, unit/40))
	for c := 0; c < grid.NumCols; c++ {
		for r := 0; r < grid.NumRows; r++ {
			cell := beatmap.Object{PosX: beatmap.Float(float64(c)), PosY: beatmap.Float(float64(r))}
			x, y := toPixel(placement.ResolvePositionOnGrid(cell, grid, placement.Options{}))
			w, h := grid.ColWidth*unit, grid.RowHeight*unit
			dc.DrawRectangle(x-w/2, y-h/2, w, h)
			dc.Stroke()
		}
	}
}

func drawNote(dc *gg.Context, obj beatmap.Object, x, y, rot, size, alpha float64) {
	c := leftColor
	if obj.Color != nil && *obj.Color == beatmap.ColorRight {
		c = rightColor
	}

	dc.Push()
	dc.Translate(x, y)
	// world Z rotation is counterclockwise with Y up; pixel Y points down
	dc.Rotate(-rot)

	setColor(dc, c, alpha)
	dc.DrawRoundedRectangle(-size/2, -size/2, size, size, size/8)
	dc.Fill()

	dc.SetRGBA(1, 1, 1, alpha)
	if obj.Direction != nil && *obj.Direction == notedir.Any {
		dc.DrawCircle(0, 0, size/8)
	} else {
		// arrow points down at zero rotation
		dc.MoveTo(-size*0.3, size*0.1)
		dc.LineTo(size*0.3, size*0.1)
		dc.LineTo(0, size*0.35)
		dc.ClosePath()
	}
	dc.Fill()
	dc.Pop()
}

func setColor(dc *gg.Context, c rgb, alpha float64) {
	dc.SetRGBA(c.r, c.g, c.b, alpha)
}

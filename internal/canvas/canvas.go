package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// coverageThreshold is the alpha (0-255) at which a scratch pixel counts
// as covered by the shape that was drawn.
const coverageThreshold = 128

// Canvas is a raster where every pixel holds exactly one of the colours
// that were painted onto it.
//
// Shapes are drawn with a drawing library on a scratch context because it's
// 100x easier than doing the geometry ourselves. The library antialiases,
// so each shape is then thresholded and copied over as a solid colour.
// Blended edge colours would otherwise not classify as anything.
type Canvas struct {
	im *image.RGBA

	// scratch drawing context, kept transparent between draws
	ctx     *gg.Context
	scratch *image.RGBA
}

// New returns a canvas of the given size filled with background
func New(width, height int, background color.RGBA) *Canvas {
	bounds := image.Rect(0, 0, width, height)

	im := image.NewRGBA(bounds)
	draw.Draw(im, bounds, image.NewUniform(background), image.Point{}, draw.Src)

	scratch := image.NewRGBA(bounds)
	ctx := gg.NewContextForRGBA(scratch)
	ctx.SetLineCapRound()
	ctx.SetLineJoinRound()

	return &Canvas{im: im, ctx: ctx, scratch: scratch}
}

// Bounds of the canvas
func (c *Canvas) Bounds() image.Rectangle {
	return c.im.Bounds()
}

// At returns the colour at x,y. Out of bounds is transparent black.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.im.RGBAAt(x, y)
}

// Set paints a single pixel.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	c.im.SetRGBA(x, y, col)
}

// FillPolygons fills the area enclosed by rings. Rings are combined
// even-odd, so an inner ring inside an outer ring is a hole.
func (c *Canvas) FillPolygons(rings [][]model2d.Coord, col color.RGBA) {
	box := r2.EmptyRect()
	drawn := false

	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		c.ctx.NewSubPath()
		for i, p := range ring {
			if i == 0 {
				c.ctx.MoveTo(p.X, p.Y)
			} else {
				c.ctx.LineTo(p.X, p.Y)
			}
			box = box.AddPoint(r2.Point{X: p.X, Y: p.Y})
		}
		c.ctx.ClosePath()
		drawn = true
	}
	if !drawn {
		c.ctx.ClearPath()
		return
	}

	c.ctx.SetFillRule(gg.FillRuleEvenOdd)
	c.ctx.SetColor(color.White)
	c.ctx.Fill()

	c.commit(box, 1, col)
}

// StrokePath draws a line of the given width through path.
func (c *Canvas) StrokePath(path []model2d.Coord, width float64, col color.RGBA) {
	if len(path) < 2 || width <= 0 {
		return
	}

	box := r2.EmptyRect()
	for i, p := range path {
		if i == 0 {
			c.ctx.MoveTo(p.X, p.Y)
		} else {
			c.ctx.LineTo(p.X, p.Y)
		}
		box = box.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}

	c.ctx.SetLineWidth(width)
	c.ctx.SetColor(color.White)
	c.ctx.Stroke()

	c.commit(box, width/2+1, col)
}

// StrokeSegments draws each segment of path with its own width,
// widths[i] being the width between path[i] and path[i+1].
func (c *Canvas) StrokeSegments(path []model2d.Coord, widths []float64, col color.RGBA) {
	n := essentials.MinInt(len(path)-1, len(widths))
	if n < 1 {
		return
	}

	box := r2.EmptyRect()
	widest := 0.0
	for i := 0; i < n; i++ {
		if widths[i] <= 0 {
			continue
		}
		a, b := path[i], path[i+1]
		c.ctx.SetLineWidth(widths[i])
		c.ctx.DrawLine(a.X, a.Y, b.X, b.Y)
		c.ctx.SetColor(color.White)
		c.ctx.Stroke()

		box = box.AddPoint(r2.Point{X: a.X, Y: a.Y}).AddPoint(r2.Point{X: b.X, Y: b.Y})
		widest = math.Max(widest, widths[i])
	}
	if box.IsEmpty() {
		return
	}

	c.commit(box, widest/2+1, col)
}

// commit copies every covered scratch pixel within box (grown by margin)
// onto the canvas as col, then clears the scratch area again.
func (c *Canvas) commit(box r2.Rect, margin float64, col color.RGBA) {
	if box.IsEmpty() {
		return
	}
	box = box.ExpandedByMargin(margin)

	bnds := c.im.Bounds()
	area := image.Rect(
		essentials.MaxInt(bnds.Min.X, int(math.Floor(box.X.Lo))),
		essentials.MaxInt(bnds.Min.Y, int(math.Floor(box.Y.Lo))),
		essentials.MinInt(bnds.Max.X, int(math.Ceil(box.X.Hi))+1),
		essentials.MinInt(bnds.Max.Y, int(math.Ceil(box.Y.Hi))+1),
	)
	if area.Empty() {
		return
	}

	for dy := area.Min.Y; dy < area.Max.Y; dy++ {
		for dx := area.Min.X; dx < area.Max.X; dx++ {
			if c.scratch.Pix[c.scratch.PixOffset(dx, dy)+3] >= coverageThreshold {
				c.im.SetRGBA(dx, dy, col)
			}
		}
	}

	draw.Draw(c.scratch, area, image.Transparent, image.Point{}, draw.Src)
}

// Snapshot returns a copy of the canvas as it is now.
func (c *Canvas) Snapshot() *image.RGBA {
	cp := image.NewRGBA(c.im.Bounds())
	copy(cp.Pix, c.im.Pix)
	return cp
}

// SavePNG writes the canvas to disk
func (c *Canvas) SavePNG(fpath string) error {
	return gg.SavePNG(fpath, c.im)
}

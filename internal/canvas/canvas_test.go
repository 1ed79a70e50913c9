package canvas

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/unixpickle/model3d/model2d"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func square(x0, y0, x1, y1 float64) []model2d.Coord {
	return []model2d.Coord{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// every pixel must be one of the given colours: no blends
func assertPalette(t *testing.T, c *Canvas, cols ...color.RGBA) {
	t.Helper()
	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := c.At(x, y)
			ok := false
			for _, col := range cols {
				if px == col {
					ok = true
				}
			}
			if !ok {
				t.Fatalf("pixel (%d,%d) = %v is not in palette", x, y, px)
			}
		}
	}
}

func TestFillPolygons(t *testing.T) {
	c := New(20, 20, white)
	c.FillPolygons([][]model2d.Coord{square(2, 2, 10, 10)}, red)

	if c.At(5, 5) != red {
		t.Errorf("inside = %v, want red", c.At(5, 5))
	}
	if c.At(15, 15) != white {
		t.Errorf("outside = %v, want white", c.At(15, 15))
	}
	assertPalette(t, c, white, red)
}

func TestFillPolygonsWithHole(t *testing.T) {
	c := New(30, 30, white)
	c.FillPolygons([][]model2d.Coord{
		square(0, 0, 30, 30),
		square(10, 10, 20, 20),
	}, blue)

	if c.At(3, 3) != blue {
		t.Errorf("ring = %v, want blue", c.At(3, 3))
	}
	if c.At(15, 15) != white {
		t.Errorf("hole = %v, want white", c.At(15, 15))
	}
	assertPalette(t, c, white, blue)
}

func TestStrokePath(t *testing.T) {
	c := New(40, 20, white)
	c.StrokePath([]model2d.Coord{{X: 2, Y: 10}, {X: 37, Y: 10.5}}, 4, red)

	if c.At(20, 10) != red {
		t.Errorf("on line = %v, want red", c.At(20, 10))
	}
	if c.At(20, 2) != white {
		t.Errorf("off line = %v, want white", c.At(20, 2))
	}
	assertPalette(t, c, white, red)

	// scratch must be clean for the next shape
	c.StrokePath([]model2d.Coord{{X: 20, Y: 0}, {X: 20, Y: 20}}, 2, blue)
	if c.At(5, 10) != red {
		t.Errorf("earlier stroke was repainted: %v", c.At(5, 10))
	}
	assertPalette(t, c, white, red, blue)
}

func TestStrokeSegments(t *testing.T) {
	c := New(40, 40, white)
	path := []model2d.Coord{{X: 5, Y: 5}, {X: 35, Y: 5}, {X: 35, Y: 35}}
	c.StrokeSegments(path, []float64{2, 10}, red)

	if c.At(20, 8) != white {
		t.Errorf("thin segment too wide at (20,8)")
	}
	if c.At(31, 20) != red {
		t.Errorf("wide segment too narrow at (31,20)")
	}
	assertPalette(t, c, white, red)
}

func TestOutOfBoundsShapesAreClipped(t *testing.T) {
	c := New(10, 10, white)
	c.FillPolygons([][]model2d.Coord{square(-50, -50, 5, 5)}, red)
	c.StrokePath([]model2d.Coord{{X: -100, Y: 8}, {X: 100, Y: 8}}, 2, blue)

	if c.At(0, 0) != red || c.At(5, 8) != blue {
		t.Errorf("clipped shapes not drawn: %v %v", c.At(0, 0), c.At(5, 8))
	}
	if c.At(10, 0) != (color.RGBA{}) {
		t.Errorf("out of bounds pixel = %v, want transparent", c.At(10, 0))
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	c := New(4, 4, white)
	snap := c.Snapshot()
	c.Set(1, 1, red)

	if snap.RGBAAt(1, 1) != white {
		t.Errorf("snapshot changed with canvas")
	}
}

func TestSavePNG(t *testing.T) {
	c := New(8, 8, white)
	c.Set(2, 3, red)

	fpath := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(fpath); err != nil {
		t.Fatal(err)
	}

	im, err := gg.LoadPNG(fpath)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := im.At(2, 3).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("saved pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

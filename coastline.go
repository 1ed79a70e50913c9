package cddaosm

import (
	"image"
	"image/color"

	"github.com/boljen/go-bitmap"
	"github.com/unixpickle/model3d/model2d"
	"github.com/voidshard/cddaosm/internal/coords"
)

const (
	// coastlineBorderWidth is the width in pixels of the stroked coastline
	coastlineBorderWidth = 2.0

	// sideIndicatorWidth is how far (in pixels) the water side indicator
	// reaches from the coastline
	sideIndicatorWidth = 2.0

	overmapTilePixels = coords.OvermapTileSize * coords.OvermapTileSize
)

var adjacent = []image.Point{image.Pt(1, 0), image.Pt(-1, 0), image.Pt(0, 1), image.Pt(0, -1)}

// sideIndicator returns a thin polygon lying along the water (right hand)
// side of path: the path itself followed by the path pushed sideIndicatorWidth
// to its right, walked backwards.
func sideIndicator(path []model2d.Coord) []model2d.Coord {
	if len(path) < 2 {
		return nil
	}

	displaced := make([]model2d.Coord, len(path))
	for i, p := range path {
		var offset model2d.Coord
		switch i {
		case 0:
			offset = rightNormal(p, path[i+1])
		case len(path) - 1:
			offset = rightNormal(path[i-1], p)
		default:
			offset = rightNormal(path[i-1], p).Add(rightNormal(p, path[i+1]))
			if offset.Norm() == 0 { // path doubles back on itself
				offset = rightNormal(p, path[i+1])
			}
		}
		if offset.Norm() != 0 {
			offset = offset.Normalize()
		}
		displaced[len(path)-1-i] = p.Add(offset.Scale(sideIndicatorWidth))
	}

	return append(append([]model2d.Coord{}, path...), displaced...)
}

// rightNormal is the unit vector pointing to the right of travel from a to b
// (y grows downwards). Zero if a == b.
func rightNormal(a, b model2d.Coord) model2d.Coord {
	d := b.Sub(a)
	if d.Norm() == 0 {
		return model2d.Coord{}
	}
	d = d.Normalize()
	return model2d.Coord{X: -d.Y, Y: d.X}
}

// ResolveCoastlines works out which side of the coastlines is sea and
// paints it as water.
//
// The coastlines are drawn with a thin water coloured strip on their sea
// side and a border colour stroke down their middle. Then every connected
// region of untouched background is flood filled, counting the distinct
// border and water strip pixels it touches. Regions touching more water
// than border are sea; they're painted water and the coastline strokes
// are erased again.
//
// Overmap tiles that end up entirely sea become Water100Percent, those that
// are at least half sea become Water. Others keep what grid had.
func ResolveCoastlines(c Canvas, grid OvermapGrid, coastlines []*Coastline) (OvermapGrid, []*CoastlineArea) {
	grid = grid.Clone()
	if len(coastlines) == 0 {
		return grid, nil
	}

	for _, cl := range coastlines {
		for _, p := range cl.Polygons {
			ind := sideIndicator(p.Points)
			if ind == nil {
				continue
			}
			c.FillPolygons([][]model2d.Coord{ind}, waterSideColour)
		}
	}
	strokeCoastlines(c, coastlines, CoastlineBorderColour)

	areas := findCoastlineAreas(c)

	bnds := c.Bounds()
	size := grid.Size()
	water := make([]int, size.X*size.Y)
	for _, a := range areas {
		if !a.IsWater() {
			continue
		}
		floodPaint(c, a.Seed, func(p image.Point) {
			ox, oy := (p.X-bnds.Min.X)/coords.OvermapTileSize, (p.Y-bnds.Min.Y)/coords.OvermapTileSize
			if grid.In(ox, oy) {
				water[oy*size.X+ox]++
			}
		})
	}

	strokeCoastlines(c, coastlines, BackgroundColour)

	for oy := 0; oy < size.Y; oy++ {
		for ox := 0; ox < size.X; ox++ {
			count := water[oy*size.X+ox]
			if count == overmapTilePixels {
				grid.Set(ox, oy, Water100Percent)
			} else if count >= overmapTilePixels/2 {
				grid.Set(ox, oy, Water)
			}
		}
	}

	return grid, areas
}

// strokeCoastlines draws the centre line of every coastline
func strokeCoastlines(c Canvas, coastlines []*Coastline, col color.RGBA) {
	for _, cl := range coastlines {
		for _, p := range cl.Polygons {
			c.StrokePath(p.Points, coastlineBorderWidth, col)
		}
	}
}

// findCoastlineAreas flood fills every connected region of background,
// counting the coastline pixels each touches. Each border pixel is counted
// once, by the first region to reach it. Seeds are scanned column by
// column (x outer).
func findCoastlineAreas(c Canvas) []*CoastlineArea {
	bnds := c.Bounds()
	w, h := bnds.Dx(), bnds.Dy()

	seen := bitmap.New(w * h)
	index := func(p image.Point) int {
		return (p.Y-bnds.Min.Y)*w + (p.X - bnds.Min.X)
	}

	areas := []*CoastlineArea{}
	queue := []image.Point{}

	for x := bnds.Min.X; x < bnds.Max.X; x++ {
		for y := bnds.Min.Y; y < bnds.Max.Y; y++ {
			seed := image.Pt(x, y)
			if seen.Get(index(seed)) || c.At(x, y) != BackgroundColour {
				continue
			}

			area := &CoastlineArea{Seed: seed}
			seen.Set(index(seed), true)
			queue = append(queue[:0], seed)

			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]

				for _, d := range adjacent {
					n := p.Add(d)
					if !n.In(bnds) || seen.Get(index(n)) {
						continue
					}

					switch c.At(n.X, n.Y) {
					case BackgroundColour:
						seen.Set(index(n), true)
						queue = append(queue, n)
					case waterSideColour:
						seen.Set(index(n), true)
						area.AdjacentWaterBorderPixels++
					case CoastlineBorderColour:
						seen.Set(index(n), true)
						area.AdjacentLandBorderPixels++
					}
				}
			}

			areas = append(areas, area)
		}
	}

	return areas
}

// floodPaint paints the background region containing seed as water,
// calling fn for every pixel painted.
func floodPaint(c Canvas, seed image.Point, fn func(image.Point)) {
	bnds := c.Bounds()
	if c.At(seed.X, seed.Y) != BackgroundColour {
		return
	}

	c.Set(seed.X, seed.Y, waterSideColour)
	fn(seed)
	queue := []image.Point{seed}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, d := range adjacent {
			n := p.Add(d)
			if !n.In(bnds) || c.At(n.X, n.Y) != BackgroundColour {
				continue
			}
			c.Set(n.X, n.Y, waterSideColour)
			fn(n)
			queue = append(queue, n)
		}
	}
}

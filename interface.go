package cddaosm

import (
	"image"
	"image/color"

	"github.com/unixpickle/model3d/model2d"
)

// MapProvider supplies the geometry to draw, already projected into pixel
// space (one pixel is one game tile).
type MapProvider interface {
	// how many pixels one metre of the real world covers
	PixelsPerMetre() float64

	// size of the map in pixels
	MapSize() image.Point

	// everything to draw
	MapElements() (*MapElements, error)
}

// Canvas is the raster the map is drawn on. Every pixel holds exactly one
// of the colours painted onto it (no antialiased blends).
type Canvas interface {
	Bounds() image.Rectangle

	// At returns the colour of x,y
	At(x, y int) color.RGBA

	// Set paints a single pixel
	Set(x, y int, c color.RGBA)

	// FillPolygons fills rings combined even-odd (inner rings are holes)
	FillPolygons(rings [][]model2d.Coord, c color.RGBA)

	// StrokePath draws a line of the given width through path
	StrokePath(path []model2d.Coord, width float64, c color.RGBA)

	// StrokeSegments draws each segment of path with its own width
	StrokeSegments(path []model2d.Coord, widths []float64, c color.RGBA)
}

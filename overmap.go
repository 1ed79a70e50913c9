package cddaosm

import (
	"image"
)

// OvermapGrid holds one OvermapTerrainType per overmap tile of the map.
// Reads outside the grid return OvermapDefault and writes outside it are
// ignored, so callers never need to bounds check.
type OvermapGrid struct {
	width  int
	height int
	cells  []OvermapTerrainType
}

// NewOvermapGrid returns a grid of the given size in overmap tiles,
// every tile OvermapDefault.
func NewOvermapGrid(width, height int) OvermapGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]OvermapTerrainType, width*height)
	for i := range cells {
		cells[i] = OvermapDefault
	}
	return OvermapGrid{width: width, height: height, cells: cells}
}

// Size of the grid in overmap tiles
func (g OvermapGrid) Size() image.Point {
	return image.Pt(g.width, g.height)
}

// In returns if x,y is a tile of the grid
func (g OvermapGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the tile at x,y
func (g OvermapGrid) At(x, y int) OvermapTerrainType {
	if !g.In(x, y) {
		return OvermapDefault
	}
	return g.cells[y*g.width+x]
}

// Set the tile at x,y
func (g *OvermapGrid) Set(x, y int, t OvermapTerrainType) {
	if !g.In(x, y) {
		return
	}
	g.cells[y*g.width+x] = t
}

// Clone returns a copy that shares nothing with g
func (g OvermapGrid) Clone() OvermapGrid {
	cells := make([]OvermapTerrainType, len(g.cells))
	copy(cells, g.cells)
	return OvermapGrid{width: g.width, height: g.height, cells: cells}
}

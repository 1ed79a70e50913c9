package cddaosm

import (
	"image"

	"github.com/boljen/go-bitmap"
	"github.com/voidshard/cddaosm/internal/coords"
	"github.com/voidshard/cddaosm/internal/encoding"
	"github.com/voidshard/cddaosm/internal/line"
)

// OvermapRoadInfo records which neighbouring overmap tiles a tile's road
// connects to, as an 8 bit bitmap
//
//	bit 0 -> north
//	bit 1 -> south
//	bit 2 -> east
//	bit 3 -> west
//	bit 4-7 -> unused
type OvermapRoadInfo struct {
	bm bitmap.Bitmap
}

// Connect adds connections
func (o *OvermapRoadInfo) Connect(d line.Dir) {
	if o.bm == nil {
		o.bm = bitmap.New(8)
	}
	add := encoding.Unpack(uint8(d))
	for bit := 0; bit < 4; bit++ {
		if add.Get(bit) {
			o.bm.Set(bit, true)
		}
	}
}

// Has returns if all of d are connected
func (o OvermapRoadInfo) Has(d line.Dir) bool {
	return line.Dir(o.Mask()).Has(d)
}

// Mask returns the connections as north | south<<1 | east<<2 | west<<3
func (o OvermapRoadInfo) Mask() uint8 {
	if o.bm == nil {
		return 0
	}
	return encoding.Pack(o.bm)
}

// roadNetwork collects OvermapRoadInfo for every tile of an overmap.
// It meets the line.Marker interface.
type roadNetwork struct {
	width  int
	height int
	cells  []OvermapRoadInfo
}

func newRoadNetwork(size image.Point) *roadNetwork {
	return &roadNetwork{
		width:  size.X,
		height: size.Y,
		cells:  make([]OvermapRoadInfo, size.X*size.Y),
	}
}

// Mark adds connections at x,y. Tiles on the edge of the overmap are never
// marked.
func (n *roadNetwork) Mark(x, y int, d line.Dir) {
	if x <= 0 || y <= 0 || x >= n.width-1 || y >= n.height-1 {
		return
	}
	n.cells[y*n.width+x].Connect(d)
}

// at returns the info at x,y
func (n *roadNetwork) at(x, y int) OvermapRoadInfo {
	if x < 0 || y < 0 || x >= n.width || y >= n.height {
		return OvermapRoadInfo{}
	}
	return n.cells[y*n.width+x]
}

// addRoad traces every polyline of the road across the overmap
func (n *roadNetwork) addRoad(r *Road) {
	for _, p := range r.Polygons {
		for i := 0; i+1 < len(p.Points); i++ {
			a, b := p.Points[i], p.Points[i+1]
			line.Trace(
				n,
				image.Pt(int(a.X/coords.OvermapTileSize), int(a.Y/coords.OvermapTileSize)),
				image.Pt(int(b.X/coords.OvermapTileSize), int(b.Y/coords.OvermapTileSize)),
			)
		}
	}
}

// ResolveOvermapRoads sets road & forest trail tiles on a copy of grid.
//
// Roads and trails are traced separately; where a tile has both the road
// wins. Tiles with neither keep what grid had.
func ResolveOvermapRoads(grid OvermapGrid, roads []*Road) OvermapGrid {
	grid = grid.Clone()
	size := grid.Size()

	vehicle := newRoadNetwork(size)
	trail := newRoadNetwork(size)
	for _, r := range roads {
		if overmapRoadTypes[r.Type] {
			vehicle.addRoad(r)
		} else if overmapTrailTypes[r.Type] {
			trail.addRoad(r)
		}
	}

	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if t := roadForMask(vehicle.at(x, y).Mask()); t != "" {
				grid.Set(x, y, t)
			} else if t := trailForMask(trail.at(x, y).Mask()); t != "" {
				grid.Set(x, y, t)
			}
		}
	}

	return grid
}

package coords

import (
	"fmt"
)

const (
	// SubmapSize is the width & height of a submap in tiles
	SubmapSize = 12

	// OvermapTileSize is the width & height of an overmap tile in tiles (2x2 submaps)
	OvermapTileSize = 2 * SubmapSize

	// OvermapTilesPerSegment is the number of overmap tiles along one side of a segment
	OvermapTilesPerSegment = 32

	// SegmentSize is the width & height of a segment in tiles
	SegmentSize = OvermapTilesPerSegment * OvermapTileSize

	// OvermapTilesPerRegion is the number of overmap tiles along one side of a region
	OvermapTilesPerRegion = 180

	// OvermapRegionSize is the width & height of an overmap region in tiles
	OvermapRegionSize = OvermapTilesPerRegion * OvermapTileSize

	// SubmapsPerRegion is the number of submaps along one side of a region
	SubmapsPerRegion = OvermapRegionSize / SubmapSize

	// OvermapRegionLayerSize is the number of overmap tiles in one region layer
	OvermapRegionLayerSize = OvermapTilesPerRegion * OvermapTilesPerRegion

	// RealityBubbleRadius is the distance in tiles from the player to the edge
	// of the area the game keeps loaded
	RealityBubbleRadius = 60
)

// Point is an (x,y) pair in some integer unit. Absolute tile positions
// may be negative.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by k
func (p Point) Mul(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// String implements fmt.Stringer
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// TileAddress breaks an absolute tile position down into the game's
// nested units. Every component is derived with floored division so
// negative positions land in the correct cell.
type TileAddress struct {
	Abspos         Point
	OvermapRegion  Point
	Segment        Point
	OvermapTile    Point // absolute overmap tile index
	SubmapIdx      Point // 0 or 1 within the overmap tile
	RelPosInSubmap Point // 0..11 within the submap
}

// ToTileAddress derives the TileAddress of an absolute tile position.
func ToTileAddress(p Point) TileAddress {
	return TileAddress{
		Abspos:         p,
		OvermapRegion:  Point{FloorDiv(p.X, OvermapRegionSize), FloorDiv(p.Y, OvermapRegionSize)},
		Segment:        Point{FloorDiv(p.X, SegmentSize), FloorDiv(p.Y, SegmentSize)},
		OvermapTile:    Point{overmapTile(p.X), overmapTile(p.Y)},
		SubmapIdx:      Point{submapIdx(p.X), submapIdx(p.Y)},
		RelPosInSubmap: Point{FloorMod(p.X, SubmapSize), FloorMod(p.Y, SubmapSize)},
	}
}

// ToAbsolutePosition is the inverse of ToTileAddress.
func ToAbsolutePosition(overmapTile, submapIdx, relPos Point) Point {
	return Point{
		absComponent(overmapTile.X, submapIdx.X, relPos.X),
		absComponent(overmapTile.Y, submapIdx.Y, relPos.Y),
	}
}

// AbsolutePosition returns the absolute tile position of the address.
func (t TileAddress) AbsolutePosition() Point {
	return ToAbsolutePosition(t.OvermapTile, t.SubmapIdx, t.RelPosInSubmap)
}

func overmapTile(a int) int {
	segment := FloorDiv(a, SegmentSize)
	posInSegment := FloorMod(a, SegmentSize)
	return FloorDiv(posInSegment, OvermapTileSize) + segment*OvermapTilesPerSegment
}

func submapIdx(a int) int {
	posInSegment := FloorMod(a, SegmentSize)
	return FloorDiv(posInSegment, SubmapSize) - 2*FloorMod(overmapTile(a), OvermapTilesPerSegment)
}

func absComponent(overmapTile, submapIdx, relPos int) int {
	return relPos + overmapTile*OvermapTileSize + submapIdx*SubmapSize
}

// FloorDiv is integer division rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod is the remainder of FloorDiv; the result has the sign of b.
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

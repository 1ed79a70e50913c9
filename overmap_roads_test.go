package cddaosm

import (
	"testing"

	"github.com/voidshard/cddaosm/internal/line"
)

func TestOvermapRoadInfoMask(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		info := OvermapRoadInfo{}
		info.Connect(line.Dir(mask))

		if got := info.Mask(); got != uint8(mask) {
			t.Errorf("mask %d: Mask() = %d", mask, got)
		}
	}
}

func TestMaskToRoad(t *testing.T) {
	const (
		n = uint8(line.North)
		s = uint8(line.South)
		e = uint8(line.East)
		w = uint8(line.West)
	)

	tests := []struct {
		mask   uint8
		road   OvermapTerrainType
		trail  OvermapTerrainType
		gameID string
	}{
		{0, "", "", ""},
		{n, RoadNorth, TrailNorth, "end_north"},
		{s, RoadSouth, TrailSouth, "end_south"},
		{n | s, RoadNorthSouth, TrailNorthSouth, "ns"},
		{e, RoadEast, TrailEast, "end_east"},
		{n | e, RoadNorthEast, TrailNorthEast, "ne"},
		{e | s, RoadEastSouth, TrailEastSouth, "es"},
		{n | e | s, RoadNorthEastSouth, TrailNorthEastSouth, "nes"},
		{w, RoadWest, TrailWest, "end_west"},
		{w | n, RoadWestNorth, TrailWestNorth, "wn"},
		{s | w, RoadSouthWest, TrailSouthWest, "sw"},
		{n | s | w, RoadNorthSouthWest, TrailNorthSouthWest, "nsw"},
		{e | w, RoadEastWest, TrailEastWest, "ew"},
		{n | e | w, RoadNorthEastWest, TrailNorthEastWest, "new"},
		{e | s | w, RoadEastSouthWest, TrailEastSouthWest, "esw"},
		{n | e | s | w, RoadNorthEastSouthWest, TrailNorthEastSouthWest, "nesw"},
	}

	if len(tests) != 16 {
		t.Fatalf("table covers %d masks, want 16", len(tests))
	}

	for i, tt := range tests {
		if tt.mask != uint8(i) {
			t.Fatalf("row %d holds mask %d", i, tt.mask)
		}
		if got := roadForMask(tt.mask); got != tt.road {
			t.Errorf("mask %04b: road = %q, want %q", tt.mask, got, tt.road)
		}
		if got := trailForMask(tt.mask); got != tt.trail {
			t.Errorf("mask %04b: trail = %q, want %q", tt.mask, got, tt.trail)
		}
		if tt.mask == 0 {
			continue
		}
		if got, want := tt.road.GameID(), "road_"+tt.gameID; got != want {
			t.Errorf("mask %04b: road id = %s, want %s", tt.mask, got, want)
		}
		if got, want := tt.trail.GameID(), "forest_trail_"+tt.gameID; got != want {
			t.Errorf("mask %04b: trail id = %s, want %s", tt.mask, got, want)
		}
	}
}

func TestOvermapRoadInfoCumulative(t *testing.T) {
	info := OvermapRoadInfo{}
	info.Connect(line.North)
	info.Connect(line.East | line.West)

	if !info.Has(line.North | line.East | line.West) {
		t.Errorf("mask = %04b, want north east west", info.Mask())
	}
	if info.Has(line.South) {
		t.Error("unexpected south connection")
	}
	if got := roadForMask(info.Mask()); got != RoadNorthEastWest {
		t.Errorf("road = %s, want %s", got, RoadNorthEastWest)
	}
}

func TestResolveOvermapRoads(t *testing.T) {
	tests := []struct {
		name  string
		roads []*Road
		want  map[[2]int]OvermapTerrainType
	}{
		{
			name:  "east west road",
			roads: []*Road{{Type: "residential", Polygons: []Polygon{path(12, 60, 228, 60)}}},
			want: map[[2]int]OvermapTerrainType{
				{0, 2}: OvermapDefault, // edge
				{1, 2}: RoadEastWest,
				{5, 2}: RoadEastWest,
				{8, 2}: RoadEastWest,
				{9, 2}: OvermapDefault, // edge
				{5, 3}: OvermapDefault,
			},
		},
		{
			name:  "north south trail",
			roads: []*Road{{Type: "track", Polygons: []Polygon{path(60, 12, 60, 228)}}},
			want: map[[2]int]OvermapTerrainType{
				{2, 0}: OvermapDefault,
				{2, 1}: TrailNorthSouth,
				{2, 8}: TrailNorthSouth,
				{2, 9}: OvermapDefault,
			},
		},
		{
			name: "dead end & corner",
			roads: []*Road{
				{Type: "primary", Polygons: []Polygon{path(60, 60, 132, 60, 132, 132)}},
			},
			want: map[[2]int]OvermapTerrainType{
				{2, 2}: RoadEast,
				{3, 2}: RoadEastWest,
				{5, 2}: RoadSouthWest,
				{5, 3}: RoadNorthSouth,
				{5, 5}: RoadNorth,
			},
		},
		{
			name: "road wins over trail",
			roads: []*Road{
				{Type: "path", Polygons: []Polygon{path(12, 60, 228, 60)}},
				{Type: "trunk", Polygons: []Polygon{path(60, 12, 60, 228)}},
			},
			want: map[[2]int]OvermapTerrainType{
				{2, 2}: RoadNorthSouth,
				{3, 2}: TrailEastWest,
				{2, 3}: RoadNorthSouth,
			},
		},
		{
			name:  "ignored class",
			roads: []*Road{{Type: "footway", Polygons: []Polygon{path(12, 60, 228, 60)}}},
			want: map[[2]int]OvermapTerrainType{
				{5, 2}: OvermapDefault,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewOvermapGrid(10, 10)
			out := ResolveOvermapRoads(grid, tt.roads)

			for xy, want := range tt.want {
				if got := out.At(xy[0], xy[1]); got != want {
					t.Errorf("(%d,%d) = %s, want %s", xy[0], xy[1], got, want)
				}
			}
		})
	}
}

func TestResolveOvermapRoadsKeepsGrid(t *testing.T) {
	grid := NewOvermapGrid(10, 10)
	grid.Set(5, 5, Water)
	grid.Set(5, 2, Water)

	out := ResolveOvermapRoads(grid, []*Road{{Type: "residential", Polygons: []Polygon{path(12, 60, 228, 60)}}})

	if got := out.At(5, 5); got != Water {
		t.Errorf("untouched tile = %s, want water", got)
	}
	if got := out.At(5, 2); got != RoadEastWest {
		t.Errorf("road tile = %s, want %s", got, RoadEastWest)
	}
	if got := grid.At(5, 2); got != Water {
		t.Errorf("input grid modified: %s", got)
	}
}

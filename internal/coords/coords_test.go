package coords

import (
	"testing"
)

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b int
		div  int
		mod  int
	}{
		{0, 12, 0, 0},
		{11, 12, 0, 11},
		{12, 12, 1, 0},
		{-1, 12, -1, 11},
		{-12, 12, -1, 0},
		{-13, 12, -2, 11},
		{-4320, 4320, -1, 0},
		{-4321, 4320, -2, 4319},
	}

	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.div {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.div)
		}
		if got := FloorMod(tt.a, tt.b); got != tt.mod {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.mod)
		}
	}
}

func TestToTileAddress(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want TileAddress
	}{
		{
			name: "origin",
			in:   Pt(0, 0),
			want: TileAddress{Abspos: Pt(0, 0)},
		},
		{
			name: "second submap",
			in:   Pt(12, 23),
			want: TileAddress{
				Abspos:         Pt(12, 23),
				SubmapIdx:      Pt(1, 1),
				RelPosInSubmap: Pt(0, 11),
			},
		},
		{
			name: "next segment",
			in:   Pt(768, 769),
			want: TileAddress{
				Abspos:         Pt(768, 769),
				Segment:        Pt(1, 1),
				OvermapTile:    Pt(32, 32),
				RelPosInSubmap: Pt(0, 1),
			},
		},
		{
			name: "negative",
			in:   Pt(-1, -60),
			want: TileAddress{
				Abspos:         Pt(-1, -60),
				OvermapRegion:  Pt(-1, -1),
				Segment:        Pt(-1, -1),
				OvermapTile:    Pt(-1, -3),
				SubmapIdx:      Pt(1, 1),
				RelPosInSubmap: Pt(11, 0),
			},
		},
		{
			name: "region boundary",
			in:   Pt(4319, 4320),
			want: TileAddress{
				Abspos:         Pt(4319, 4320),
				OvermapRegion:  Pt(0, 1),
				Segment:        Pt(5, 5),
				OvermapTile:    Pt(179, 180),
				SubmapIdx:      Pt(1, 0),
				RelPosInSubmap: Pt(11, 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToTileAddress(tt.in)
			if got != tt.want {
				t.Errorf("ToTileAddress(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for x := -2 * OvermapRegionSize; x <= 2*OvermapRegionSize; x += 7 {
		p := Pt(x, -x+3)
		got := ToTileAddress(p).AbsolutePosition()
		if got != p {
			t.Fatalf("round trip of %v = %v", p, got)
		}
	}

	for _, x := range []int{-4321, -4320, -4319, -769, -768, -767, -25, -24, -13, -12, -11, -1, 0, 1, 11, 12, 23, 24, 767, 768, 4319, 4320} {
		p := Pt(x, x)
		addr := ToTileAddress(p)
		if addr.SubmapIdx.X < 0 || addr.SubmapIdx.X > 1 {
			t.Errorf("submap index of %v out of range: %v", p, addr.SubmapIdx)
		}
		if addr.RelPosInSubmap.X < 0 || addr.RelPosInSubmap.X >= SubmapSize {
			t.Errorf("relative position of %v out of range: %v", p, addr.RelPosInSubmap)
		}
		if got := addr.AbsolutePosition(); got != p {
			t.Errorf("round trip of %v = %v", p, got)
		}
	}
}

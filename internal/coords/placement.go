package coords

// PlayerPlacement holds the values the main save uses to locate the player.
//
// The game keeps a (2*RealityBubbleRadius+1) square of tiles loaded around
// the player; that square's top left corner is snapped to a submap boundary
// and anchors the save's "lev" values.
type PlayerPlacement struct {
	Abspos        Point
	OvermapRegion Point // om_x, om_y
	SavegameLev   Point // levx, levy in submap units within the region (x2 per overmap tile)
	SavegamePos   Point // player.posx, player.posy relative to the bubble corner
}

// NewPlayerPlacement derives the save coordinates for a player standing at
// the given absolute tile position.
func NewPlayerPlacement(abspos Point) PlayerPlacement {
	radius := Point{RealityBubbleRadius, RealityBubbleRadius}

	minusBubble := ToTileAddress(abspos.Sub(radius))
	topLeft := ToTileAddress(abspos.Sub(radius).Sub(minusBubble.RelPosInSubmap))

	return PlayerPlacement{
		Abspos:        abspos,
		OvermapRegion: topLeft.OvermapRegion,
		SavegameLev: Point{
			FloorMod(topLeft.OvermapTile.X*2, SubmapsPerRegion) + topLeft.SubmapIdx.X,
			FloorMod(topLeft.OvermapTile.Y*2, SubmapsPerRegion) + topLeft.SubmapIdx.Y,
		},
		SavegamePos: radius.Add(minusBubble.RelPosInSubmap),
	}
}

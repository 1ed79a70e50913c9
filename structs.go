package cddaosm

import (
	"image"
	"image/color"
	"math"

	"github.com/unixpickle/model3d/model2d"
)

const (
	// sidewalks are drawn under their road this much wider than it
	sidewalkWidthFactor = 1.5

	defaultRoadWidth  = 8.0 // metres
	defaultRiverWidth = 4.0 // metres

	// buildingWallWidth is in pixels
	buildingWallWidth = 1.0
)

var (
	// https://wiki.openstreetmap.org/wiki/Key:highway
	roadWidths = map[string]float64{
		"motorway":      14,
		"motorway_link": 12,
		"trunk":         12,
		"trunk_link":    10,
		"primary":       9,
		"secondary":     7,
		"tertiary":      6,
		"tertiary_link": 4,
		"unclassified":  6,
		"residential":   6,
		"living_street": 6,
		"service":       5,
		"construction":  5,
		"track":         4,
		"pedestrian":    4,
		"cycleway":      4,
		"path":          4,
		"footway":       3,
		"steps":         2,
	}

	roadTypesWithSidewalk = map[string]bool{
		"secondary":     true,
		"tertiary":      true,
		"residential":   true,
		"living_street": true,
		"road":          true,
		"rest_area":     true,
		"service":       true,
	}

	// roads that show on the world map as roads
	overmapRoadTypes = map[string]bool{
		"motorway":      true,
		"motorway_link": true,
		"trunk":         true,
		"trunk_link":    true,
		"primary":       true,
		"secondary":     true,
		"tertiary":      true,
		"residential":   true,
		"living_street": true,
	}

	// roads that show on the world map as forest trails
	overmapTrailTypes = map[string]bool{
		"track":        true,
		"path":         true,
		"cycleway":     true,
		"construction": true,
	}

	// https://wiki.openstreetmap.org/wiki/Key:waterway
	riverWidths = map[string]float64{
		"river":         50,
		"riverbank":     5,
		"stream":        8,
		"tidal_channel": 6,
		"wadi":          3,
		"drystream":     2,
		"canal":         6,
		"pressurised":   2,
		"ditch":         3,
		"drain":         2,
		"fairway":       3,
		"fish_pass":     2,
		"dock":          0,
		"boatyard":      0,
	}
)

// Polygon is an ordered list of points in pixel space.
// Outer is false for the holes of a multipolygon.
type Polygon struct {
	Points []model2d.Coord
	Outer  bool
}

// Scale returns a copy of the polygon with every point multiplied by s
func (p Polygon) Scale(s float64) Polygon {
	pts := make([]model2d.Coord, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.Scale(s)
	}
	return Polygon{Points: pts, Outer: p.Outer}
}

// Coastline is a line with land on its left and sea on its right
// (when walking along it in pixel space, y pointing down).
type Coastline struct {
	Polygons []Polygon
}

// LandArea is a land use area, eg. farmland or a residential zone
type LandArea struct {
	Type     string
	Polygons []Polygon
}

// Visible returns if the land use is drawn at all
func (l *LandArea) Visible() bool {
	_, ok := landuseColours[l.Type]
	return ok
}

// Colour is the fill colour of the land use
func (l *LandArea) Colour() color.RGBA {
	col, ok := landuseColours[l.Type]
	if !ok {
		return LandAreaColour
	}
	return col
}

// River is a waterway drawn as a line
type River struct {
	Type     string
	Polygons []Polygon
}

// Width in metres
func (r *River) Width() float64 {
	w, ok := riverWidths[r.Type]
	if !ok {
		return defaultRiverWidth
	}
	return w
}

// Road is a highway of some kind, drawn as a line
type Road struct {
	Type     string
	Polygons []Polygon
}

// Width in metres
func (r *Road) Width() float64 {
	w, ok := roadWidths[r.Type]
	if !ok {
		return defaultRoadWidth
	}
	return w
}

// HasSidewalk returns if the road is drawn with a sidewalk either side
func (r *Road) HasSidewalk() bool {
	return roadTypesWithSidewalk[r.Type]
}

// Colour of the road surface, false if the road is not drawn
func (r *Road) Colour() (color.RGBA, bool) {
	col, ok := roadColours[r.Type]
	return col, ok
}

// IsDirt returns if the road surface is dirt (drawn before paved roads)
func (r *Road) IsDirt() bool {
	col, ok := r.Colour()
	return ok && col == DirtFloorColour
}

// segmentWidths returns the pixel width of each segment of polygon.
// Diagonal segments are widened (up to sqrt(2) at 45 degrees) so a vehicle
// driving diagonally in game still fits.
func segmentWidths(p Polygon, metres, pixelsPerMetre float64) []float64 {
	if len(p.Points) < 2 {
		return nil
	}
	widths := make([]float64, len(p.Points)-1)
	for i := range widths {
		d := p.Points[i+1].Sub(p.Points[i])
		angle := math.Atan2(d.Y, d.X)
		factor := 1 + (math.Sqrt2-1)*(1-math.Cos(4*angle))/2
		widths[i] = pixelsPerMetre * metres * factor
	}
	return widths
}

// Building is a building footprint
type Building struct {
	Type     string
	Polygons []Polygon
}

// MapElements is everything that is drawn onto the map
type MapElements struct {
	Coastlines []*Coastline
	LandAreas  []*LandArea
	Rivers     []*River
	Roads      []*Road
	Buildings  []*Building
}

// CoastlineArea is one connected region of background pixels found while
// resolving coastlines, with the count of coastline pixels bordering it.
type CoastlineArea struct {
	Seed                      image.Point
	AdjacentLandBorderPixels  int
	AdjacentWaterBorderPixels int
}

// IsWater returns if more of the area's border is sea side than land side.
// A tie is land.
func (c *CoastlineArea) IsWater() bool {
	return c.AdjacentWaterBorderPixels > c.AdjacentLandBorderPixels
}

package cddaosm

import (
	"encoding/json"
	"image"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// Features is a MapProvider backed by a JSON document of map elements
// already projected into pixel space.
//
//	{
//	  "pixels_per_metre": 1,
//	  "width": 480, "height": 480,
//	  "coastlines": [{"polygons": [{"points": [[0, 10], [480, 10]]}]}],
//	  "land_areas": [{"type": "forest", "polygons": [{"points": [...], "outer": true}]}],
//	  "rivers": [...], "roads": [{"type": "residential", "polygons": [...]}],
//	  "buildings": [...]
//	}
type Features struct {
	PPM        float64          `json:"pixels_per_metre"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Coastlines []featureElement `json:"coastlines"`
	LandAreas  []featureElement `json:"land_areas"`
	Rivers     []featureElement `json:"rivers"`
	Roads      []featureElement `json:"roads"`
	Buildings  []featureElement `json:"buildings"`
}

type featureElement struct {
	Type     string           `json:"type"`
	Polygons []featurePolygon `json:"polygons"`
}

type featurePolygon struct {
	Points [][2]float64 `json:"points"`
	Outer  *bool        `json:"outer"`
}

// LoadFeatures reads a features document from disk
func LoadFeatures(fpath string) (*Features, error) {
	raw, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read features %s", fpath)
	}
	f, err := ParseFeatures(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", fpath)
	}
	return f, nil
}

// ParseFeatures decodes a features document
func ParseFeatures(raw []byte) (*Features, error) {
	f := &Features{}
	if err := json.Unmarshal(raw, f); err != nil {
		return nil, errors.Wrap(err, "failed to parse features")
	}
	if f.PPM <= 0 {
		f.PPM = 1
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, errors.Errorf("invalid map size %dx%d", f.Width, f.Height)
	}
	return f, nil
}

// PixelsPerMetre implements MapProvider
func (f *Features) PixelsPerMetre() float64 {
	return f.PPM
}

// MapSize implements MapProvider
func (f *Features) MapSize() image.Point {
	return image.Pt(f.Width, f.Height)
}

// MapElements implements MapProvider
func (f *Features) MapElements() (*MapElements, error) {
	me := &MapElements{
		Coastlines: []*Coastline{},
		LandAreas:  []*LandArea{},
		Rivers:     []*River{},
		Roads:      []*Road{},
		Buildings:  []*Building{},
	}
	for _, e := range f.Coastlines {
		me.Coastlines = append(me.Coastlines, &Coastline{Polygons: e.polygons()})
	}
	for _, e := range f.LandAreas {
		me.LandAreas = append(me.LandAreas, &LandArea{Type: e.Type, Polygons: e.polygons()})
	}
	for _, e := range f.Rivers {
		me.Rivers = append(me.Rivers, &River{Type: e.Type, Polygons: e.polygons()})
	}
	for _, e := range f.Roads {
		me.Roads = append(me.Roads, &Road{Type: e.Type, Polygons: e.polygons()})
	}
	for _, e := range f.Buildings {
		me.Buildings = append(me.Buildings, &Building{Type: e.Type, Polygons: e.polygons()})
	}
	return me, nil
}

// polygons converts to Polygon, rings are outer unless marked otherwise
func (e featureElement) polygons() []Polygon {
	out := make([]Polygon, 0, len(e.Polygons))
	for _, p := range e.Polygons {
		pts := make([]model2d.Coord, len(p.Points))
		for i, xy := range p.Points {
			pts[i] = model2d.Coord{X: xy[0], Y: xy[1]}
		}
		out = append(out, Polygon{Points: pts, Outer: p.Outer == nil || *p.Outer})
	}
	return out
}

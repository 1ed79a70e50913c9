package cddaosm

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/unixpickle/model3d/model2d"
	"github.com/voidshard/cddaosm/internal/canvas"
	"github.com/voidshard/cddaosm/internal/coords"
)

var (
	// ErrMapTooSmall implies the map doesn't cover a single overmap tile
	ErrMapTooSmall = fmt.Errorf("map is smaller than one overmap tile")
)

// Map holds the finished ground terrain & overmap of a drawn map.
//
// The map is drawn once, in NewMap, and never changes after; it's
// safe for concurrent reads.
type Map struct {
	cfg      *MapConfig
	provider MapProvider

	size        image.Point // in tiles, cropped to whole overmap tiles
	overmapSize image.Point // in overmap tiles

	// terrain holds an index into allTerrain per tile
	terrain []uint8
	overmap OvermapGrid

	// CoastlineAreas are the regions found while working out which side
	// of the coastline is sea
	CoastlineAreas []*CoastlineArea

	// scratch state, nil once drawn
	ground        *canvas.Canvas
	overmapGround *canvas.Canvas
}

// NewMap draws a map from the given provider
func NewMap(cfg *MapConfig, p MapProvider) (*Map, error) {
	if cfg == nil {
		cfg = &MapConfig{}
	}
	m := &Map{cfg: cfg, provider: p}
	return m, m.build()
}

// Size of the map in tiles
func (m *Map) Size() image.Point {
	return m.size
}

// OvermapSize of the map in overmap tiles
func (m *Map) OvermapSize() image.Point {
	return m.overmapSize
}

// Terrain returns the ground terrain at x,y (map pixels).
// Anything outside the map is Default.
func (m *Map) Terrain(x, y int) TerrainType {
	if x < 0 || y < 0 || x >= m.size.X || y >= m.size.Y {
		m.cfg.Log.WithFields(logrus.Fields{"x": x, "y": y, "size": m.size}).Warn("terrain requested outside of map")
		return Default
	}
	return allTerrain[m.terrain[y*m.size.X+x]]
}

// OvermapTerrain returns the overmap terrain at x,y (overmap tiles).
// Anything outside the map is OvermapDefault.
func (m *Map) OvermapTerrain(x, y int) OvermapTerrainType {
	return m.overmap.At(x, y)
}

// build draws everything. Order of the functions is important as later
// layers paint over earlier ones.
func (m *Map) build() error {
	m.cfg.init()

	full := m.provider.MapSize()
	m.overmapSize = image.Pt(full.X/coords.OvermapTileSize, full.Y/coords.OvermapTileSize)
	m.size = m.overmapSize.Mul(coords.OvermapTileSize)
	if m.overmapSize.X < 1 || m.overmapSize.Y < 1 {
		return ErrMapTooSmall
	}
	if m.size != full {
		m.cfg.Log.WithFields(logrus.Fields{"given": full, "used": m.size}).Warn("map size is not a multiple of the overmap tile size, cropping")
	}

	elements, err := m.provider.MapElements()
	if err != nil {
		return errors.Wrap(err, "failed to read map elements")
	}

	m.ground = canvas.New(m.size.X, m.size.Y, BackgroundColour)
	m.overmapGround = canvas.New(m.overmapSize.X, m.overmapSize.Y, BackgroundColour)
	m.overmap = NewOvermapGrid(m.overmapSize.X, m.overmapSize.Y)

	m.cfg.Log.WithFields(logrus.Fields{
		"size":       m.size,
		"coastlines": len(elements.Coastlines),
		"landareas":  len(elements.LandAreas),
		"rivers":     len(elements.Rivers),
		"roads":      len(elements.Roads),
		"buildings":  len(elements.Buildings),
	}).Info("drawing map")

	m.overmap, m.CoastlineAreas = ResolveCoastlines(m.ground, m.overmap, elements.Coastlines)

	for _, la := range elements.LandAreas {
		if !la.Visible() {
			continue
		}
		m.ground.FillPolygons(m.rings(la.Polygons, 1), la.Colour())
	}

	for _, r := range elements.Rivers {
		width := r.Width() * m.provider.PixelsPerMetre()
		for _, p := range r.Polygons {
			m.ground.StrokePath(p.Points, width, DeepWaterColour)
		}
	}

	m.addRoads(elements.Roads)
	m.overmap = ResolveOvermapRoads(m.overmap, elements.Roads)

	m.addBuildings(elements.Buildings)

	return m.freeze()
}

// addRoads draws dirt roads then everything else over them, each
// narrowest first with sidewalks underneath.
func (m *Map) addRoads(roads []*Road) {
	dirt, paved := []*Road{}, []*Road{}
	for _, r := range roads {
		if _, ok := r.Colour(); !ok {
			continue
		}
		if r.IsDirt() {
			dirt = append(dirt, r)
		} else {
			paved = append(paved, r)
		}
	}

	ppm := m.provider.PixelsPerMetre()
	for _, group := range [][]*Road{dirt, paved} {
		sortRoadsByWidth(group)

		for _, r := range group {
			if !r.HasSidewalk() {
				continue
			}
			for _, p := range r.Polygons {
				m.ground.StrokeSegments(p.Points, segmentWidths(p, r.Width()*sidewalkWidthFactor, ppm), SidewalkColour)
			}
		}

		for _, r := range group {
			col, _ := r.Colour()
			for _, p := range r.Polygons {
				m.ground.StrokeSegments(p.Points, segmentWidths(p, r.Width(), ppm), col)
			}
		}
	}
}

// addBuildings draws building floors & walls, and marks overmap tiles
// mostly covered by buildings as houses.
func (m *Map) addBuildings(buildings []*Building) {
	for _, b := range buildings {
		m.ground.FillPolygons(m.rings(b.Polygons, 1), FloorColour)
		for _, p := range b.Polygons {
			m.ground.StrokePath(closed(p.Points), buildingWallWidth, WallColour)
		}
		m.overmapGround.FillPolygons(m.rings(b.Polygons, 1.0/coords.OvermapTileSize), FloorColour)
	}

	for y := 0; y < m.overmapSize.Y; y++ {
		for x := 0; x < m.overmapSize.X; x++ {
			if m.overmap.At(x, y) != OvermapDefault {
				continue
			}
			if m.overmapGround.At(x, y) == FloorColour {
				m.overmap.Set(x, y, HouseDefault)
			}
		}
	}
}

// freeze classifies every pixel & drops the drawing state. Colours don't
// leave the Map.
func (m *Map) freeze() error {
	if m.cfg.ImagePath != "" {
		if err := m.ground.SavePNG(m.cfg.ImagePath); err != nil {
			return errors.Wrapf(err, "failed to write map image %s", m.cfg.ImagePath)
		}
	}
	if m.cfg.OvermapImagePath != "" {
		if err := m.overmapGround.SavePNG(m.cfg.OvermapImagePath); err != nil {
			return errors.Wrapf(err, "failed to write overmap image %s", m.cfg.OvermapImagePath)
		}
	}

	index := map[TerrainType]uint8{}
	for i, t := range allTerrain {
		index[t] = uint8(i)
	}

	im := m.ground.Snapshot()
	m.ground = nil
	m.overmapGround = nil

	cache := map[color.RGBA]uint8{}
	m.terrain = make([]uint8, m.size.X*m.size.Y)
	for y := 0; y < m.size.Y; y++ {
		for x := 0; x < m.size.X; x++ {
			col := im.RGBAAt(x, y)
			idx, ok := cache[col]
			if !ok {
				idx = index[Classify(col)]
				cache[col] = idx
			}
			m.terrain[y*m.size.X+x] = idx
		}
	}
	return nil
}

// rings returns the points of every polygon with at least three points,
// scaled by s
func (m *Map) rings(polys []Polygon, s float64) [][]model2d.Coord {
	out := make([][]model2d.Coord, 0, len(polys))
	for _, p := range polys {
		if len(p.Points) < 3 {
			m.cfg.Log.WithField("points", len(p.Points)).Debug("skipping degenerate polygon")
			continue
		}
		if s != 1 {
			p = p.Scale(s)
		}
		out = append(out, p.Points)
	}
	return out
}

// closed returns pts with the first point appended if the ring isn't
// already closed
func closed(pts []model2d.Coord) []model2d.Coord {
	if len(pts) < 2 || pts[0] == pts[len(pts)-1] {
		return pts
	}
	return append(append([]model2d.Coord{}, pts...), pts[0])
}

// sortRoadsByWidth sorts roads narrowest first, keeping input order for
// roads of the same width
func sortRoadsByWidth(in []*Road) {
	sort.SliceStable(in, func(a, b int) bool {
		return in[a].Width() < in[b].Width()
	})
}

package cddaosm

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/unixpickle/essentials"
	"github.com/voidshard/cddaosm/internal/coords"
	"golang.org/x/sync/errgroup"
)

const (
	// SaveVersion is the save format version we write
	SaveVersion = 33

	mainSaveExt   = ".sav"
	mapMemoryExt  = ".mm"
	segmentsDir   = "maps"
	submapFileExt = ".map"
)

var (
	// ErrNoMainSave implies the save folder holds no main save (*.sav)
	ErrNoMainSave = fmt.Errorf("no main save file found")

	// ErrSpawnOutsideMap implies the given spawn isn't on the map
	ErrSpawnOutsideMap = fmt.Errorf("spawn point is outside of the map")
)

// Generator writes a drawn Map into an existing save.
type Generator struct {
	cfg *SaveConfig
	m   *Map

	saveID string

	// absolute tile positions of the map's corners (inclusive)
	topLeft     coords.TileAddress
	bottomRight coords.TileAddress

	player  coords.PlayerPlacement
	spawner *monsterSpawner
}

// NewGenerator readies a Generator to write m into the save at
// cfg.SavePath.
func NewGenerator(cfg *SaveConfig, m *Map) (*Generator, error) {
	if cfg == nil {
		cfg = &SaveConfig{}
	}
	cfg.init()

	g := &Generator{cfg: cfg, m: m}

	id, err := findSaveID(cfg.SavePath)
	if err != nil {
		return nil, err
	}
	g.saveID = id

	size := m.Size()
	origin := mapOrigin(size)
	g.topLeft = coords.ToTileAddress(origin)
	g.bottomRight = coords.ToTileAddress(origin.Add(coords.Pt(size.X-1, size.Y-1)))

	spawn := image.Pt(size.X/2, size.Y/2)
	if cfg.Spawn != nil {
		spawn = *cfg.Spawn
	}
	if !spawn.In(image.Rect(0, 0, size.X, size.Y)) {
		return nil, errors.Wrapf(ErrSpawnOutsideMap, "spawn %v, map %v", spawn, size)
	}
	g.player = coords.NewPlayerPlacement(origin.Add(coords.Pt(spawn.X, spawn.Y)))

	if cfg.Monsters {
		g.spawner = newMonsterSpawner(cfg.MonsterSpawnRate, defaultMonsters, g.player.Abspos)
	}

	return g, nil
}

// SaveID is the name of the main save, less extension
func (g *Generator) SaveID() string {
	return g.saveID
}

// Origin returns the absolute tile position of the map's top left corner
func (g *Generator) Origin() coords.Point {
	return g.topLeft.Abspos
}

// Player returns where the player will be placed
func (g *Generator) Player() coords.PlayerPlacement {
	return g.player
}

// Generate writes the map into the save, replacing whatever map the save
// had.
func (g *Generator) Generate(ctx context.Context) error {
	log := g.cfg.Log.WithFields(logrus.Fields{
		"save":    g.cfg.SavePath,
		"id":      g.saveID,
		"origin":  g.topLeft.Abspos,
		"player":  g.player.Abspos,
		"workers": g.cfg.Workers,
	})

	log.Info("clearing old map")
	if err := g.clearSave(); err != nil {
		return err
	}

	log.Info("writing segments")
	if err := g.writeSegments(ctx); err != nil {
		return err
	}

	log.Info("writing overmap regions")
	if err := g.writeRegions(ctx); err != nil {
		return err
	}

	if err := g.writeMapMemory(); err != nil {
		return err
	}

	log.Info("updating main save")
	return g.writeMainSave()
}

// clearSave removes the segments folder & every overmap region / seen file
func (g *Generator) clearSave() error {
	segments := filepath.Join(g.cfg.SavePath, segmentsDir)
	if err := os.RemoveAll(segments); err != nil {
		return errors.Wrapf(err, "failed to remove %s", segments)
	}
	if err := os.MkdirAll(segments, 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s", segments)
	}

	entries, err := os.ReadDir(g.cfg.SavePath)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", g.cfg.SavePath)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !isRegionFile(e.Name()) && !isSeenFile(g.saveID, e.Name()) {
			continue
		}
		fpath := filepath.Join(g.cfg.SavePath, e.Name())
		if err := os.Remove(fpath); err != nil {
			return errors.Wrapf(err, "failed to remove %s", fpath)
		}
		g.cfg.Log.WithField("file", e.Name()).Debug("removed stale file")
	}

	return nil
}

// writeSegments writes every overmap tile file of the map, one segment
// folder per task.
func (g *Generator) writeSegments(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)

	from, to := g.topLeft.Segment, g.bottomRight.Segment
	for sx := from.X; sx <= to.X; sx++ {
		for sy := from.Y; sy <= to.Y; sy++ {
			segment := coords.Pt(sx, sy)
			eg.Go(func() error {
				return g.writeSegment(ctx, segment)
			})
		}
	}

	return eg.Wait()
}

// writeSegment writes the overmap tile files of one segment that fall on
// the map
func (g *Generator) writeSegment(ctx context.Context, segment coords.Point) error {
	dir := filepath.Join(g.cfg.SavePath, segmentsDir, fmt.Sprintf("%d.%d.0", segment.X, segment.Y))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	xfrom, xto := g.segmentTileRange(segment.X, g.topLeft.OvermapTile.X, g.bottomRight.OvermapTile.X)
	yfrom, yto := g.segmentTileRange(segment.Y, g.topLeft.OvermapTile.Y, g.bottomRight.OvermapTile.Y)

	written := 0
	for tx := xfrom; tx <= xto; tx++ {
		for ty := yfrom; ty <= yto; ty++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			tile := coords.Pt(tx, ty)
			local := tile.Sub(g.topLeft.OvermapTile)
			if g.m.OvermapTerrain(local.X, local.Y) == Water100Percent {
				continue // left for the game to fill in
			}

			if err := g.writeOvermapTileFile(dir, tile); err != nil {
				return err
			}
			written++
		}
	}

	g.cfg.Log.WithFields(logrus.Fields{"segment": segment, "files": written}).Debug("wrote segment")
	return nil
}

// segmentTileRange returns the first & last overmap tile (inclusive) of
// the given segment, clipped to the map's first & last overmap tiles
func (g *Generator) segmentTileRange(segment, first, last int) (int, int) {
	from := segment * coords.OvermapTilesPerSegment
	to := from + coords.OvermapTilesPerSegment - 1
	return essentials.MaxInt(from, first), essentials.MinInt(to, last)
}

// writeRegions writes the overmap & seen file of every overmap region the
// map touches
func (g *Generator) writeRegions(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)

	from, to := g.topLeft.OvermapRegion, g.bottomRight.OvermapRegion
	for rx := from.X; rx <= to.X; rx++ {
		for ry := from.Y; ry <= to.Y; ry++ {
			region := coords.Pt(rx, ry)
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := g.writeRegionFile(region); err != nil {
					return err
				}
				return g.writeSeenFile(region)
			})
		}
	}

	return eg.Wait()
}

// mapOrigin returns the absolute tile position to put the top left of a map
// of the given size at, so the map sits across the middle of the regions it
// needs. Both axes are worked out from the map width.
func mapOrigin(size image.Point) coords.Point {
	units := size.X / coords.OvermapTileSize
	regions := (size.X + coords.OvermapRegionSize - 1) / coords.OvermapRegionSize
	centre := (regions / 2) * coords.OvermapRegionSize

	var v int
	if units%2 == 0 {
		v = centre - size.X/2
	} else {
		v = centre - coords.OvermapTileSize*(units-1)/2
	}
	return coords.Pt(v, v)
}

// findSaveID returns the name (less extension) of the first main save in
// dir, by name
func findSaveID(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+mainSaveExt))
	if err != nil {
		return "", errors.Wrapf(err, "failed to search %s", dir)
	}
	sort.Strings(matches)
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		return strings.TrimSuffix(filepath.Base(m), mainSaveExt), nil
	}
	return "", errors.Wrapf(ErrNoMainSave, "in %s", dir)
}

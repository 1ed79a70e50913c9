package cddaosm

import (
	"image"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/voidshard/cddaosm/internal/logger"
)

const (
	// DefaultMonsterSpawnRate is the chance of any given outdoor tile
	// holding a monster
	DefaultMonsterSpawnRate = 0.004
)

// MapConfig outlines settings for drawing the map.
type MapConfig struct {
	// ImagePath if set the finished ground raster is written here as a PNG.
	// Handy for checking what the map will look like in game.
	ImagePath string

	// OvermapImagePath if set the building footprints drawn at overmap
	// scale are written here as a PNG.
	OvermapImagePath string

	// Log to write progress & warnings to. logger.Log if not set.
	Log logrus.FieldLogger
}

// init fills in defaults
func (c *MapConfig) init() {
	if c.Log == nil {
		c.Log = logger.Log
	}
}

// SaveConfig holds configuration for writing a map into a save.
type SaveConfig struct {
	// SavePath is the folder of the save (world) to write into,
	// eg. <game>/save/<world>. Required.
	// The folder must already hold a main save (*.sav): the game
	// needs to have created the world & character before we can
	// replace the map.
	SavePath string

	// Spawn is where the player starts, in map pixels.
	// Centre of the map if not given.
	Spawn *image.Point

	// Seed for rng (random number chosen if not set)
	Seed int64

	// Workers is the number of map segments written at once.
	// runtime.NumCPU() if 0 or less.
	Workers int

	// Monsters enables spawning monsters across the map.
	Monsters bool

	// MonsterSpawnRate chance of a monster on any outdoor tile.
	// DefaultMonsterSpawnRate if 0 or less.
	MonsterSpawnRate float64

	// Log to write progress & warnings to. logger.Log if not set.
	Log logrus.FieldLogger
}

// init fills in defaults
func (c *SaveConfig) init() {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}
	if c.MonsterSpawnRate <= 0 {
		c.MonsterSpawnRate = DefaultMonsterSpawnRate
	}
	if c.Log == nil {
		c.Log = logger.Log
	}
}

package cddaosm

import (
	"math/rand"

	"github.com/voidshard/cddaosm/internal/coords"
)

// monsterWeight is how often a monster turns up relative to the others
type monsterWeight struct {
	ID     string
	Weight float64
}

var (
	defaultMonsters = []monsterWeight{
		{"mon_zombie", 30},
		{"mon_zombie_child", 10},
		{"mon_zombie_tough", 5},
		{"mon_zombie_fat", 5},
		{"mon_zombie_rot", 5},
		{"mon_zombie_runner", 10},
		{"mon_feral_human_pipe", 2},
		{"mon_feral_human_crowbar", 2},
		{"mon_feral_human_axe", 2},
		{"mon_zombie_crawler", 5},
		{"mon_zombie_brainless", 5},
		{"mon_zombie_dog", 5},
	}

	// monsters only spawn outdoors on ground they can walk on
	monsterTerrain = map[TerrainType]bool{
		Default:       true,
		Grass:         true,
		GrassLong:     true,
		Pavement:      true,
		Sidewalk:      true,
		DirtFloor:     true,
		ConcreteFloor: true,
	}
)

// monsterThreshold is the chance (summed with those before it) of a
// tile rolling a given monster
type monsterThreshold struct {
	ID     string
	Chance float64
}

// monsterSpawner decides which tiles of the map get a monster.
// It holds no rng of its own; callers pass one in so parallel writers can
// each keep their own.
type monsterSpawner struct {
	thresholds []monsterThreshold
	player     coords.Point // absolute tile the player starts on
}

// newMonsterSpawner splits rate between the monsters by weight
func newMonsterSpawner(rate float64, monsters []monsterWeight, player coords.Point) *monsterSpawner {
	total := 0.0
	for _, m := range monsters {
		total += m.Weight
	}

	s := &monsterSpawner{player: player, thresholds: []monsterThreshold{}}
	if total <= 0 {
		return s
	}

	sofar := 0.0
	for _, m := range monsters {
		sofar += rate * m.Weight / total
		s.thresholds = append(s.thresholds, monsterThreshold{ID: m.ID, Chance: sofar})
	}
	return s
}

// roll returns a monster id, or "" for no monster
func (s *monsterSpawner) roll(rng *rand.Rand) string {
	rv := rng.Float64()
	for _, t := range s.thresholds {
		if t.Chance > rv {
			return t.ID
		}
	}
	return ""
}

// spawn returns a spawn entry for the tile at abspos, or nil if nothing
// spawns there. relPos is the tile's position within its submap.
func (s *monsterSpawner) spawn(rng *rand.Rand, t TerrainType, abspos, relPos coords.Point) []interface{} {
	if !monsterTerrain[t] || abspos == s.player {
		return nil
	}
	id := s.roll(rng)
	if id == "" {
		return nil
	}
	// monster, count, posx, posy, faction, mission, friendly, name
	return []interface{}{id, 1, relPos.X, relPos.Y, -1, -1, false, "NONE"}
}

// tileRng returns the rng used for monsters in the given overmap tile file.
// The seed depends only on seed & the tile so output doesn't depend on the
// order tiles are written in.
func tileRng(seed int64, overmapTile coords.Point) *rand.Rand {
	h := seed
	h = h*31 + int64(overmapTile.X)
	h = h*31 + int64(overmapTile.Y)
	return rand.New(rand.NewSource(h))
}

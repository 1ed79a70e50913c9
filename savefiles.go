package cddaosm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
	"github.com/voidshard/cddaosm/internal/coords"
	"github.com/voidshard/cddaosm/internal/rle"
)

const (
	regionLayersBelow = 10
	regionLayersAbove = 10
	regionLayers      = regionLayersBelow + 1 + regionLayersAbove

	regionID   = "default"
	rockTile   = "empty_rock"
	openAir    = "open_air"
	submapTemp = 0
)

var (
	saveHeader = []byte(fmt.Sprintf("# version %d\n", SaveVersion))

	regionFileRegex = regexp.MustCompile(`^o\.-?\d+\.-?\d+$`)
	seenSuffixRegex = regexp.MustCompile(`^\.seen\.-?\d+\.-?\d+$`)
)

// submap is one 12x12 block of tiles, four to an overmap tile file
type submap struct {
	Version              int             `json:"version"`
	Coordinates          [3]int          `json:"coordinates"`
	TurnLastTouched      int             `json:"turn_last_touched"`
	Temperature          int             `json:"temperature"`
	Terrain              []interface{}   `json:"terrain"`
	Radiation            [2]int          `json:"radiation"`
	Furniture            []interface{}   `json:"furniture"`
	Items                []interface{}   `json:"items"`
	Traps                []interface{}   `json:"traps"`
	Fields               []interface{}   `json:"fields"`
	Cosmetics            []interface{}   `json:"cosmetics"`
	Spawns               [][]interface{} `json:"spawns"`
	Vehicles             []interface{}   `json:"vehicles"`
	PartialConstructions []interface{}   `json:"partial_constructions"`
}

// overmapRegion is the world map of one region
type overmapRegion struct {
	Layers                   [][]interface{}   `json:"layers"`
	RegionID                 string            `json:"region_id"`
	MonsterGroups            []interface{}     `json:"monster_groups"`
	Cities                   []interface{}     `json:"cities"`
	ConnectionsOut           map[string]string `json:"connections_out"`
	Radios                   []interface{}     `json:"radios"`
	MonsterMap               []interface{}     `json:"monster_map"`
	TrackedVehicles          []interface{}     `json:"tracked_vehicles"`
	ScentTraces              []interface{}     `json:"scent_traces"`
	NPCs                     []interface{}     `json:"npcs"`
	Camps                    []interface{}     `json:"camps"`
	OvermapSpecialPlacements []interface{}     `json:"overmap_special_placements"`
}

// overmapSeen is what the player has seen of one region (nothing)
type overmapSeen struct {
	Visible  [][]interface{} `json:"visible"`
	Explored [][]interface{} `json:"explored"`
	Notes    [][]interface{} `json:"notes"`
	Extras   [][]interface{} `json:"extras"`
}

func empty() []interface{} {
	return []interface{}{}
}

// isRegionFile returns if name is an overmap region file (o.X.Y)
func isRegionFile(name string) bool {
	return regionFileRegex.MatchString(name)
}

// isSeenFile returns if name is a seen file (<id>.seen.X.Y) of the save id
func isSeenFile(id, name string) bool {
	if len(name) <= len(id) || name[:len(id)] != id {
		return false
	}
	return seenSuffixRegex.MatchString(name[len(id):])
}

// writeOvermapTileFile writes the four submaps of an overmap tile into
// dir/<x>.<y>.0.map
func (g *Generator) writeOvermapTileFile(dir string, tile coords.Point) error {
	var rng *rand.Rand
	if g.spawner != nil {
		rng = tileRng(g.cfg.Seed, tile)
	}

	submaps := make([]*submap, 0, 4)
	for ix := 0; ix < 2; ix++ {
		for iy := 0; iy < 2; iy++ {
			submaps = append(submaps, g.submap(tile, coords.Pt(ix, iy), rng))
		}
	}

	fpath := filepath.Join(dir, fmt.Sprintf("%d.%d.0%s", tile.X, tile.Y, submapFileExt))
	return writeJSON(fpath, false, submaps)
}

// submap builds the submap idx (0-1, 0-1) of the given overmap tile
func (g *Generator) submap(tile, idx coords.Point, rng *rand.Rand) *submap {
	symbols := make([]string, 0, coords.SubmapSize*coords.SubmapSize)
	spawns := [][]interface{}{}

	for y := 0; y < coords.SubmapSize; y++ {
		for x := 0; x < coords.SubmapSize; x++ {
			rel := coords.Pt(x, y)
			abs := coords.ToAbsolutePosition(tile, idx, rel)
			pixel := abs.Sub(g.topLeft.Abspos)

			t := g.m.Terrain(pixel.X, pixel.Y)
			symbols = append(symbols, t.GameID())

			if g.spawner == nil {
				continue
			}
			if spawn := g.spawner.spawn(rng, t, abs, rel); spawn != nil {
				spawns = append(spawns, spawn)
			}
		}
	}

	return &submap{
		Version:              SaveVersion,
		Coordinates:          [3]int{tile.X*2 + idx.X, tile.Y*2 + idx.Y, 0},
		TurnLastTouched:      1,
		Temperature:          submapTemp,
		Terrain:              rle.Encode(symbols, rle.ScalarWhenSingle),
		Radiation:            [2]int{0, coords.SubmapSize * coords.SubmapSize},
		Furniture:            empty(),
		Items:                empty(),
		Traps:                empty(),
		Fields:               empty(),
		Cosmetics:            empty(),
		Spawns:               spawns,
		Vehicles:             empty(),
		PartialConstructions: empty(),
	}
}

// writeRegionFile writes o.<x>.<y> for the given overmap region.
// Only the ground level holds anything; overmap tiles off the map are
// fields.
func (g *Generator) writeRegionFile(region coords.Point) error {
	origin := region.Mul(coords.OvermapTilesPerRegion).Sub(g.topLeft.OvermapTile)

	symbols := make([]string, 0, coords.OvermapRegionLayerSize)
	for y := 0; y < coords.OvermapTilesPerRegion; y++ {
		for x := 0; x < coords.OvermapTilesPerRegion; x++ {
			symbols = append(symbols, g.m.OvermapTerrain(origin.X+x, origin.Y+y).GameID())
		}
	}

	layers := make([][]interface{}, 0, regionLayers)
	for i := 0; i < regionLayersBelow; i++ {
		layers = append(layers, rle.Repeat(rockTile, coords.OvermapRegionLayerSize))
	}
	layers = append(layers, rle.Encode(symbols, rle.ArrayAlways))
	for i := 0; i < regionLayersAbove; i++ {
		layers = append(layers, rle.Repeat(openAir, coords.OvermapRegionLayerSize))
	}

	data := &overmapRegion{
		Layers:                   layers,
		RegionID:                 regionID,
		MonsterGroups:            empty(),
		Cities:                   empty(),
		ConnectionsOut:           map[string]string{},
		Radios:                   empty(),
		MonsterMap:               empty(),
		TrackedVehicles:          empty(),
		ScentTraces:              empty(),
		NPCs:                     empty(),
		Camps:                    empty(),
		OvermapSpecialPlacements: empty(),
	}

	fpath := filepath.Join(g.cfg.SavePath, fmt.Sprintf("o.%d.%d", region.X, region.Y))
	return writeJSON(fpath, true, data)
}

// writeSeenFile writes <id>.seen.<x>.<y> marking the whole region unseen
func (g *Generator) writeSeenFile(region coords.Point) error {
	unseen := rle.EncodeBools(make([]bool, coords.OvermapRegionLayerSize))

	data := &overmapSeen{}
	for i := 0; i < regionLayers; i++ {
		data.Visible = append(data.Visible, unseen)
		data.Explored = append(data.Explored, unseen)
		data.Notes = append(data.Notes, empty())
		data.Extras = append(data.Extras, empty())
	}

	fpath := filepath.Join(g.cfg.SavePath, fmt.Sprintf("%s.seen.%d.%d", g.saveID, region.X, region.Y))
	return writeJSON(fpath, true, data)
}

// writeMapMemory writes an empty <id>.mm
func (g *Generator) writeMapMemory() error {
	fpath := filepath.Join(g.cfg.SavePath, g.saveID+mapMemoryExt)
	return writeJSON(fpath, false, [][]interface{}{empty(), empty()})
}

// writeMainSave moves the player to the spawn point & clears out any
// monsters the save remembers. Everything else is kept as is.
func (g *Generator) writeMainSave() error {
	fpath := filepath.Join(g.cfg.SavePath, g.saveID+mainSaveExt)

	data, err := readMainSave(fpath)
	if err != nil {
		return err
	}

	player := map[string]json.RawMessage{}
	if raw, ok := data["player"]; ok {
		if err := json.Unmarshal(raw, &player); err != nil {
			return errors.Wrapf(err, "failed to parse player in %s", fpath)
		}
	}

	set := func(m map[string]json.RawMessage, key string, v interface{}) error {
		raw, err := marshalJSON(v)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s", key)
		}
		m[key] = raw
		return nil
	}

	p := g.player
	for _, kv := range []struct {
		m   map[string]json.RawMessage
		key string
		v   interface{}
	}{
		{player, "posx", p.SavegamePos.X},
		{player, "posy", p.SavegamePos.Y},
		{data, "om_x", p.OvermapRegion.X},
		{data, "om_y", p.OvermapRegion.Y},
		{data, "levx", p.SavegameLev.X},
		{data, "levy", p.SavegameLev.Y},
		{data, "active_monsters", empty()},
		{data, "stair_monsters", empty()},
	} {
		if err := set(kv.m, kv.key, kv.v); err != nil {
			return err
		}
	}
	if err := set(data, "player", player); err != nil {
		return err
	}

	return writeJSON(fpath, true, data)
}

// readMainSave reads the main save, skipping the version header line
func readMainSave(fpath string) (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", fpath)
	}

	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[i+1:]
	} else {
		raw = nil
	}

	data := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", fpath)
	}
	return data, nil
}

// marshalJSON encodes v without HTML escaping, so strings such as
// "<color_red>" in a save survive a rewrite untouched.
func marshalJSON(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeJSON writes v to fpath, optionally with the version header first
func writeJSON(fpath string, header bool, v interface{}) error {
	body, err := marshalJSON(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", fpath)
	}

	buf := bytes.NewBuffer(make([]byte, 0, len(saveHeader)+len(body)))
	if header {
		buf.Write(saveHeader)
	}
	buf.Write(body)

	if err := os.WriteFile(fpath, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", fpath)
	}
	return nil
}

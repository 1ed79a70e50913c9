package cddaosm

// TerrainType is what a single ground tile is made of, as decided by the
// colour of its pixel in the ground raster.
type TerrainType string

const (
	Default         TerrainType = "default"           // nothing drawn here; open grass
	DeepMovingWater TerrainType = "deep_moving_water" // sea, lakes, rivers
	Pavement        TerrainType = "pavement"          // tarmac roads
	Wall            TerrainType = "wall"              // building outlines
	HouseFloor      TerrainType = "house_floor"       // building interiors
	ConcreteFloor   TerrainType = "concrete_floor"    // pedestrian areas, steps
	DirtFloor       TerrainType = "dirt_floor"        // tracks, farmland, construction sites
	Grass           TerrainType = "grass"             // greenfield
	GrassLong       TerrainType = "grass_long"        // overgrown land
	Sidewalk        TerrainType = "sidewalk"          // strips either side of town roads
)

var (
	allTerrain = []TerrainType{
		Default, DeepMovingWater, Pavement, Wall, HouseFloor,
		ConcreteFloor, DirtFloor, Grass, GrassLong, Sidewalk,
	}

	terrainGameIDs = map[TerrainType]string{
		Default:         "t_grass",
		DeepMovingWater: "t_water_moving_dp",
		Pavement:        "t_pavement",
		ConcreteFloor:   "t_concrete",
		DirtFloor:       "t_dirt",
		Wall:            "t_concrete_wall",
		HouseFloor:      "t_thconc_floor",
		Grass:           "t_grass",
		GrassLong:       "t_grass_long",
		Sidewalk:        "t_sidewalk",
	}
)

// GameID returns the game's terrain id for the tile type.
// Unknown types are treated as Default.
func (t TerrainType) GameID() string {
	id, ok := terrainGameIDs[t]
	if !ok {
		return terrainGameIDs[Default]
	}
	return id
}

// OvermapTerrainType is what a whole overmap tile (24x24 ground tiles)
// shows on the game's world map.
type OvermapTerrainType string

const (
	OvermapDefault  OvermapTerrainType = "default"
	Water           OvermapTerrainType = "water"     // at least half water, still written out in detail
	Water100Percent OvermapTerrainType = "water_100" // entirely water, detail left to the game
	HouseDefault    OvermapTerrainType = "house"

	RoadNorth              OvermapTerrainType = "road_n"
	RoadSouth              OvermapTerrainType = "road_s"
	RoadNorthSouth         OvermapTerrainType = "road_ns"
	RoadEast               OvermapTerrainType = "road_e"
	RoadNorthEast          OvermapTerrainType = "road_ne"
	RoadEastSouth          OvermapTerrainType = "road_es"
	RoadNorthEastSouth     OvermapTerrainType = "road_nes"
	RoadWest               OvermapTerrainType = "road_w"
	RoadWestNorth          OvermapTerrainType = "road_wn"
	RoadSouthWest          OvermapTerrainType = "road_sw"
	RoadNorthSouthWest     OvermapTerrainType = "road_nsw"
	RoadEastWest           OvermapTerrainType = "road_ew"
	RoadNorthEastWest      OvermapTerrainType = "road_new"
	RoadEastSouthWest      OvermapTerrainType = "road_esw"
	RoadNorthEastSouthWest OvermapTerrainType = "road_nesw"

	TrailNorth              OvermapTerrainType = "trail_n"
	TrailSouth              OvermapTerrainType = "trail_s"
	TrailNorthSouth         OvermapTerrainType = "trail_ns"
	TrailEast               OvermapTerrainType = "trail_e"
	TrailNorthEast          OvermapTerrainType = "trail_ne"
	TrailEastSouth          OvermapTerrainType = "trail_es"
	TrailNorthEastSouth     OvermapTerrainType = "trail_nes"
	TrailWest               OvermapTerrainType = "trail_w"
	TrailWestNorth          OvermapTerrainType = "trail_wn"
	TrailSouthWest          OvermapTerrainType = "trail_sw"
	TrailNorthSouthWest     OvermapTerrainType = "trail_nsw"
	TrailEastWest           OvermapTerrainType = "trail_ew"
	TrailNorthEastWest      OvermapTerrainType = "trail_new"
	TrailEastSouthWest      OvermapTerrainType = "trail_esw"
	TrailNorthEastSouthWest OvermapTerrainType = "trail_nesw"
)

var (
	// indexed by connection mask north | south<<1 | east<<2 | west<<3.
	// Mask 0 has no road.
	roadsByMask = [16]OvermapTerrainType{
		"",
		RoadNorth, RoadSouth, RoadNorthSouth,
		RoadEast, RoadNorthEast, RoadEastSouth, RoadNorthEastSouth,
		RoadWest, RoadWestNorth, RoadSouthWest, RoadNorthSouthWest,
		RoadEastWest, RoadNorthEastWest, RoadEastSouthWest, RoadNorthEastSouthWest,
	}

	trailsByMask = [16]OvermapTerrainType{
		"",
		TrailNorth, TrailSouth, TrailNorthSouth,
		TrailEast, TrailNorthEast, TrailEastSouth, TrailNorthEastSouth,
		TrailWest, TrailWestNorth, TrailSouthWest, TrailNorthSouthWest,
		TrailEastWest, TrailNorthEastWest, TrailEastSouthWest, TrailNorthEastSouthWest,
	}

	overmapGameIDs = map[OvermapTerrainType]string{
		OvermapDefault:  "field",
		Water:           "lake_surface",
		Water100Percent: "lake_surface",
		HouseDefault:    "house_01_north",
	}
)

func init() {
	suffixes := [16]string{
		"",
		"end_north", "end_south", "ns",
		"end_east", "ne", "es", "nes",
		"end_west", "wn", "sw", "nsw",
		"ew", "new", "esw", "nesw",
	}
	for mask := 1; mask < 16; mask++ {
		overmapGameIDs[roadsByMask[mask]] = "road_" + suffixes[mask]
		overmapGameIDs[trailsByMask[mask]] = "forest_trail_" + suffixes[mask]
	}
}

// GameID returns the game's overmap terrain id.
// Unknown types are treated as OvermapDefault.
func (o OvermapTerrainType) GameID() string {
	id, ok := overmapGameIDs[o]
	if !ok {
		return overmapGameIDs[OvermapDefault]
	}
	return id
}

// IsWater returns if the tile is (mostly) water
func (o OvermapTerrainType) IsWater() bool {
	return o == Water || o == Water100Percent
}

// roadForMask returns the road for a connection mask, or "" if the mask
// has no connections (or isn't a mask at all)
func roadForMask(mask uint8) OvermapTerrainType {
	if mask >= 16 {
		return ""
	}
	return roadsByMask[mask]
}

// trailForMask is roadForMask for forest trails
func trailForMask(mask uint8) OvermapTerrainType {
	if mask >= 16 {
		return ""
	}
	return trailsByMask[mask]
}

package cddaosm

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Raster colours. Each TerrainType owns exactly one colour; anything else on
// the raster (land use colours with no tile of their own, the background)
// classifies as Default.
var (
	BackgroundColour      = colornames.White
	CoastlineBorderColour = colornames.Red

	DeepWaterColour     = color.RGBA{0, 64, 255, 255}
	PavementColour      = color.RGBA{0, 0, 0, 255}
	ConcreteFloorColour = color.RGBA{64, 64, 0, 255}
	DirtFloorColour     = color.RGBA{180, 130, 0, 255}
	SidewalkColour      = color.RGBA{156, 156, 156, 255}
	WallColour          = color.RGBA{172, 96, 0, 255}
	FloorColour         = color.RGBA{255, 128, 0, 255}
	GrassColour         = color.RGBA{0, 255, 0, 255}
	GrassLongColour     = color.RGBA{0, 172, 0, 255}
	DeadGrassColour     = color.RGBA{172, 172, 0, 255}
	LandAreaColour      = color.RGBA{128, 128, 128, 255}

	// coastline areas are flood filled in this colour when they turn out to be sea
	waterSideColour = DeepWaterColour

	terrainByColour = map[color.RGBA]TerrainType{
		DeepWaterColour:     DeepMovingWater,
		PavementColour:      Pavement,
		SidewalkColour:      Sidewalk,
		DirtFloorColour:     DirtFloor,
		ConcreteFloorColour: ConcreteFloor,
		FloorColour:         HouseFloor,
		WallColour:          Wall,
		GrassColour:         Grass,
		GrassLongColour:     GrassLong,
	}

	// https://wiki.openstreetmap.org/wiki/Key:landuse
	// Land uses not listed here are not drawn at all.
	landuseColours = map[string]color.RGBA{
		"commercial":              {0, 0, 255, 255},
		"construction":            DirtFloorColour,
		"industrial":              {255, 255, 0, 255},
		"residential":             {255, 172, 128, 255},
		"retail":                  {0, 0, 255, 255},
		"allotments":              DirtFloorColour,
		"farmland":                DirtFloorColour,
		"farmyard":                DirtFloorColour,
		"flowerbed":               LandAreaColour,
		"forest":                  {0, 128, 0, 255},
		"meadow":                  LandAreaColour,
		"orchard":                 LandAreaColour,
		"vineyard":                LandAreaColour,
		"basin":                   LandAreaColour,
		"brownfield":              DirtFloorColour,
		"cemetery":                LandAreaColour,
		"conservation":            LandAreaColour,
		"depot":                   LandAreaColour,
		"garages":                 {128, 128, 255, 255},
		"grass":                   DeadGrassColour,
		"greenfield":              GrassColour,
		"greenhouse_horticulture": LandAreaColour,
		"landfill":                LandAreaColour,
		"military":                LandAreaColour,
		"plant_nursery":           LandAreaColour,
		"port":                    LandAreaColour,
		"quarry":                  LandAreaColour,
		"railway":                 LandAreaColour,
		"recreation_ground":       LandAreaColour,
		"religious":               LandAreaColour,
		"reservoir":               LandAreaColour,
		"salt_pond":               LandAreaColour,
		"village_green":           LandAreaColour,
		"winter_sports":           LandAreaColour,
	}

	// https://wiki.openstreetmap.org/wiki/Key:highway
	// Road types not listed here are not drawn at all.
	roadColours = map[string]color.RGBA{
		"motorway":          PavementColour,
		"motorway_link":     PavementColour,
		"trunk":             PavementColour,
		"trunk_link":        PavementColour,
		"primary":           PavementColour,
		"primary_link":      PavementColour,
		"secondary":         PavementColour,
		"secondary_link":    PavementColour,
		"tertiary":          PavementColour,
		"tertiary_link":     PavementColour,
		"unclassified":      DirtFloorColour,
		"residential":       PavementColour,
		"living_street":     PavementColour,
		"service":           DirtFloorColour,
		"pedestrian":        ConcreteFloorColour,
		"track":             DirtFloorColour,
		"bus_guideway":      PavementColour,
		"escape":            PavementColour,
		"raceway":           PavementColour,
		"road":              PavementColour,
		"busway":            PavementColour,
		"footway":           DirtFloorColour,
		"bridleway":         DirtFloorColour,
		"steps":             ConcreteFloorColour,
		"path":              DirtFloorColour,
		"cycleway":          DirtFloorColour,
		"construction":      ConcreteFloorColour,
		"bus_stop":          PavementColour,
		"crossing":          PavementColour,
		"emergency_bay":     PavementColour,
		"motorway_junction": PavementColour,
		"passing_place":     PavementColour,
		"platform":          PavementColour,
		"rest_area":         PavementColour,
	}
)

// Classify returns the TerrainType painted in the given colour.
// Colours that belong to no terrain are Default.
func Classify(c color.Color) TerrainType {
	r, g, b, a := c.RGBA()
	key := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	t, ok := terrainByColour[key]
	if !ok {
		return Default
	}
	return t
}

package world

// Biome classifies a tile's environment. Resolution happens during
// generation from region influence and the raw noise fields.
type Biome uint8

const (
	BiomePlains Biome = iota
	BiomeForest
	BiomeWetland
	BiomeDesert
	BiomeTundra
	BiomeMountain
	BiomeVolcanic // special: hot, high, dry
	BiomeCrystal  // special: cold, high, dry
)

// biomeCount is the number of biome values; used for counting arrays.
const biomeCount = 8

// AllBiomes lists every biome in enum order.
var AllBiomes = [biomeCount]Biome{
	BiomePlains, BiomeForest, BiomeWetland, BiomeDesert,
	BiomeTundra, BiomeMountain, BiomeVolcanic, BiomeCrystal,
}

// String returns a human-readable name for a biome.
func (b Biome) String() string {
	switch b {
	case BiomePlains:
		return "Plains"
	case BiomeForest:
		return "Forest"
	case BiomeWetland:
		return "Wetland"
	case BiomeDesert:
		return "Desert"
	case BiomeTundra:
		return "Tundra"
	case BiomeMountain:
		return "Mountain"
	case BiomeVolcanic:
		return "Volcanic"
	case BiomeCrystal:
		return "Crystal"
	default:
		return "Unknown"
	}
}

// FeatureType categorizes a placed surface feature.
type FeatureType uint8

const (
	FeatureFlora FeatureType = iota
	FeatureRock
	FeatureSpring
	FeatureVent
	FeatureRuin
	FeatureCrystalGrowth
	FeatureLeyConduit // deposited along traced energy currents
)

// String returns a human-readable name for a feature type.
func (f FeatureType) String() string {
	switch f {
	case FeatureFlora:
		return "Flora"
	case FeatureRock:
		return "Rock"
	case FeatureSpring:
		return "Spring"
	case FeatureVent:
		return "Vent"
	case FeatureRuin:
		return "Ruin"
	case FeatureCrystalGrowth:
		return "CrystalGrowth"
	case FeatureLeyConduit:
		return "LeyConduit"
	default:
		return "Unknown"
	}
}

// Feature is a visible landmark on a tile.
type Feature struct {
	Type         FeatureType `json:"type"`
	Subtype      string      `json:"subtype"`
	Discovered   bool        `json:"discovered"`
	Interactable bool        `json:"interactable"`
}

// ResourceKind enumerates extractable resources.
type ResourceKind uint8

const (
	ResourceFiber ResourceKind = iota
	ResourceTimber
	ResourceStone
	ResourceOre
	ResourceCrystalShard
	ResourceEnergyMote
)

// String returns a human-readable name for a resource kind.
func (k ResourceKind) String() string {
	switch k {
	case ResourceFiber:
		return "Fiber"
	case ResourceTimber:
		return "Timber"
	case ResourceStone:
		return "Stone"
	case ResourceOre:
		return "Ore"
	case ResourceCrystalShard:
		return "CrystalShard"
	case ResourceEnergyMote:
		return "EnergyMote"
	default:
		return "Unknown"
	}
}

// Resource is a deposit placed on a tile. Quantity is always positive.
type Resource struct {
	Kind        ResourceKind `json:"kind"`
	Quality     int          `json:"quality"` // tier 1 (common) .. 4 (pristine)
	Quantity    int          `json:"quantity"`
	Discovered  bool         `json:"discovered"`
	Extractable bool         `json:"extractable"`
}

// Tile is one generated hex. Elevation, moisture, and temperature are
// always clamped to [0, 1]. After generation, only the discovery fields
// are mutated (by the fog-of-war collaborator).
type Tile struct {
	Coord     HexCoord `json:"coord"`
	Biome     Biome    `json:"biome"`
	Variation int      `json:"variation"` // visual variety index, not gameplay

	Elevation   float64 `json:"elevation"`
	Moisture    float64 `json:"moisture"`
	Temperature float64 `json:"temperature"`

	Features  []Feature  `json:"features,omitempty"`
	Resources []Resource `json:"resources,omitempty"`

	Discovered bool    `json:"discovered"`
	Explored   bool    `json:"explored"`
	Visibility float64 `json:"visibility"` // 0 (unseen) to 1 (fully lit)
}

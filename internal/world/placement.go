// Feature and resource placement. Each tile gets its own hash-derived
// stream per concern, so placement is independent of tile iteration order.
// Spawn tables are per-biome weighted lists scanned linearly.
package world

import "github.com/talgya/crystalvale/internal/rng"

// featureDensityModifier scales the base feature chance per biome.
func featureDensityModifier(b Biome) float64 {
	switch b {
	case BiomeMountain, BiomeForest:
		return 1.3
	case BiomeDesert:
		return 0.7
	default:
		return 1.0
	}
}

type featureEntry struct {
	feature Feature
	weight  float64
}

// featureTable returns the weighted feature spawn list for a biome.
func featureTable(b Biome) []featureEntry {
	switch b {
	case BiomePlains:
		return []featureEntry{
			{Feature{Type: FeatureFlora, Subtype: "tall grass"}, 3},
			{Feature{Type: FeatureRock, Subtype: "erratic boulder"}, 1},
			{Feature{Type: FeatureRuin, Subtype: "waymarker", Interactable: true}, 0.5},
		}
	case BiomeForest:
		return []featureEntry{
			{Feature{Type: FeatureFlora, Subtype: "ancient grove"}, 3},
			{Feature{Type: FeatureFlora, Subtype: "mushroom ring"}, 1.5},
			{Feature{Type: FeatureRuin, Subtype: "overgrown shrine", Interactable: true}, 0.5},
		}
	case BiomeWetland:
		return []featureEntry{
			{Feature{Type: FeatureFlora, Subtype: "reed bed"}, 3},
			{Feature{Type: FeatureSpring, Subtype: "mist spring", Interactable: true}, 1.5},
			{Feature{Type: FeatureRuin, Subtype: "sunken causeway", Interactable: true}, 0.5},
		}
	case BiomeDesert:
		return []featureEntry{
			{Feature{Type: FeatureRock, Subtype: "sand spire"}, 3},
			{Feature{Type: FeatureRuin, Subtype: "sun altar", Interactable: true}, 1},
			{Feature{Type: FeatureFlora, Subtype: "barrel cactus"}, 1},
		}
	case BiomeTundra:
		return []featureEntry{
			{Feature{Type: FeatureRock, Subtype: "ice pillar"}, 3},
			{Feature{Type: FeatureFlora, Subtype: "lichen field"}, 2},
			{Feature{Type: FeatureRuin, Subtype: "frozen cairn", Interactable: true}, 0.5},
		}
	case BiomeMountain:
		return []featureEntry{
			{Feature{Type: FeatureRock, Subtype: "scree slope"}, 3},
			{Feature{Type: FeatureVent, Subtype: "steam vent"}, 1},
			{Feature{Type: FeatureCrystalGrowth, Subtype: "geode pocket", Interactable: true}, 1},
		}
	case BiomeVolcanic:
		return []featureEntry{
			{Feature{Type: FeatureVent, Subtype: "fumarole"}, 3},
			{Feature{Type: FeatureRock, Subtype: "obsidian flow"}, 2},
			{Feature{Type: FeatureCrystalGrowth, Subtype: "ember crystal", Interactable: true}, 0.5},
		}
	case BiomeCrystal:
		return []featureEntry{
			{Feature{Type: FeatureCrystalGrowth, Subtype: "prism cluster", Interactable: true}, 3},
			{Feature{Type: FeatureCrystalGrowth, Subtype: "singing shard", Interactable: true}, 1.5},
			{Feature{Type: FeatureRock, Subtype: "fractured monolith"}, 1},
		}
	default:
		return nil
	}
}

type resourceEntry struct {
	kind         ResourceKind
	baseQuantity float64
	weight       float64
}

// resourceTable returns the weighted resource spawn list for a biome.
func resourceTable(b Biome) []resourceEntry {
	switch b {
	case BiomePlains:
		return []resourceEntry{
			{ResourceFiber, 40, 3},
			{ResourceStone, 20, 1},
		}
	case BiomeForest:
		return []resourceEntry{
			{ResourceTimber, 50, 3},
			{ResourceFiber, 30, 2},
			{ResourceEnergyMote, 10, 0.5},
		}
	case BiomeWetland:
		return []resourceEntry{
			{ResourceFiber, 45, 3},
			{ResourceEnergyMote, 15, 1},
		}
	case BiomeDesert:
		return []resourceEntry{
			{ResourceStone, 30, 3},
			{ResourceCrystalShard, 10, 0.5},
		}
	case BiomeTundra:
		return []resourceEntry{
			{ResourceStone, 25, 2},
			{ResourceCrystalShard, 12, 1},
		}
	case BiomeMountain:
		return []resourceEntry{
			{ResourceOre, 40, 3},
			{ResourceStone, 50, 2},
			{ResourceCrystalShard, 15, 1},
		}
	case BiomeVolcanic:
		return []resourceEntry{
			{ResourceOre, 50, 3},
			{ResourceEnergyMote, 20, 1},
		}
	case BiomeCrystal:
		return []resourceEntry{
			{ResourceCrystalShard, 35, 3},
			{ResourceEnergyMote, 25, 2},
		}
	default:
		return nil
	}
}

// qualityTiers and qualityWeights drive the resource quality draw.
var (
	qualityTiers   = []int{1, 2, 3, 4}
	qualityWeights = []float64{0.5, 0.3, 0.15, 0.05}
)

// placeFeatures rolls the feature spawn for one tile.
func (g *Generator) placeFeatures(t *Tile) {
	table := featureTable(t.Biome)
	if len(table) == 0 {
		return
	}

	eng := rng.New(g.opts.Seed).Derive(coordHash(uint32(g.opts.Seed), t.Coord, streamFeature))
	chance := g.opts.Features.Density * featureDensityModifier(t.Biome)
	if eng.Next() >= chance {
		return
	}

	weights := make([]float64, len(table))
	for i := range table {
		weights[i] = table[i].weight
	}
	t.Features = append(t.Features, rng.WeightedPick(eng, table, weights).feature)
}

// placeResources rolls the resource spawn for one tile. A successful roll
// places 1-3 deposits; quantities vary within ±50% of the richness- and
// density-scaled base amount and are always at least 1.
func (g *Generator) placeResources(t *Tile) {
	table := resourceTable(t.Biome)
	if len(table) == 0 {
		return
	}

	eng := rng.New(g.opts.Seed).Derive(coordHash(uint32(g.opts.Seed), t.Coord, streamResource))
	if eng.Next() >= g.opts.Resources.Density {
		return
	}

	weights := make([]float64, len(table))
	for i := range table {
		weights[i] = table[i].weight
	}

	richness := g.opts.Resources.Richness * (0.5 + g.fields.Density(t.Coord))
	count := eng.NextInt(1, 3)
	for i := 0; i < count; i++ {
		entry := rng.WeightedPick(eng, table, weights)
		qty := int(entry.baseQuantity * richness * eng.NextFloat(0.5, 1.5))
		if qty < 1 {
			qty = 1
		}
		t.Resources = append(t.Resources, Resource{
			Kind:        entry.kind,
			Quality:     rng.WeightedPick(eng, qualityTiers, qualityWeights),
			Quantity:    qty,
			Extractable: true,
		})
	}
}

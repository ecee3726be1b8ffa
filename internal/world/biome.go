// Biome resolution — the decision procedure mapping region influences and
// raw field values to a single biome per tile. The influence split is an
// explicit four-case enumeration: none, single, dominant, tied.
package world

// dominanceRatio: a top influence this many times stronger than the
// runner-up wins outright instead of going to the tie-break.
const dominanceRatio = 1.5

// tieBreakTopWeight is the stronger region's share in a tied resolution.
const tieBreakTopWeight = 0.7

type influenceCase uint8

const (
	influenceNone influenceCase = iota
	influenceSingle
	influenceDominant
	influenceTied
)

// resolveBiome decides a tile's biome from the region list, falling back to
// the raw-field table where no region reaches the tile.
func (g *Generator) resolveBiome(c HexCoord, elev, moist, temp float64) Biome {
	var top, second *Region
	var topStr, secondStr float64

	for i := range g.regions {
		str := g.influence(&g.regions[i], c)
		if str <= 0 {
			continue
		}
		switch {
		case str > topStr:
			second, secondStr = top, topStr
			top, topStr = &g.regions[i], str
		case str > secondStr:
			second, secondStr = &g.regions[i], str
		}
	}

	switch g.classifyInfluence(top, second, topStr, secondStr) {
	case influenceNone:
		return fallbackBiome(elev, moist, temp)
	case influenceSingle, influenceDominant:
		return top.Bias
	default: // influenceTied
		// Stable 70/30 split keyed on seed and coordinate: the same tile
		// in the same world always breaks the tie the same way.
		if coordUnit(uint32(g.opts.Seed), c, streamTieBreak) < tieBreakTopWeight {
			return top.Bias
		}
		return second.Bias
	}
}

func (g *Generator) classifyInfluence(top, second *Region, topStr, secondStr float64) influenceCase {
	switch {
	case top == nil:
		return influenceNone
	case second == nil:
		return influenceSingle
	case topStr > secondStr*dominanceRatio:
		return influenceDominant
	default:
		return influenceTied
	}
}

// fallbackBiome resolves a biome from the raw fields alone. Very high
// elevation is mountain no matter what; the two special biomes trigger on
// composite scores; the rest is temperature/moisture banding.
func fallbackBiome(elev, moist, temp float64) Biome {
	if elev > 0.8 {
		return BiomeMountain
	}

	if volcanic := temp*0.6 + elev*0.3 + (1-moist)*0.1; volcanic > 0.85 {
		return BiomeVolcanic
	}
	if crystal := (1-temp)*0.45 + elev*0.35 + (1-moist)*0.2; crystal > 0.82 {
		return BiomeCrystal
	}

	switch {
	case temp < 0.25:
		return BiomeTundra
	case temp > 0.65 && moist < 0.3:
		return BiomeDesert
	case moist > 0.65 && temp > 0.35:
		return BiomeWetland
	case moist > 0.4:
		return BiomeForest
	default:
		return BiomePlains
	}
}

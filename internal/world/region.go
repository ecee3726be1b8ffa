// Biome-bias regions — ephemeral circular influence zones created once per
// generation run. Regions are never persisted; they only nudge tile biome
// resolution while tiles are being generated.
package world

import (
	"math"

	"github.com/talgya/crystalvale/internal/rng"
)

// Region is a weighted circular influence zone with a biome bias.
type Region struct {
	Center HexCoord
	Radius float64
	Bias   Biome
}

// regionPlacementLimit keeps region centers inside 70% of the world radius
// so influence zones do not hang off the edge.
const regionPlacementLimit = 0.7

// createRegions places the configured number of regions at random angle and
// distance from the center. Radius jitter comes from a per-region derived
// stream; the bias comes from the fields at the region center.
func (g *Generator) createRegions() []Region {
	o := g.opts.Regions
	regions := make([]Region, 0, o.Count)

	for i := 0; i < o.Count; i++ {
		angle := g.eng.NextFloat(0, 2*math.Pi)
		dist := g.eng.NextFloat(0, float64(g.opts.Radius)*regionPlacementLimit)
		center := fromCartesian(dist*math.Cos(angle), dist*math.Sin(angle))

		jitter := g.eng.Derive(uint32(i))
		radius := o.BaseRadius * (1 + jitter.NextFloat(-o.RadiusJitter, o.RadiusJitter))

		regions = append(regions, Region{
			Center: center,
			Radius: radius,
			Bias:   g.regionBias(center),
		})
	}
	return regions
}

// regionBias picks the region's biome from elevation and temperature at its
// center via a temperature-banded table. The draw uses a stream derived
// from the center coordinate, so identical centers always choose the same
// bias regardless of region creation order.
func (g *Generator) regionBias(center HexCoord) Biome {
	elev := g.fields.Elevation(center)
	temp := g.fields.Temperature(center)

	if elev > 0.75 {
		return BiomeMountain
	}

	eng := rng.New(g.opts.Seed).Derive(coordHash(uint32(g.opts.Seed), center, streamRegionBias))
	switch {
	case temp >= 0.8: // hot
		return rng.WeightedPick(eng, []Biome{BiomeDesert, BiomeVolcanic}, []float64{0.6, 0.4})
	case temp >= 0.6: // warm
		return rng.WeightedPick(eng, []Biome{BiomeForest, BiomeDesert}, []float64{0.6, 0.4})
	case temp >= 0.4: // temperate
		return rng.WeightedPick(eng, []Biome{BiomeForest, BiomeWetland}, []float64{0.5, 0.5})
	case temp >= 0.2: // cool
		return rng.WeightedPick(eng, []Biome{BiomeWetland, BiomeTundra, BiomeCrystal}, []float64{0.4, 0.35, 0.25})
	default: // cold
		return rng.WeightedPick(eng, []Biome{BiomeTundra, BiomeCrystal}, []float64{0.6, 0.4})
	}
}

// influence returns the region's pull at a coordinate: 1.0 at the center
// falling linearly to 0 at radius*(1+blendFactor).
func (g *Generator) influence(rg *Region, c HexCoord) float64 {
	x, y := toCartesian(c)
	cx, cy := toCartesian(rg.Center)
	dist := math.Hypot(x-cx, y-cy)

	reach := rg.Radius * (1 + g.opts.Regions.BlendFactor)
	if reach <= 0 || dist >= reach {
		return 0
	}
	return 1 - dist/reach
}

// insideRegionCore reports whether c lies in the inner half of any region.
// Smoothing skips these tiles to keep region cores crisp.
func (g *Generator) insideRegionCore(c HexCoord) bool {
	x, y := toCartesian(c)
	for i := range g.regions {
		cx, cy := toCartesian(g.regions[i].Center)
		if math.Hypot(x-cx, y-cy) < g.regions[i].Radius*0.5 {
			return true
		}
	}
	return false
}

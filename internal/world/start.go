// Starting-tile selection. Candidates are filtered in fixed coordinate
// order against the base constraints, then relaxed through two documented
// fallback tiers. The final tier cannot fail while any tile exists.
package world

import (
	"math"

	"github.com/talgya/crystalvale/internal/rng"
)

// Base constraints for a viable start: gentle biome, moderate elevation and
// temperature, enough moisture, and reasonable centrality.
const (
	startMinElevation  = 0.3
	startMaxElevation  = 0.7
	startMinMoisture   = 0.4
	startMinTemp       = 0.4
	startMaxTemp       = 0.7
	startCentralFactor = 0.7
	startRelaxedFactor = 0.5
)

func startBiomeOK(b Biome) bool {
	return b == BiomeForest || b == BiomeWetland
}

// selectStart picks the starting tile. Tier 1: full constraint set.
// Tier 2: any forest/wetland tile within half the radius. Tier 3: the tile
// closest to the absolute center by Euclidean coordinate distance.
func (g *Generator) selectStart(m *Map) HexCoord {
	maxDist := float64(g.opts.Radius) * startCentralFactor

	var candidates []HexCoord
	g.forEachCoord(func(c HexCoord) {
		t := m.Get(c)
		if t == nil || !startBiomeOK(t.Biome) {
			return
		}
		if t.Elevation < startMinElevation || t.Elevation > startMaxElevation {
			return
		}
		if t.Moisture < startMinMoisture {
			return
		}
		if t.Temperature < startMinTemp || t.Temperature > startMaxTemp {
			return
		}
		if centerDistance(c) > maxDist {
			return
		}
		candidates = append(candidates, c)
	})

	if len(candidates) == 0 {
		relaxed := float64(g.opts.Radius) * startRelaxedFactor
		g.forEachCoord(func(c HexCoord) {
			t := m.Get(c)
			if t != nil && startBiomeOK(t.Biome) && centerDistance(c) <= relaxed {
				candidates = append(candidates, c)
			}
		})
	}

	if len(candidates) > 0 {
		return rng.Pick(g.eng.DeriveString("start"), candidates)
	}

	// Last resort: nearest tile to the center. Defined whenever the world
	// has at least one tile.
	best := HexCoord{}
	bestDist := math.Inf(1)
	g.forEachCoord(func(c HexCoord) {
		if m.Get(c) == nil {
			return
		}
		if d := centerDistance(c); d < bestDist {
			best = c
			bestDist = d
		}
	})
	return best
}

// centerDistance is the Euclidean distance from the world center in
// cartesian hex space.
func centerDistance(c HexCoord) float64 {
	x, y := toCartesian(c)
	return math.Hypot(x, y)
}

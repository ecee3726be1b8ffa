// Generation orchestrator. The pipeline is linear: create regions →
// generate tiles (fields + biome) → smooth biome boundaries → place
// features and resources → select a starting tile → propagate the initial
// discovery radius. Everything downstream of the seed is deterministic.
// See design doc Section 3.2.
package world

import (
	"github.com/talgya/crystalvale/internal/noise"
	"github.com/talgya/crystalvale/internal/rng"
)

// World is the result of one generation run.
type World struct {
	Name   string `json:"name"`
	Seed   int64  `json:"seed"`
	Radius int    `json:"radius"`

	Map *Map `json:"-"`

	// Distribution maps every biome to its fraction of the world.
	// Fractions sum to 1.0 for any non-empty world.
	Distribution map[Biome]float64 `json:"distribution"`

	Start HexCoord `json:"start"`
}

// Generator owns the options, random streams, field caches, and region
// list for one world. Create one per world; instances are not safe for
// concurrent use, but separate instances never share state.
type Generator struct {
	opts   Options
	eng    *rng.Engine
	fields *Fields

	regions        []Region
	regionsCreated bool
}

// NewGenerator builds a generator for the given options. Options are
// assumed validated; see Options.Validate.
func NewGenerator(opts Options) *Generator {
	g := &Generator{
		opts: opts,
		eng:  rng.New(opts.Seed),
	}
	g.fields = NewFields(&g.opts, noise.New(opts.Seed))
	return g
}

// ensureRegions creates the region list exactly once per generator.
// Area generation shares it read-only, so chunk order cannot change biomes.
func (g *Generator) ensureRegions() {
	if g.regionsCreated {
		return
	}
	g.regions = g.createRegions()
	g.regionsCreated = true
}

// Generate runs the full pipeline and returns the populated world.
func (g *Generator) Generate() *World {
	g.ensureRegions()

	m := NewMap(g.opts.Radius)
	g.forEachCoord(func(c HexCoord) {
		m.Set(g.generateTile(c))
	})

	g.smooth(m)

	// Placement reads the final (post-smoothing) biome.
	for _, t := range m.Tiles {
		g.placeFeatures(t)
		g.placeResources(t)
	}
	g.traceLeyConduits(m)

	start := g.selectStart(m)
	propagateDiscovery(m, start)

	return &World{
		Name:         g.opts.Name,
		Seed:         g.opts.Seed,
		Radius:       g.opts.Radius,
		Map:          m,
		Distribution: biomeDistribution(m),
		Start:        start,
	}
}

// GenerateArea generates the tiles of a coordinate sub-rectangle clipped to
// the world radius, for chunked/progressive consumers. Tiles carry fields
// and resolved biomes only; smoothing, placement, and discovery are whole-
// world passes that run in Generate. Any call order yields the same tiles.
func (g *Generator) GenerateArea(minQ, maxQ, minR, maxR int) []*Tile {
	g.ensureRegions()

	var tiles []*Tile
	for r := minR; r <= maxR; r++ {
		for q := minQ; q <= maxQ; q++ {
			c := HexCoord{Q: q, R: r}
			if Distance(c, HexCoord{}) > g.opts.Radius {
				continue
			}
			tiles = append(tiles, g.generateTile(c))
		}
	}
	return tiles
}

// forEachCoord visits every valid coordinate in fixed (r, q) order.
func (g *Generator) forEachCoord(fn func(HexCoord)) {
	radius := g.opts.Radius
	for r := -radius; r <= radius; r++ {
		for q := -radius; q <= radius; q++ {
			c := HexCoord{Q: q, R: r}
			if Distance(c, HexCoord{}) > radius {
				continue
			}
			fn(c)
		}
	}
}

func (g *Generator) generateTile(c HexCoord) *Tile {
	elev := g.fields.Elevation(c)
	moist := g.fields.Moisture(c)
	temp := g.fields.Temperature(c)

	return &Tile{
		Coord:       c,
		Biome:       g.resolveBiome(c, elev, moist, temp),
		Variation:   int(coordHash(uint32(g.opts.Seed), c, streamVariation) % 4),
		Elevation:   elev,
		Moisture:    moist,
		Temperature: temp,
	}
}

// smooth runs the bounded biome-boundary smoothing pass. Neighbor counts
// are read through a snapshot of the pre-pass assignments, so iteration
// order does not matter and later tiles never see smoothed neighbors.
func (g *Generator) smooth(m *Map) {
	strength := g.opts.Smoothing
	if strength <= 0 {
		return
	}

	original := make(map[HexCoord]Biome, m.TileCount())
	for c, t := range m.Tiles {
		original[c] = t.Biome
	}

	seed := uint32(g.opts.Seed)
	for c, t := range m.Tiles {
		// Region cores stay crisp.
		if g.insideRegionCore(c) {
			continue
		}

		var counts [biomeCount]int
		for _, nc := range c.Neighbors() {
			if b, ok := original[nc]; ok {
				counts[b]++
			}
		}

		own := original[c]
		best := own
		bestCount := 0
		for b, n := range counts {
			if n > bestCount {
				best = Biome(b)
				bestCount = n
			}
		}

		if best == own || bestCount <= counts[own] {
			continue
		}
		if coordUnit(seed, c, streamSmoothing) < strength {
			t.Biome = best
		}
	}
}

// traceLeyConduits picks high-elevation sources in deterministic coordinate
// order and deposits conduit features along each traced flow path.
func (g *Generator) traceLeyConduits(m *Map) {
	o := g.opts.Flow
	if o.Sources <= 0 {
		return
	}

	var sources []HexCoord
	g.forEachCoord(func(c HexCoord) {
		if g.fields.Elevation(c) > 0.7 {
			sources = append(sources, c)
		}
	})
	if len(sources) == 0 {
		return
	}

	eng := g.eng.DeriveString("leyflow")
	for i := 0; i < o.Sources; i++ {
		start := rng.Pick(eng, sources)
		for _, path := range g.fields.FlowPaths(start, m.InBounds, eng) {
			for j, c := range path {
				t := m.Get(c)
				if t == nil || hasFeature(t, FeatureLeyConduit) {
					continue
				}
				subtype := "channel"
				if j == 0 && len(path) > 1 {
					subtype = "wellspring"
				}
				t.Features = append(t.Features, Feature{
					Type:         FeatureLeyConduit,
					Subtype:      subtype,
					Interactable: true,
				})
			}
		}
	}
}

func hasFeature(t *Tile, ft FeatureType) bool {
	for i := range t.Features {
		if t.Features[i].Type == ft {
			return true
		}
	}
	return false
}

// biomeDistribution returns each biome's fraction of the world. Every
// biome gets an entry so the summary shape is stable across worlds.
func biomeDistribution(m *Map) map[Biome]float64 {
	dist := make(map[Biome]float64, biomeCount)
	total := m.TileCount()
	if total == 0 {
		return dist
	}

	var counts [biomeCount]int
	for _, t := range m.Tiles {
		counts[t.Biome]++
	}
	for _, b := range AllBiomes {
		dist[b] = float64(counts[b]) / float64(total)
	}
	return dist
}

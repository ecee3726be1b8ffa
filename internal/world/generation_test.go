package world

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func genOptions(seed int64, radius int) Options {
	opts := DefaultOptions()
	opts.Seed = seed
	opts.Radius = radius
	return opts
}

func TestGenerateDeterminism(t *testing.T) {
	opts := genOptions(42, 10)

	w1 := NewGenerator(opts).Generate()
	w2 := NewGenerator(opts).Generate()

	if w1.Start != w2.Start {
		t.Fatalf("starting tiles differ: %v vs %v", w1.Start, w2.Start)
	}
	if !reflect.DeepEqual(w1.Distribution, w2.Distribution) {
		t.Fatal("biome distributions differ")
	}

	t1 := w1.Map.Sorted()
	t2 := w2.Map.Sorted()
	if len(t1) != len(t2) {
		t.Fatalf("tile counts differ: %d vs %d", len(t1), len(t2))
	}
	for i := range t1 {
		if !reflect.DeepEqual(*t1[i], *t2[i]) {
			t.Fatalf("tiles differ at %v", t1[i].Coord)
		}
	}

	// Byte-identical serialized output for the same seed and options.
	b1, err := json.Marshal(t1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := json.Marshal(t2)
	if err != nil {
		t.Fatal(err)
	}
	if string(b1) != string(b2) {
		t.Fatal("serialized tile sets are not byte-identical")
	}
}

func TestGenerateTileCountAndRanges(t *testing.T) {
	opts := genOptions(7, 8)
	w := NewGenerator(opts).Generate()

	if got, want := w.Map.TileCount(), TileCountForRadius(8); got != want {
		t.Fatalf("tile count %d, want %d", got, want)
	}

	for _, tile := range w.Map.Tiles {
		if tile.Elevation < 0 || tile.Elevation > 1 {
			t.Errorf("elevation %f out of range at %v", tile.Elevation, tile.Coord)
		}
		if tile.Moisture < 0 || tile.Moisture > 1 {
			t.Errorf("moisture %f out of range at %v", tile.Moisture, tile.Coord)
		}
		if tile.Temperature < 0 || tile.Temperature > 1 {
			t.Errorf("temperature %f out of range at %v", tile.Temperature, tile.Coord)
		}
		if tile.Visibility < 0 || tile.Visibility > 1 {
			t.Errorf("visibility %f out of range at %v", tile.Visibility, tile.Coord)
		}
		if tile.Variation < 0 || tile.Variation > 3 {
			t.Errorf("variation %d out of range at %v", tile.Variation, tile.Coord)
		}
		for _, res := range tile.Resources {
			if res.Quantity <= 0 {
				t.Errorf("resource %v with quantity %d at %v", res.Kind, res.Quantity, tile.Coord)
			}
			if res.Quality < 1 || res.Quality > 4 {
				t.Errorf("resource quality %d out of range at %v", res.Quality, tile.Coord)
			}
		}
	}
}

func TestDistributionSumsToOne(t *testing.T) {
	for _, seed := range []int64{1, 42, 9999} {
		w := NewGenerator(genOptions(seed, 6)).Generate()
		sum := 0.0
		for _, f := range w.Distribution {
			if f < 0 {
				t.Errorf("seed %d: negative fraction %f", seed, f)
			}
			sum += f
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("seed %d: distribution sums to %f", seed, sum)
		}
	}
}

func TestDiscoveryRadius(t *testing.T) {
	w := NewGenerator(genOptions(42, 10)).Generate()

	wantVis := map[int]float64{0: 1.0, 1: 0.8, 2: 0.5, 3: 0.3}
	for _, tile := range w.Map.Tiles {
		d := Distance(tile.Coord, w.Start)
		if d <= 3 {
			if !tile.Discovered {
				t.Errorf("tile %v at distance %d not discovered", tile.Coord, d)
			}
			if tile.Visibility != wantVis[d] {
				t.Errorf("tile %v at distance %d has visibility %f, want %f",
					tile.Coord, d, tile.Visibility, wantVis[d])
			}
		} else {
			if tile.Discovered {
				t.Errorf("tile %v at distance %d discovered", tile.Coord, d)
			}
			if tile.Visibility != 0 {
				t.Errorf("undiscovered tile %v has visibility %f", tile.Coord, tile.Visibility)
			}
		}

		if tile.Explored != (tile.Coord == w.Start) {
			t.Errorf("explored flag wrong at %v", tile.Coord)
		}
	}
}

func TestSmoothingZeroLeavesBiomesUntouched(t *testing.T) {
	opts := genOptions(42, 8)
	opts.Smoothing = 0
	w := NewGenerator(opts).Generate()

	// With smoothing off, the full pipeline's biomes must match the raw
	// per-tile resolution pass exactly.
	raw := NewGenerator(opts)
	for _, tile := range raw.GenerateArea(-8, 8, -8, 8) {
		got := w.Map.Get(tile.Coord)
		if got == nil {
			t.Fatalf("missing tile %v", tile.Coord)
		}
		if got.Biome != tile.Biome {
			t.Errorf("biome mutated at %v with smoothing 0: %v vs %v",
				tile.Coord, got.Biome, tile.Biome)
		}
	}
}

func TestGenerateAreaChunkOrderIndependence(t *testing.T) {
	opts := genOptions(17, 6)

	whole := NewGenerator(opts)
	full := make(map[HexCoord]*Tile)
	for _, tile := range whole.GenerateArea(-6, 6, -6, 6) {
		full[tile.Coord] = tile
	}

	chunked := NewGenerator(opts)
	var parts []*Tile
	// Right half first, then left: order must not matter.
	parts = append(parts, chunked.GenerateArea(0, 6, -6, 6)...)
	parts = append(parts, chunked.GenerateArea(-6, -1, -6, 6)...)

	if len(parts) != len(full) {
		t.Fatalf("chunked tile count %d, want %d", len(parts), len(full))
	}
	for _, tile := range parts {
		want := full[tile.Coord]
		if want == nil {
			t.Fatalf("unexpected tile %v", tile.Coord)
		}
		if !reflect.DeepEqual(*tile, *want) {
			t.Errorf("chunked tile differs at %v", tile.Coord)
		}
	}
}

func TestStartTileValidity(t *testing.T) {
	for _, seed := range []int64{1, 42, 77, 1234} {
		opts := genOptions(seed, 10)
		w := NewGenerator(opts).Generate()

		start := w.Map.Get(w.Start)
		if start == nil {
			t.Fatalf("seed %d: start %v is not a generated tile", seed, w.Start)
		}

		tier1 := func(tile *Tile) bool {
			return startBiomeOK(tile.Biome) &&
				tile.Elevation >= startMinElevation && tile.Elevation <= startMaxElevation &&
				tile.Moisture >= startMinMoisture &&
				tile.Temperature >= startMinTemp && tile.Temperature <= startMaxTemp &&
				centerDistance(tile.Coord) <= float64(opts.Radius)*startCentralFactor
		}
		tier2 := func(tile *Tile) bool {
			return startBiomeOK(tile.Biome) &&
				centerDistance(tile.Coord) <= float64(opts.Radius)*startRelaxedFactor
		}

		anyTier1 := false
		anyTier2 := false
		for _, tile := range w.Map.Tiles {
			if tier1(tile) {
				anyTier1 = true
			}
			if tier2(tile) {
				anyTier2 = true
			}
		}

		switch {
		case anyTier1:
			if !tier1(start) {
				t.Errorf("seed %d: tier-1 candidates exist but start %v fails the base constraints", seed, w.Start)
			}
		case anyTier2:
			if !tier2(start) {
				t.Errorf("seed %d: tier-2 candidates exist but start %v fails the relaxed constraints", seed, w.Start)
			}
		default:
			// Final fallback: nothing may be strictly closer to center.
			for _, tile := range w.Map.Tiles {
				if centerDistance(tile.Coord) < centerDistance(w.Start) {
					t.Errorf("seed %d: start %v is not the closest tile to center", seed, w.Start)
					break
				}
			}
		}
	}
}

func TestLeyConduitsPlaced(t *testing.T) {
	// Mountainous defaults should produce at least one traced conduit.
	opts := genOptions(42, 12)
	w := NewGenerator(opts).Generate()

	conduits := 0
	for _, tile := range w.Map.Tiles {
		for _, f := range tile.Features {
			if f.Type == FeatureLeyConduit {
				conduits++
			}
		}
	}
	if conduits == 0 {
		t.Skip("no tiles above the source elevation for this seed")
	}
}

func TestSingleTileWorld(t *testing.T) {
	w := NewGenerator(genOptions(5, 0)).Generate()
	if w.Map.TileCount() != 1 {
		t.Fatalf("radius-0 world has %d tiles", w.Map.TileCount())
	}
	if w.Start != (HexCoord{}) {
		t.Errorf("radius-0 start = %v, want origin", w.Start)
	}
	tile := w.Map.Get(w.Start)
	if !tile.Discovered || !tile.Explored || tile.Visibility != 1.0 {
		t.Error("single tile not fully revealed")
	}
}

// Domain noise fields — elevation, moisture, temperature, resource density.
// Each field samples the shared noise engine at a large fixed translation so
// the fields stay decorrelated, and memoizes per coordinate: region
// resolution and smoothing revisit the same tiles many times.
// See design doc Section 3.2.
package world

import (
	"math"

	"github.com/talgya/crystalvale/internal/noise"
)

// Per-field sample offsets. Shared noise table, disjoint neighborhoods.
var (
	elevationOffset   = [2]float64{1000, 1000}
	rangeOffset       = [2]float64{1500, -2200} // secondary mountain field
	ridgeOffset       = [2]float64{-3100, 700}
	moistureOffset    = [2]float64{2000, -2000}
	flowOffset        = [2]float64{5000, 5000}
	temperatureOffset = [2]float64{3000, -3000}
	densityOffset     = [2]float64{4000, 4000}
)

// latitudeRefRings is the fixed reference half-height the temperature
// latitude term normalizes against, independent of the configured radius.
// Kept as-is: changing it would change every existing world.
const latitudeRefRings = 50.0

// flowChannelLevel is the flow-field sample below which a tile counts as
// lying in an energy channel for the moisture boost.
const flowChannelLevel = 0.35

// Fields evaluates the domain noise fields for one generation run.
// Not safe for concurrent use; each goroutine gets its own instance.
type Fields struct {
	opts  *Options
	noise *noise.Noise

	elevation   map[HexCoord]float64
	moisture    map[HexCoord]float64
	temperature map[HexCoord]float64
	density     map[HexCoord]float64
}

// NewFields creates a field evaluator over the given noise engine.
func NewFields(opts *Options, n *noise.Noise) *Fields {
	return &Fields{
		opts:        opts,
		noise:       n,
		elevation:   make(map[HexCoord]float64),
		moisture:    make(map[HexCoord]float64),
		temperature: make(map[HexCoord]float64),
		density:     make(map[HexCoord]float64),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// unit maps noise output [-1,1] to [0,1].
func unit(v float64) float64 {
	return (v + 1) / 2
}

// Elevation returns the tile elevation in [0, 1].
func (f *Fields) Elevation(c HexCoord) float64 {
	if v, ok := f.elevation[c]; ok {
		return v
	}

	x, y := toCartesian(c)
	o := f.opts.Elevation
	e := unit(f.noise.FBM2(
		(x+elevationOffset[0])/o.Scale, (y+elevationOffset[1])/o.Scale,
		o.Octaves, o.Persistence, o.Lacunarity, o.Crystalline,
	))

	// Secondary range field, blended in only where it spikes: mountains
	// arrive as discrete ranges instead of uniform bumpiness.
	if o.MountainBias > 0 {
		m := unit(f.noise.FBM2(
			(x+rangeOffset[0])/o.Scale, (y+rangeOffset[1])/o.Scale,
			o.Octaves, o.Persistence, o.Lacunarity, 0,
		))
		if m > o.MountainThreshold {
			w := o.MountainBias * (m - o.MountainThreshold) / (1 - o.MountainThreshold)
			e += (m - e) * w
		}
	}

	if o.RidgeWeight > 0 && e > o.RidgeThreshold {
		ridge := f.noise.Ridge2(
			(x+ridgeOffset[0])/o.Scale, (y+ridgeOffset[1])/o.Scale,
			o.RidgeSharpness,
		)
		e += ridge * o.RidgeWeight * (e - o.RidgeThreshold)
	}

	if o.PlateauSteps > 1 {
		steps := float64(o.PlateauSteps)
		band := math.Floor(clamp01(e) * steps)
		if band >= steps {
			band = steps - 1
		}
		e = (band + 0.5) / steps
	}

	e = clamp01(e)
	f.elevation[c] = e
	return e
}

// Moisture returns the tile moisture in [0, 1]. Tiles sitting in low
// samples of the direction-biased flow field read as wetter: energy
// channels moisten their surroundings.
func (f *Fields) Moisture(c HexCoord) float64 {
	if v, ok := f.moisture[c]; ok {
		return v
	}

	x, y := toCartesian(c)
	o := f.opts.Moisture
	m := unit(f.noise.FBM2(
		(x+moistureOffset[0])/o.Scale, (y+moistureOffset[1])/o.Scale,
		o.Octaves, o.Persistence, o.Lacunarity, o.Crystalline,
	))

	if o.FlowInfluence > 0 {
		ch := f.flowField(x, y)
		if ch < flowChannelLevel {
			m += (flowChannelLevel - ch) / flowChannelLevel * o.FlowInfluence
		}
	}

	m = clamp01(m)
	f.moisture[c] = m
	return m
}

// flowField samples the secondary, direction-biased FBM the moisture boost
// and channel look derive from. Low values mark channels.
func (f *Fields) flowField(x, y float64) float64 {
	o := f.opts.Moisture
	bias := f.opts.Flow.DirectionBias
	fx := (x + y*bias + flowOffset[0]) / o.Scale
	fy := (y - x*bias + flowOffset[1]) / o.Scale
	return unit(f.noise.FBM2(fx, fy, 2, 0.5, 2.0, f.opts.Flow.Crystalline))
}

// Temperature returns the tile temperature in [0, 1]. Base noise mixes
// with a latitude term from the r coordinate, then elevation cools it.
func (f *Fields) Temperature(c HexCoord) float64 {
	if v, ok := f.temperature[c]; ok {
		return v
	}

	x, y := toCartesian(c)
	o := f.opts.Temperature
	base := unit(f.noise.FBM2(
		(x+temperatureOffset[0])/o.Scale, (y+temperatureOffset[1])/o.Scale,
		o.Octaves, o.Persistence, o.Lacunarity, 0,
	))

	lat := clamp01(1 - math.Abs(float64(c.R))/latitudeRefRings)
	t := base*(1-o.LatitudeWeight) + lat*o.LatitudeWeight
	t -= f.Elevation(c) * o.ElevationFactor

	t = clamp01(t)
	f.temperature[c] = t
	return t
}

// Density returns the resource-density field in [0, 1]. Clustering pushes
// mass into pockets via a contrast curve.
func (f *Fields) Density(c HexCoord) float64 {
	if v, ok := f.density[c]; ok {
		return v
	}

	x, y := toCartesian(c)
	o := f.opts.Density
	d := unit(f.noise.FBM2(
		(x+densityOffset[0])/o.Scale, (y+densityOffset[1])/o.Scale,
		2, 0.5, 2.0, 0,
	))
	d = math.Pow(d, 1+2*o.Clustering)

	f.density[c] = d
	return d
}

// Generation options — every knob the pipeline reads, with full defaults.
// The generator itself does not validate: callers run Validate at the edge
// and the core assumes sane values.
package world

import "fmt"

// Options configures a world generation run. The zero value is not usable;
// start from DefaultOptions and override fields as needed.
type Options struct {
	Name   string `json:"name" yaml:"name"`
	Seed   int64  `json:"seed" yaml:"seed"` // low 32 bits drive every stream
	Radius int    `json:"radius" yaml:"radius"`

	Elevation   ElevationOptions   `json:"elevation" yaml:"elevation"`
	Moisture    MoistureOptions    `json:"moisture" yaml:"moisture"`
	Temperature TemperatureOptions `json:"temperature" yaml:"temperature"`
	Density     DensityOptions     `json:"density" yaml:"density"`
	Flow        FlowOptions        `json:"flow" yaml:"flow"`

	Features  FeatureOptions  `json:"features" yaml:"features"`
	Resources ResourceOptions `json:"resources" yaml:"resources"`
	Regions   RegionOptions   `json:"regions" yaml:"regions"`

	// Smoothing is the biome-boundary smoothing strength in [0, 1].
	// 0 disables the smoothing pass entirely.
	Smoothing float64 `json:"smoothing" yaml:"smoothing"`
}

// ElevationOptions shapes the elevation field.
type ElevationOptions struct {
	Scale       float64 `json:"scale" yaml:"scale"`
	Octaves     int     `json:"octaves" yaml:"octaves"`
	Persistence float64 `json:"persistence" yaml:"persistence"`
	Lacunarity  float64 `json:"lacunarity" yaml:"lacunarity"`
	Crystalline float64 `json:"crystalline" yaml:"crystalline"`

	// MountainBias weights a second, offset FBM sample in wherever it
	// exceeds MountainThreshold, producing discrete ranges.
	MountainBias      float64 `json:"mountain_bias" yaml:"mountain_bias"`
	MountainThreshold float64 `json:"mountain_threshold" yaml:"mountain_threshold"`

	// Ridge noise folds in above RidgeThreshold; 0 weight disables it.
	RidgeWeight    float64 `json:"ridge_weight" yaml:"ridge_weight"`
	RidgeSharpness float64 `json:"ridge_sharpness" yaml:"ridge_sharpness"`
	RidgeThreshold float64 `json:"ridge_threshold" yaml:"ridge_threshold"`

	// PlateauSteps > 1 quantizes elevation into stepped bands.
	PlateauSteps int `json:"plateau_steps" yaml:"plateau_steps"`
}

// MoistureOptions shapes the moisture field.
type MoistureOptions struct {
	Scale       float64 `json:"scale" yaml:"scale"`
	Octaves     int     `json:"octaves" yaml:"octaves"`
	Persistence float64 `json:"persistence" yaml:"persistence"`
	Lacunarity  float64 `json:"lacunarity" yaml:"lacunarity"`
	Crystalline float64 `json:"crystalline" yaml:"crystalline"`

	// FlowInfluence raises moisture near low samples of the
	// direction-biased flow field (tiles close to energy channels).
	FlowInfluence float64 `json:"flow_influence" yaml:"flow_influence"`
}

// TemperatureOptions shapes the temperature field.
type TemperatureOptions struct {
	Scale       float64 `json:"scale" yaml:"scale"`
	Octaves     int     `json:"octaves" yaml:"octaves"`
	Persistence float64 `json:"persistence" yaml:"persistence"`
	Lacunarity  float64 `json:"lacunarity" yaml:"lacunarity"`

	// LatitudeWeight mixes in a term driven by the r coordinate.
	LatitudeWeight float64 `json:"latitude_weight" yaml:"latitude_weight"`
	// ElevationFactor cools high ground: t -= elevation * factor.
	ElevationFactor float64 `json:"elevation_factor" yaml:"elevation_factor"`
}

// DensityOptions shapes the resource-density field.
type DensityOptions struct {
	Scale      float64 `json:"scale" yaml:"scale"`
	Clustering float64 `json:"clustering" yaml:"clustering"` // 0 = even, 1 = pocketed
}

// FlowOptions controls energy-flow channel sampling and path tracing.
type FlowOptions struct {
	DirectionBias float64 `json:"direction_bias" yaml:"direction_bias"`
	Crystalline   float64 `json:"crystalline" yaml:"crystalline"`
	BranchChance  float64 `json:"branch_chance" yaml:"branch_chance"`
	MaxLength     int     `json:"max_length" yaml:"max_length"`
	Sources       int     `json:"sources" yaml:"sources"`
}

// FeatureOptions controls feature placement.
type FeatureOptions struct {
	Density float64 `json:"density" yaml:"density"` // base spawn chance per tile
}

// ResourceOptions controls resource placement.
type ResourceOptions struct {
	Density  float64 `json:"density" yaml:"density"`   // base spawn chance per tile
	Richness float64 `json:"richness" yaml:"richness"` // scales base quantities
}

// RegionOptions controls biome-bias region creation.
type RegionOptions struct {
	Count        int     `json:"count" yaml:"count"`
	BaseRadius   float64 `json:"base_radius" yaml:"base_radius"`
	RadiusJitter float64 `json:"radius_jitter" yaml:"radius_jitter"` // ±fraction
	BlendFactor  float64 `json:"blend_factor" yaml:"blend_factor"`
}

// DefaultOptions returns the fully specified default configuration.
func DefaultOptions() Options {
	return Options{
		Name:   "Crystalvale",
		Seed:   0,
		Radius: 24,
		Elevation: ElevationOptions{
			Scale:             14,
			Octaves:           4,
			Persistence:       0.5,
			Lacunarity:        2.0,
			Crystalline:       0.35,
			MountainBias:      0.6,
			MountainThreshold: 0.62,
			RidgeWeight:       0.35,
			RidgeSharpness:    0.5,
			RidgeThreshold:    0.55,
			PlateauSteps:      0,
		},
		Moisture: MoistureOptions{
			Scale:         18,
			Octaves:       3,
			Persistence:   0.5,
			Lacunarity:    2.0,
			Crystalline:   0.2,
			FlowInfluence: 0.25,
		},
		Temperature: TemperatureOptions{
			Scale:           22,
			Octaves:         3,
			Persistence:     0.5,
			Lacunarity:      2.0,
			LatitudeWeight:  0.45,
			ElevationFactor: 0.3,
		},
		Density: DensityOptions{
			Scale:      10,
			Clustering: 0.5,
		},
		Flow: FlowOptions{
			DirectionBias: 0.35,
			Crystalline:   0.6,
			BranchChance:  0.15,
			MaxLength:     24,
			Sources:       3,
		},
		Features:  FeatureOptions{Density: 0.22},
		Resources: ResourceOptions{Density: 0.30, Richness: 1.0},
		Regions: RegionOptions{
			Count:        7,
			BaseRadius:   7,
			RadiusJitter: 0.3,
			BlendFactor:  0.5,
		},
		Smoothing: 0.5,
	}
}

// Validate rejects options the pipeline cannot run with. It is the caller's
// job to invoke this before generation; the core assumes it passed.
func (o *Options) Validate() error {
	if o.Radius < 0 {
		return fmt.Errorf("radius must be >= 0, got %d", o.Radius)
	}
	if o.Elevation.Octaves < 1 || o.Moisture.Octaves < 1 || o.Temperature.Octaves < 1 {
		return fmt.Errorf("octave counts must be >= 1")
	}
	if o.Elevation.Scale <= 0 || o.Moisture.Scale <= 0 || o.Temperature.Scale <= 0 || o.Density.Scale <= 0 {
		return fmt.Errorf("field scales must be > 0")
	}
	if o.Smoothing < 0 || o.Smoothing > 1 {
		return fmt.Errorf("smoothing must be in [0,1], got %g", o.Smoothing)
	}
	if o.Regions.Count < 0 {
		return fmt.Errorf("regions.count must be >= 0, got %d", o.Regions.Count)
	}
	return nil
}

// Package rng provides the deterministic pseudo-random engine that every
// stochastic choice in world generation draws from. Two engines built from
// the same seed always produce the same sequence, which is what lets
// independent clients regenerate a world instead of transmitting it.
// See design doc Section 2.1.
package rng

// Classic 32-bit LCG constants (Numerical Recipes). These are part of the
// world format: changing them changes every generated world.
const (
	multiplier uint32 = 1664525
	increment  uint32 = 1013904223
)

// Engine is a 32-bit linear congruential generator.
// State update: state = (multiplier*state + increment) mod 2^32.
type Engine struct {
	state uint32
}

// New creates an engine from a world seed. Only the low 32 bits matter.
func New(seed int64) *Engine {
	return &Engine{state: uint32(seed)}
}

// Next advances the engine and returns a value in [0, 1).
func (e *Engine) Next() float64 {
	e.state = e.state*multiplier + increment
	return float64(e.state) / 4294967296.0
}

// NextInt returns an integer in [min, max], both ends inclusive.
func (e *Engine) NextInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(e.Next()*float64(max-min+1))
}

// NextFloat returns a float in [min, max).
func (e *Engine) NextFloat(min, max float64) float64 {
	return min + e.Next()*(max-min)
}

// Shuffle performs a Fisher–Yates shuffle of n elements via swap.
func (e *Engine) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := e.NextInt(0, i)
		swap(i, j)
	}
}

// Derive returns a brand-new engine whose seed combines the current state
// with a numeric salt. Derivation reads the state without advancing it, so
// the same (state, salt) pair always yields the same child stream.
func (e *Engine) Derive(salt uint32) *Engine {
	child := e.state*multiplier + increment + salt*0x9e3779b9
	child ^= child >> 16
	return &Engine{state: child}
}

// DeriveString derives a child engine from a string salt. String salts are
// hashed by summing byte values, matching Derive for the resulting number.
func (e *Engine) DeriveString(salt string) *Engine {
	var sum uint32
	for i := 0; i < len(salt); i++ {
		sum += uint32(salt[i])
	}
	return e.Derive(sum)
}

// Pick returns a uniformly chosen element. The slice is not mutated.
// Calling Pick on an empty slice returns the zero value.
func Pick[T any](e *Engine, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[e.NextInt(0, len(items)-1)]
}

// WeightedPick returns an element chosen in proportion to its weight via a
// linear scan. Neither slice is mutated. Missing or non-positive weights
// count as zero; if every weight is zero the last element wins.
func WeightedPick[T any](e *Engine, items []T, weights []float64) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	var total float64
	for i := range items {
		if i < len(weights) && weights[i] > 0 {
			total += weights[i]
		}
	}
	if total <= 0 {
		return items[len(items)-1]
	}
	target := e.Next() * total
	for i := range items {
		if i < len(weights) && weights[i] > 0 {
			target -= weights[i]
			if target < 0 {
				return items[i]
			}
		}
	}
	return items[len(items)-1]
}

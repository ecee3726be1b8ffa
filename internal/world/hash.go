package world

// Coordinate hashing for stable per-tile draws. Every decision that is
// keyed to a single coordinate (tie-breaks, smoothing rolls, feature and
// resource streams, variation) goes through these, so tile generation order
// can never perturb the result.

// Stream tags keep per-coordinate draws for different concerns independent.
const (
	streamTieBreak uint32 = iota + 1
	streamSmoothing
	streamFeature
	streamResource
	streamVariation
	streamRegionBias
)

// mix32 avalanches a 32-bit input (murmur-finalizer style).
func mix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// coordHash returns a stable hash for (seed, q, r) on a given stream.
func coordHash(seed uint32, c HexCoord, stream uint32) uint32 {
	h := seed ^ mix32(stream)
	h ^= uint32(int32(c.Q)) * 0x9e3779b1
	h ^= uint32(int32(c.R)) * 0x85ebca6b
	return mix32(h)
}

// coordUnit maps coordHash to [0, 1).
func coordUnit(seed uint32, c HexCoord, stream uint32) float64 {
	return float64(coordHash(seed, c, stream)) / 4294967296.0
}

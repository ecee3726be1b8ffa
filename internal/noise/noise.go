// Package noise implements the 2D simplex primitive and the fractal, ridge,
// and crystalline derivatives the terrain fields are built from.
// The permutation table is shuffled by the same LCG family as the gameplay
// engine so a single 32-bit seed reproduces the world bit-for-bit.
// See design doc Section 2.2.
package noise

import (
	"math"

	"github.com/talgya/crystalvale/internal/rng"
)

// Skew factors for 2D simplex: F2 = (sqrt(3)-1)/2, G2 = (3-sqrt(3))/6.
const (
	f2 = 0.3660254037844386
	g2 = 0.21132486540518713
)

// defaultFacets is the wedge count used when FBM layers blend in the
// crystalline variant.
const defaultFacets = 6

var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Noise is a seeded 2D simplex noise generator.
type Noise struct {
	perm [512]uint8
}

// New builds a generator whose permutation table is Fisher–Yates shuffled
// by an engine derived from the world seed. The derivation salt keeps the
// table stream independent from gameplay randomness sharing the same seed.
func New(seed int64) *Noise {
	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}

	shuffler := rng.New(seed).DeriveString("permutation")
	shuffler.Shuffle(256, func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})

	n := &Noise{}
	for i := 0; i < 256; i++ {
		n.perm[i] = base[i]
		n.perm[i+256] = base[i]
	}
	return n
}

// Eval2 returns 2D simplex noise at (x, y) in [-1, 1].
func (n *Noise) Eval2(x, y float64) float64 {
	// Skew input space to determine the containing simplex cell.
	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Offsets for the middle corner: lower triangle vs upper triangle.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & 255
	jj := int(j) & 255

	gi0 := n.perm[ii+int(n.perm[jj])] & 7
	gi1 := n.perm[ii+i1+int(n.perm[jj+j1])] & 7
	gi2 := n.perm[ii+1+int(n.perm[jj+1])] & 7

	var total float64
	for _, c := range [3]struct {
		x, y float64
		gi   uint8
	}{{x0, y0, gi0}, {x1, y1, gi1}, {x2, y2, gi2}} {
		att := 0.5 - c.x*c.x - c.y*c.y
		if att <= 0 {
			continue
		}
		att *= att
		g := grad2[c.gi]
		total += att * att * (g[0]*c.x + g[1]*c.y)
	}

	// Scale to cover roughly [-1, 1].
	return 70.0 * total
}

// FBM2 sums octaves of noise at rising frequency and falling amplitude,
// normalized by the maximum amplitude sum so output stays in [-1, 1].
// crystalline > 0 swaps each layer for the faceted variant.
func (n *Noise) FBM2(x, y float64, octaves int, persistence, lacunarity, crystalline float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxAmp := 0.0

	for i := 0; i < octaves; i++ {
		sample := 0.0
		if crystalline > 0 {
			sample = n.Crystal2(x*frequency, y*frequency, crystalline, defaultFacets)
		} else {
			sample = n.Eval2(x*frequency, y*frequency)
		}
		total += sample * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}

// Ridge2 folds noise via 1-|n| and exponentiates by 1+4*sharpness,
// producing narrow crests. Output is in [0, 1].
func (n *Noise) Ridge2(x, y, sharpness float64) float64 {
	v := 1 - math.Abs(n.Eval2(x, y))
	if v < 0 {
		v = 0
	}
	return math.Pow(v, 1+4*sharpness)
}

// Crystal2 blends plain noise with an angularly faceted resample: the
// coordinate's polar angle is quantized into facet wedges, noise is
// resampled at the wedge center, and the blend is contrast-sharpened away
// from the midpoint so facet boundaries read as hard edges.
func (n *Noise) Crystal2(x, y, angularity float64, facets int) float64 {
	plain := n.Eval2(x, y)
	if angularity <= 0 || facets <= 0 {
		return plain
	}

	radius := math.Hypot(x, y)
	angle := math.Atan2(y, x)
	wedge := 2 * math.Pi / float64(facets)
	quantized := math.Floor(angle/wedge)*wedge + wedge/2

	faceted := n.Eval2(radius*math.Cos(quantized), radius*math.Sin(quantized))
	v := plain + (faceted-plain)*angularity

	sharpened := math.Copysign(math.Pow(math.Abs(v), 1/(1+angularity)), v)
	if sharpened > 1 {
		return 1
	}
	if sharpened < -1 {
		return -1
	}
	return sharpened
}

// Package world provides the hex grid, tile model, and the deterministic
// generation pipeline. Uses axial coordinates (q, r) for the hex grid.
// See design doc Section 3.
package world

import "math"

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Add returns the coordinate offset by d.
func (h HexCoord) Add(d HexCoord) HexCoord {
	return HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
}

// HexNeighborDirections defines the six neighbor offsets in axial
// coordinates, counterclockwise starting at east.
var HexNeighborDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexNeighborDirections {
		result[i] = h.Add(dir)
	}
	return result
}

// Distance returns the hex distance between two coordinates
// (max of the absolute cube-coordinate differences).
func Distance(a, b HexCoord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	ds := a.S() - b.S()
	if dq < 0 {
		dq = -dq
	}
	if dr < 0 {
		dr = -dr
	}
	if ds < 0 {
		ds = -ds
	}
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// Ring returns the coordinates exactly dist steps from center, walking the
// six sides of the hexagonal ring. Ring(c, 0) is just the center.
func Ring(center HexCoord, dist int) []HexCoord {
	if dist <= 0 {
		return []HexCoord{center}
	}
	coords := make([]HexCoord, 0, 6*dist)
	cur := HexCoord{
		Q: center.Q + HexNeighborDirections[4].Q*dist,
		R: center.R + HexNeighborDirections[4].R*dist,
	}
	for side := 0; side < 6; side++ {
		for step := 0; step < dist; step++ {
			coords = append(coords, cur)
			cur = cur.Add(HexNeighborDirections[side])
		}
	}
	return coords
}

// Line returns the hexes on the straight line from a to b inclusive,
// by lerping in cube space and rounding each sample to the nearest hex.
func Line(a, b HexCoord) []HexCoord {
	n := Distance(a, b)
	if n == 0 {
		return []HexCoord{a}
	}
	coords := make([]HexCoord, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		q := float64(a.Q) + (float64(b.Q)-float64(a.Q))*t
		r := float64(a.R) + (float64(b.R)-float64(a.R))*t
		coords = append(coords, roundHex(q, r))
	}
	return coords
}

// roundHex rounds fractional axial coordinates to the nearest hex using
// cube rounding: the component with the largest rounding error is
// reconstructed from the other two.
func roundHex(q, r float64) HexCoord {
	s := -q - r
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return HexCoord{Q: int(rq), R: int(rr)}
}

const sqrt3over2 = 0.8660254037844386

// toCartesian converts an axial coordinate to continuous space for noise
// sampling and distance measures: x = q + r/2, y = r*sqrt(3)/2.
func toCartesian(c HexCoord) (x, y float64) {
	return float64(c.Q) + float64(c.R)*0.5, float64(c.R) * sqrt3over2
}

// fromCartesian inverts toCartesian and rounds to the nearest hex.
func fromCartesian(x, y float64) HexCoord {
	r := y / sqrt3over2
	q := x - r*0.5
	return roundHex(q, r)
}

package world

import "testing"

func TestDistance(t *testing.T) {
	origin := HexCoord{}
	cases := []struct {
		a, b HexCoord
		want int
	}{
		{origin, origin, 0},
		{origin, HexCoord{Q: 1, R: 0}, 1},
		{origin, HexCoord{Q: 0, R: -3}, 3},
		{origin, HexCoord{Q: 2, R: 2}, 4},
		{HexCoord{Q: -2, R: 1}, HexCoord{Q: 3, R: -1}, 5},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := Distance(c.b, c.a); got != c.want {
			t.Errorf("Distance(%v, %v) = %d, want %d (asymmetric)", c.b, c.a, got, c.want)
		}
	}
}

func TestNeighborsAreAdjacent(t *testing.T) {
	c := HexCoord{Q: 3, R: -2}
	seen := make(map[HexCoord]bool)
	for _, n := range c.Neighbors() {
		if Distance(c, n) != 1 {
			t.Errorf("neighbor %v at distance %d", n, Distance(c, n))
		}
		if seen[n] {
			t.Errorf("duplicate neighbor %v", n)
		}
		seen[n] = true
	}
}

func TestRing(t *testing.T) {
	center := HexCoord{Q: 1, R: 1}

	if got := Ring(center, 0); len(got) != 1 || got[0] != center {
		t.Fatalf("Ring(c, 0) = %v, want just the center", got)
	}

	for dist := 1; dist <= 4; dist++ {
		ring := Ring(center, dist)
		if len(ring) != 6*dist {
			t.Errorf("Ring(c, %d) has %d coords, want %d", dist, len(ring), 6*dist)
		}
		seen := make(map[HexCoord]bool)
		for _, c := range ring {
			if Distance(center, c) != dist {
				t.Errorf("ring %d coord %v at distance %d", dist, c, Distance(center, c))
			}
			if seen[c] {
				t.Errorf("ring %d repeats %v", dist, c)
			}
			seen[c] = true
		}
	}
}

func TestLine(t *testing.T) {
	a := HexCoord{Q: -2, R: 3}
	b := HexCoord{Q: 4, R: -1}

	line := Line(a, b)
	if line[0] != a || line[len(line)-1] != b {
		t.Fatalf("Line endpoints %v..%v, want %v..%v", line[0], line[len(line)-1], a, b)
	}
	if len(line) != Distance(a, b)+1 {
		t.Errorf("Line length %d, want %d", len(line), Distance(a, b)+1)
	}
	for i := 1; i < len(line); i++ {
		if Distance(line[i-1], line[i]) != 1 {
			t.Errorf("Line steps %v -> %v (distance %d)", line[i-1], line[i], Distance(line[i-1], line[i]))
		}
	}

	if got := Line(a, a); len(got) != 1 || got[0] != a {
		t.Errorf("Line(a, a) = %v, want [a]", got)
	}
}

func TestCartesianRoundTrip(t *testing.T) {
	for q := -10; q <= 10; q++ {
		for r := -10; r <= 10; r++ {
			c := HexCoord{Q: q, R: r}
			x, y := toCartesian(c)
			if got := fromCartesian(x, y); got != c {
				t.Errorf("fromCartesian(toCartesian(%v)) = %v", c, got)
			}
		}
	}
}

func TestTileCountForRadius(t *testing.T) {
	cases := map[int]int{0: 1, 1: 7, 2: 19, 10: 331}
	for radius, want := range cases {
		if got := TileCountForRadius(radius); got != want {
			t.Errorf("TileCountForRadius(%d) = %d, want %d", radius, got, want)
		}
	}
}

package noise

import (
	"math"
	"testing"
)

func TestEval2Determinism(t *testing.T) {
	n1 := New(12345)
	n2 := New(12345)
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.53
		if n1.Eval2(x, y) != n2.Eval2(x, y) {
			t.Fatalf("Eval2 not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestEval2Range(t *testing.T) {
	n := New(42)
	for i := 0; i < 10000; i++ {
		x := float64(i)*0.13 - 600
		y := float64(i)*0.07 - 350
		v := n.Eval2(x, y)
		if v < -1.5 || v > 1.5 {
			t.Errorf("Eval2(%f, %f) = %f, out of expected range", x, y, v)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	n1 := New(1)
	n2 := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.5
		y := float64(i) * 0.3
		if n1.Eval2(x, y) == n2.Eval2(x, y) {
			same++
		}
	}
	if same > 30 {
		t.Errorf("different seeds produced %d/100 identical values", same)
	}
}

func TestFBM2Range(t *testing.T) {
	n := New(7)
	for i := 0; i < 2000; i++ {
		x := float64(i)*0.11 - 100
		y := float64(i)*0.07 - 70
		v := n.FBM2(x, y, 4, 0.5, 2.0, 0)
		if v < -1.01 || v > 1.01 {
			t.Errorf("FBM2(%f, %f) = %f, want [-1, 1]", x, y, v)
		}
	}
}

func TestFBM2CrystallineRange(t *testing.T) {
	n := New(7)
	for i := 0; i < 2000; i++ {
		x := float64(i)*0.11 - 100
		y := float64(i)*0.07 - 70
		v := n.FBM2(x, y, 4, 0.5, 2.0, 0.6)
		if v < -1.01 || v > 1.01 {
			t.Errorf("crystalline FBM2(%f, %f) = %f, want [-1, 1]", x, y, v)
		}
	}
}

func TestFBM2Smoothness(t *testing.T) {
	n := New(77)
	prev := n.FBM2(0, 0, 4, 0.5, 2.0, 0)
	maxDiff := 0.0
	for i := 1; i < 1000; i++ {
		v := n.FBM2(float64(i)*0.01, 0, 4, 0.5, 2.0, 0)
		if d := math.Abs(v - prev); d > maxDiff {
			maxDiff = d
		}
		prev = v
	}
	if maxDiff > 0.5 {
		t.Errorf("FBM2 max step difference = %f, expected smooth transitions", maxDiff)
	}
}

func TestRidge2Range(t *testing.T) {
	n := New(9)
	for i := 0; i < 2000; i++ {
		x := float64(i)*0.17 - 150
		y := float64(i)*0.05 - 40
		v := n.Ridge2(x, y, 0.5)
		if v < 0 || v > 1 {
			t.Errorf("Ridge2(%f, %f) = %f, want [0, 1]", x, y, v)
		}
	}
}

func TestCrystal2ZeroAngularityIsPlain(t *testing.T) {
	n := New(13)
	for i := 0; i < 100; i++ {
		x := float64(i)*0.3 - 15
		y := float64(i)*0.2 - 10
		if n.Crystal2(x, y, 0, 6) != n.Eval2(x, y) {
			t.Fatalf("Crystal2 with zero angularity differs from Eval2 at (%f, %f)", x, y)
		}
	}
}

func TestCrystal2Range(t *testing.T) {
	n := New(13)
	for i := 0; i < 2000; i++ {
		x := float64(i)*0.19 - 180
		y := float64(i)*0.23 - 220
		v := n.Crystal2(x, y, 0.8, 6)
		if v < -1 || v > 1 {
			t.Errorf("Crystal2(%f, %f) = %f, want [-1, 1]", x, y, v)
		}
	}
}

package vgcore

import (
	"math"
	"sort"
	"testing"
)

func approxRootSet(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d roots %v, want %d roots %v", len(got), got, len(want), want)
	}
	g := append([]float64(nil), got...)
	w := append([]float64(nil), want...)
	sort.Float64s(g)
	sort.Float64s(w)
	for i := range g {
		if math.Abs(g[i]-w[i]) > eps {
			t.Errorf("root[%d] = %v, want %v (got=%v want=%v)", i, g[i], w[i], got, want)
		}
	}
}

func TestSolveQuadraticTwoRoots(t *testing.T) {
	// x^2 - 5 = 0
	got := SolveQuadratic(1, 0, -5)
	approxRootSet(t, got, []float64{-math.Sqrt(5), math.Sqrt(5)}, 1e-9)
}

func TestSolveQuadraticNoRealRoots(t *testing.T) {
	got := SolveQuadratic(1, 0, 5)
	if got != nil {
		t.Errorf("SolveQuadratic(1,0,5) = %v, want nil (no real roots)", got)
	}
}

func TestSolveQuadraticDoubleRoot(t *testing.T) {
	// (x-2)^2 = x^2 -4x +4
	got := SolveQuadratic(1, -4, 4)
	approxRootSet(t, got, []float64{2}, 1e-9)
}

func TestSolveQuadraticLinearFallback(t *testing.T) {
	// a == 0: 2x + 4 = 0 -> x = -2
	got := SolveQuadratic(0, 2, 4)
	approxRootSet(t, got, []float64{-2}, 1e-9)
}

func TestSolveCubicThreeRoots(t *testing.T) {
	// (x-1)(x-2)(x-3) = x^3 -6x^2 +11x -6
	got := SolveCubic(1, -6, 11, -6)
	approxRootSet(t, got, []float64{1, 2, 3}, 1e-6)
}

func TestSolveCubicOneRealRoot(t *testing.T) {
	// x^3 - 1 = 0 has one real root (x=1) and two complex
	got := SolveCubic(1, 0, 0, -1)
	approxRootSet(t, got, []float64{1}, 1e-9)
}

func TestSolveQuadraticInUnitIntervalFiltersOutOfRange(t *testing.T) {
	// roots at -5 and 5; neither is in [0,1]
	got := SolveQuadraticInUnitInterval(1, 0, -25)
	if got != nil {
		t.Errorf("expected no roots in [0,1], got %v", got)
	}
}

func TestSolveQuadraticInUnitIntervalKeepsInRange(t *testing.T) {
	// roots at -0.5 and 0.5; only 0.5 is in [0,1]
	got := SolveQuadraticInUnitInterval(4, 0, -1)
	approxRootSet(t, got, []float64{0.5}, 1e-9)
}

func TestFilterRootsToUnitIntervalClampsNearBoundary(t *testing.T) {
	got := filterRootsToUnitInterval([]float64{-1e-13, 1 + 1e-13, 0.5})
	approxRootSet(t, got, []float64{0, 1, 0.5}, 1e-12)
}

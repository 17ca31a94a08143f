package level

import (
	"math"
	"testing"
)

func TestFindRoots(t *testing.T) {
	tests := []struct {
		name     string
		p        Polynomial
		expected []float64
	}{
		{"x^2-1", Polynomial{1, 0, -1}, []float64{-1, 1}},
		{"-x^2+1", Polynomial{-1, 0, 1}, []float64{-1, 1}},
		{"cubic 1,2,3", Polynomial{1, -6, 11, -6}, []float64{1, 2, 3}},
		{"x^2-2", Polynomial{1, 0, -2}, []float64{-math.Sqrt2, math.Sqrt2}},
		{"shifted quadratic", Polynomial{1, -3.3, 2.42}, []float64{1.1, 2.2}},
		{"linear", Polynomial{2, -1}, []float64{0.5}},
		{"no real roots", Polynomial{1, 0, 1}, nil},
		{"constant", Polynomial{1}, nil},
		{"roots outside window", Polynomial{1, 0, -400}, nil},
		{"zero at first sample", Polynomial{1, 10}, []float64{-10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindRoots(tc.p)
			if len(got) != len(tc.expected) {
				t.Fatalf("FindRoots() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if math.Abs(got[i]-tc.expected[i]) > 1e-6 {
					t.Errorf("root %d = %v, expected %v (within 1e-6)", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestFindRootsAscending(t *testing.T) {
	roots := FindRoots(FromRoots([]int{3, -4, 0, 1}))
	for i := 1; i < len(roots); i++ {
		if roots[i] <= roots[i-1] {
			t.Errorf("roots not ascending: %v", roots)
		}
	}
}

func TestBisectConverges(t *testing.T) {
	p := Polynomial{1, 0, -1}
	tests := []struct {
		start, end, expected float64
	}{
		{-1.1, -0.9, -1},
		{0.9, 1.1, 1},
		{1.1, 0.9, 1}, // bracket given right to left
	}

	for _, tc := range tests {
		got := bisect(p, tc.start, tc.end)
		if math.Abs(got-tc.expected) > 1e-6 {
			t.Errorf("bisect(%v, %v) = %v, expected %v", tc.start, tc.end, got, tc.expected)
		}
	}
}

func TestValueRange(t *testing.T) {
	lo, hi := ValueRange(Polynomial{1, 0, -1}, -1, 1)
	if math.Abs(lo-(-1)) > 1e-9 {
		t.Errorf("min = %v, expected -1", lo)
	}
	if math.Abs(hi) > 1e-9 {
		t.Errorf("max = %v, expected 0", hi)
	}

	// Seeded with p(from) even when the interval is empty.
	lo, hi = ValueRange(Polynomial{1, 0, -1}, 3, 2)
	if lo != 8 || hi != 8 {
		t.Errorf("empty interval range = (%v, %v), expected (8, 8)", lo, hi)
	}
}

func TestPlotLimits(t *testing.T) {
	lim := PlotLimits(Polynomial{-1, 0, 1}, -1, 1)
	expected := Limits{Min: Point{-2, -1}, Max: Point{2, 2}}

	if math.Abs(lim.Min.X-expected.Min.X) > 1e-9 || math.Abs(lim.Max.X-expected.Max.X) > 1e-9 {
		t.Errorf("x limits = [%v, %v], expected [%v, %v]", lim.Min.X, lim.Max.X, expected.Min.X, expected.Max.X)
	}
	if math.Abs(lim.Min.Y-expected.Min.Y) > 1e-9 || math.Abs(lim.Max.Y-expected.Max.Y) > 1e-3 {
		t.Errorf("y limits = [%v, %v], expected [%v, %v]", lim.Min.Y, lim.Max.Y, expected.Min.Y, expected.Max.Y)
	}
}

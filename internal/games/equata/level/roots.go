package level

import "math"

// Root scan parameters.
const (
	ScanMin  = -10.0
	ScanMax  = 10.0
	ScanStep = 0.1

	bisectMaxIter   = 20
	bisectTolerance = 1e-10

	rangeStep = 0.01
)

// Point is a position in plot space.
type Point struct {
	X, Y float64
}

// Limits is the visible plot rectangle: Min is the lower-left corner, Max the upper-right.
type Limits struct {
	Min, Max Point
}

// nonPositive is the sign policy of the scan: exactly zero counts as negative.
func nonPositive(y float64) bool {
	return y <= 0
}

// FindRoots scans [ScanMin, ScanMax] at ScanStep and refines every sign change
// by bisection. Roots are returned left to right, one per sign change.
func FindRoots(p Polynomial) []float64 {
	var roots []float64

	scan := NewLinSpace(ScanMin, ScanMax, ScanStep)
	prevX, ok := scan.Next()
	if !ok {
		return nil
	}
	prevNeg := nonPositive(p.Eval(prevX))

	for x := range scan.All() {
		neg := nonPositive(p.Eval(x))
		if neg != prevNeg {
			roots = append(roots, bisect(p, prevX, x))
		}
		prevX, prevNeg = x, neg
	}
	return roots
}

// bisect narrows [start, end] around a sign change. It stops after
// bisectMaxIter iterations or once |p(mid)| <= bisectTolerance and returns
// the last midpoint either way.
func bisect(p Polynomial, start, end float64) float64 {
	startNeg := nonPositive(p.Eval(start))
	mid := start
	for range bisectMaxIter {
		mid = (start + end) / 2
		y := p.Eval(mid)
		if math.Abs(y) <= bisectTolerance {
			break
		}
		if nonPositive(y) == startNeg {
			start = mid
		} else {
			end = mid
		}
	}
	return mid
}

// ValueRange samples p over [from, to] at a 0.01 step and returns its extrema.
// The range is seeded with p(from).
func ValueRange(p Polynomial, from, to float64) (lo, hi float64) {
	lo = p.Eval(from)
	hi = lo
	for x := range NewLinSpace(from, to, rangeStep).All() {
		y := p.Eval(x)
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	return lo, hi
}

// PlotLimits derives the plot rectangle for the interval [r0, r1] with a
// one-unit margin on every side.
func PlotLimits(p Polynomial, r0, r1 float64) Limits {
	lo, hi := ValueRange(p, r0, r1)
	return Limits{
		Min: Point{X: r0 - limitMargin, Y: lo - limitMargin},
		Max: Point{X: r1 + limitMargin, Y: hi + limitMargin},
	}
}

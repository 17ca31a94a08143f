package level

import (
	"errors"
	"math/rand"
	"slices"
)

// GenParams configures random level generation for endless play.
type GenParams struct {
	Degree      int     // Polynomial degree (clamped to 2..4)
	BaseTime    float64 // Time budget for a quadratic
	TimePerTerm float64 // Extra seconds per degree above 2
	MaxAttempts int     // Retry limit before giving up
}

// DefaultGenParams returns the generator settings used by endless mode.
func DefaultGenParams() GenParams {
	return GenParams{
		Degree:      2,
		BaseTime:    60,
		TimePerTerm: 20,
		MaxAttempts: 10,
	}
}

// rootSpan bounds |root| per degree so the expanded coefficients stay small
// enough to reach with the coefficient editor.
var rootSpan = map[int]int{2: 6, 3: 4, 4: 3}

// Generate builds a level from distinct integer roots and a leading
// coefficient of +1 or -1. The resulting coefficients are integers.
func Generate(rng *rand.Rand, params GenParams) (*Level, error) {
	degree := min(max(params.Degree, 2), 4)
	span := rootSpan[degree]
	maxTime := params.BaseTime + float64(degree-2)*params.TimePerTerm

	attempts := max(params.MaxAttempts, 1)
	for range attempts {
		roots := distinctInts(rng, degree, -span, span)
		coefs := FromRoots(roots)
		if rng.Intn(2) == 0 {
			for i := range coefs {
				coefs[i] = -coefs[i]
			}
		}

		lvl, err := New(coefs, maxTime)
		if err == nil {
			return lvl, nil
		}
	}
	return nil, errors.New("level: generator exhausted its attempts")
}

// FromRoots expands (x - r0)(x - r1)... into coefficients, highest degree first.
func FromRoots(roots []int) Polynomial {
	p := Polynomial{1}
	for _, r := range roots {
		next := make(Polynomial, len(p)+1)
		for i, c := range p {
			next[i] += c
			next[i+1] -= c * float64(r)
		}
		p = next
	}
	return p
}

// distinctInts picks n distinct integers from [lo, hi] in increasing order.
func distinctInts(rng *rand.Rand, n, lo, hi int) []int {
	pool := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		pool = append(pool, v)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	picked := pool[:min(n, len(pool))]
	out := make([]int, len(picked))
	copy(out, picked)
	slices.Sort(out)
	return out
}

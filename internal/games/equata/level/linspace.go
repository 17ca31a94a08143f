// Package level contains the Equata level model: polynomial evaluation,
// root isolation, domain derivation and the time-driven win/loss state.
// It has no dependencies on the platform or on Bubble Tea.
package level

import (
	"iter"
	"slices"
)

// LinSpace lazily produces start, start+spacing, start+2*spacing, ...
// up to and including end. Spacing is added repeatedly, so values drift
// slightly over long runs.
//
// A LinSpace is consumed as it is read. To walk the same range again,
// construct a new one.
type LinSpace struct {
	current float64
	end     float64
	spacing float64
}

// NewLinSpace creates a sequence over [start, end] with the given spacing.
// The sequence is empty when start > end or spacing <= 0.
func NewLinSpace(start, end, spacing float64) *LinSpace {
	return &LinSpace{
		current: start,
		end:     end,
		spacing: spacing,
	}
}

// Next returns the next value and true, or false once the sequence is exhausted.
func (l *LinSpace) Next() (float64, bool) {
	// NaN bounds compare false, so they are rejected explicitly.
	if l.spacing <= 0 || !(l.current <= l.end) {
		return 0, false
	}
	value := l.current
	l.current += l.spacing
	return value, true
}

// All returns an iterator that drains the remaining values.
func (l *LinSpace) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			x, ok := l.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Collect drains the remaining values into a slice.
func (l *LinSpace) Collect() []float64 {
	return slices.Collect(l.All())
}

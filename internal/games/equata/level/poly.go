package level

import (
	"fmt"
	"strconv"
	"strings"
)

// Polynomial is an ordered coefficient list, highest degree first.
// [1, 0, -1] is x^2 - 1. Leading zeros are kept as given.
type Polynomial []float64

// Eval evaluates the polynomial at x using Horner's method.
// An empty polynomial evaluates to 0.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for _, c := range p {
		y = c + x*y
	}
	return y
}

// Degree returns len(p) - 1. An empty polynomial has degree -1.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Clone returns an independent copy.
func (p Polynomial) Clone() Polynomial {
	if p == nil {
		return nil
	}
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// CoefName returns the letter used for coefficient i: a, b, c, ...
func CoefName(i int) string {
	if i < 0 || i >= 26 {
		return "?"
	}
	return string(rune('a' + i))
}

// Template returns the symbolic form shown to the player, e.g. "ax^2 + bx + c".
func Template(degree int) string {
	if degree < 0 {
		return "0"
	}
	terms := make([]string, 0, degree+1)
	for i := 0; i <= degree; i++ {
		terms = append(terms, CoefName(i)+power(degree-i))
	}
	return strings.Join(terms, " + ")
}

// String formats the polynomial with its numeric coefficients, skipping zero terms.
func (p Polynomial) String() string {
	var b strings.Builder
	for i, c := range p {
		if c == 0 {
			continue
		}
		exp := len(p) - 1 - i

		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}

		mag := c
		if mag < 0 {
			mag = -mag
		}
		if mag != 1 || exp == 0 {
			b.WriteString(strconv.FormatFloat(mag, 'f', -1, 64))
		}
		b.WriteString(power(exp))
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

func power(exp int) string {
	switch exp {
	case 0:
		return ""
	case 1:
		return "x"
	default:
		return fmt.Sprintf("x^%d", exp)
	}
}

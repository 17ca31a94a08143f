package level

import (
	"errors"
	"fmt"
)

// ErrInsufficientRoots is matched by errors returned from New when the root
// scan finds fewer than two roots.
var ErrInsufficientRoots = errors.New("needs at least two roots")

// RootsError describes a polynomial that cannot bound a playable interval.
type RootsError struct {
	Coefs Polynomial
	Found int
}

func (e *RootsError) Error() string {
	return fmt.Sprintf("level: polynomial %s %s in [%g, %g], found %d",
		e.Coefs, ErrInsufficientRoots, ScanMin, ScanMax, e.Found)
}

// Is reports whether target is ErrInsufficientRoots.
func (e *RootsError) Is(target error) bool {
	return target == ErrInsufficientRoots
}

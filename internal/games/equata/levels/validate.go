package levels

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/equata/internal/games/equata/level"
)

// Validation codes.
const (
	CodeMissingID         = "MISSING_ID"
	CodeEmptyCoefficients = "EMPTY_COEFFICIENTS"
	CodeBadCoefficient    = "BAD_COEFFICIENT"
	CodeBadTime           = "BAD_TIME"
	CodeInsufficientRoots = "INSUFFICIENT_ROOTS"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a definition can be played.
// Checks:
//   - id is set
//   - coefficients are present and finite
//   - time budget is positive
//   - the polynomial crosses zero at least twice in the scan window
func Validate(d Definition) error {
	if d.ID == "" {
		return ValidationError{Code: CodeMissingID, Message: "level has no id"}
	}

	if len(d.Coefficients) == 0 {
		return ValidationError{
			Code:    CodeEmptyCoefficients,
			Message: fmt.Sprintf("level %s has no coefficients", d.ID),
		}
	}
	for i, c := range d.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ValidationError{
				Code:    CodeBadCoefficient,
				Message: fmt.Sprintf("level %s: coefficient %s is not finite", d.ID, level.CoefName(i)),
			}
		}
	}

	if !(d.MaxTime > 0) {
		return ValidationError{
			Code:    CodeBadTime,
			Message: fmt.Sprintf("level %s: max_time must be positive, got %v", d.ID, d.MaxTime),
		}
	}

	if _, err := d.NewLevel(1); err != nil {
		var rootsErr *level.RootsError
		if errors.As(err, &rootsErr) {
			return ValidationError{
				Code: CodeInsufficientRoots,
				Message: fmt.Sprintf("level %s: %s has %d root(s) in [%g, %g], needs at least two",
					d.ID, level.Polynomial(d.Coefficients), rootsErr.Found, level.ScanMin, level.ScanMax),
			}
		}
		return err
	}

	return nil
}

package levels

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		def      Definition
		wantCode string
	}{
		{"valid", Definition{ID: "x", Coefficients: []float64{1, 0, -1}, MaxTime: 10}, ""},
		{"missing id", Definition{Coefficients: []float64{1, 0, -1}, MaxTime: 10}, CodeMissingID},
		{"no coefficients", Definition{ID: "x", MaxTime: 10}, CodeEmptyCoefficients},
		{"NaN coefficient", Definition{ID: "x", Coefficients: []float64{1, math.NaN(), -1}, MaxTime: 10}, CodeBadCoefficient},
		{"zero time", Definition{ID: "x", Coefficients: []float64{1, 0, -1}, MaxTime: 0}, CodeBadTime},
		{"negative time", Definition{ID: "x", Coefficients: []float64{1, 0, -1}, MaxTime: -5}, CodeBadTime},
		{"constant", Definition{ID: "x", Coefficients: []float64{1}, MaxTime: 10}, CodeInsufficientRoots},
		{"one root", Definition{ID: "x", Coefficients: []float64{1, -2}, MaxTime: 10}, CodeInsufficientRoots},
		{"roots outside window", Definition{ID: "x", Coefficients: []float64{1, 0, -400}, MaxTime: 10}, CodeInsufficientRoots},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.def)
			if tc.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.wantCode {
				t.Errorf("Validate() code = %s, expected %s", verr.Code, tc.wantCode)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Code: CodeBadTime, Message: "oops"}
	if err.Error() != "[BAD_TIME] oops" {
		t.Errorf("Error() = %q, expected %q", err.Error(), "[BAD_TIME] oops")
	}
}

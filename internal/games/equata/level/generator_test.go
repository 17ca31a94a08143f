package level

import (
	"math"
	"math/rand"
	"testing"
)

func TestFromRoots(t *testing.T) {
	tests := []struct {
		roots    []int
		expected Polynomial
	}{
		{[]int{-1, 1}, Polynomial{1, 0, -1}},
		{[]int{1, 2, 3}, Polynomial{1, -6, 11, -6}},
		{[]int{0, 2}, Polynomial{1, -2, 0}},
		{nil, Polynomial{1}},
	}

	for _, tc := range tests {
		got := FromRoots(tc.roots)
		if len(got) != len(tc.expected) {
			t.Fatalf("FromRoots(%v) = %v, expected %v", tc.roots, got, tc.expected)
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Errorf("FromRoots(%v) = %v, expected %v", tc.roots, got, tc.expected)
				break
			}
		}
	}
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for degree := 2; degree <= 4; degree++ {
		params := DefaultGenParams()
		params.Degree = degree

		for range 20 {
			lvl, err := Generate(rng, params)
			if err != nil {
				t.Fatalf("Generate(degree %d) failed: %v", degree, err)
			}
			if lvl.NumCoefs() != degree+1 {
				t.Errorf("generated %d coefficients, expected %d", lvl.NumCoefs(), degree+1)
			}

			coefs := lvl.EnemyCoefs()
			if math.Abs(coefs[0]) != 1 {
				t.Errorf("leading coefficient = %v, expected +-1", coefs[0])
			}
			for _, c := range coefs {
				if c != math.Trunc(c) {
					t.Errorf("coefficient %v is not an integer", c)
				}
			}

			start, end := lvl.Domain()
			if start >= end {
				t.Errorf("generated domain (%v, %v) is empty", start, end)
			}

			expectedTime := params.BaseTime + float64(degree-2)*params.TimePerTerm
			if lvl.MaxTime() != expectedTime {
				t.Errorf("MaxTime() = %v, expected %v", lvl.MaxTime(), expectedTime)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, errA := Generate(rand.New(rand.NewSource(99)), DefaultGenParams())
	b, errB := Generate(rand.New(rand.NewSource(99)), DefaultGenParams())
	if errA != nil || errB != nil {
		t.Fatalf("Generate failed: %v / %v", errA, errB)
	}
	if a.EnemyCoefs().String() != b.EnemyCoefs().String() {
		t.Errorf("same seed produced %s and %s", a.EnemyCoefs(), b.EnemyCoefs())
	}
}

func TestGenerateClampsDegree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	params := DefaultGenParams()

	params.Degree = 9
	lvl, err := Generate(rng, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if lvl.NumCoefs() != 5 {
		t.Errorf("degree 9 should clamp to 4, got %d coefficients", lvl.NumCoefs())
	}

	params.Degree = 0
	lvl, err = Generate(rng, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if lvl.NumCoefs() != 3 {
		t.Errorf("degree 0 should clamp to 2, got %d coefficients", lvl.NumCoefs())
	}
}

// Random operation sequences must never leave a level both won and lost.
func TestWinLossNeverBoth(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for run := range 50 {
		lvl, err := Generate(rng, DefaultGenParams())
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		target := lvl.EnemyCoefs()

		for step := range 200 {
			switch rng.Intn(6) {
			case 0:
				lvl.Advance(rng.Float64() * 10)
			case 1:
				lvl.Confirm()
			case 2:
				lvl.CheckWon()
			case 3:
				i := rng.Intn(lvl.NumCoefs())
				lvl.SetPlayerCoef(i, target[i])
			case 4:
				i := rng.Intn(lvl.NumCoefs())
				lvl.SetPlayerCoef(i, lvl.PlayerCoef(i)+rng.Float64()-0.5)
			case 5:
				if rng.Intn(10) == 0 {
					lvl.Restart()
				}
			}

			if lvl.Won() && lvl.Lost() {
				t.Fatalf("run %d step %d: level is both won and lost", run, step)
			}
			if lvl.TimeTaken() < 0 {
				t.Fatalf("run %d step %d: negative time %v", run, step, lvl.TimeTaken())
			}
		}
	}
}

package level

import (
	"errors"
	"math"
	"testing"
)

func newTestLevel(t *testing.T, coefs []float64, maxTime float64) *Level {
	t.Helper()
	lvl, err := New(coefs, maxTime)
	if err != nil {
		t.Fatalf("New(%v, %v) failed: %v", coefs, maxTime, err)
	}
	return lvl
}

func TestNewDerivesDomain(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)

	start, end := lvl.Domain()
	if math.Abs(start+1) > 1e-6 || math.Abs(end-1) > 1e-6 {
		t.Errorf("Domain() = (%v, %v), expected (-1, 1)", start, end)
	}
	if start >= end {
		t.Errorf("Domain() start %v should be below end %v", start, end)
	}

	lim := lvl.Limits()
	checks := []struct {
		name          string
		got, expected float64
	}{
		{"min x", lim.Min.X, -2},
		{"min y", lim.Min.Y, -2},
		{"max x", lim.Max.X, 2},
		{"max y", lim.Max.Y, 1},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.expected) > 1e-3 {
			t.Errorf("Limits() %s = %v, expected %v", c.name, c.got, c.expected)
		}
	}

	if lvl.MaxTime() != 10 {
		t.Errorf("MaxTime() = %v, expected 10", lvl.MaxTime())
	}
	if lvl.State() != StateActive {
		t.Errorf("State() = %v, expected active", lvl.State())
	}
}

func TestNewInsufficientRoots(t *testing.T) {
	tests := []struct {
		name  string
		coefs []float64
		found int
	}{
		{"constant", []float64{1}, 0},
		{"no real roots", []float64{1, 0, 1}, 0},
		{"linear", []float64{1, -2}, 1},
		{"empty", nil, 0},
		// 0 at x=-10 followed by negative samples is not a sign change.
		{"zero then negative", FromRoots([]int{-10, 1}), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := New(tc.coefs, 10)
			if err == nil {
				t.Fatalf("New(%v) = %v, expected an error", tc.coefs, lvl)
			}
			if !errors.Is(err, ErrInsufficientRoots) {
				t.Errorf("error %v should match ErrInsufficientRoots", err)
			}
			var rootsErr *RootsError
			if !errors.As(err, &rootsErr) {
				t.Fatalf("error %T should be a *RootsError", err)
			}
			if rootsErr.Found != tc.found {
				t.Errorf("Found = %d, expected %d", rootsErr.Found, tc.found)
			}
		})
	}
}

func TestNewCopiesCoefficients(t *testing.T) {
	coefs := []float64{1, 0, -1}
	lvl := newTestLevel(t, coefs, 10)
	coefs[0] = 5

	if lvl.EvalEnemy(2) != 3 {
		t.Error("caller's slice should not alias the enemy coefficients")
	}
}

func TestPlayerStartsAtOnes(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, -6, 11, -6}, 30)

	if lvl.NumCoefs() != 4 {
		t.Fatalf("NumCoefs() = %d, expected 4", lvl.NumCoefs())
	}
	for i, c := range lvl.PlayerCoefs() {
		if c != 1 {
			t.Errorf("player coefficient %d = %v, expected 1", i, c)
		}
	}
	// x^3 + x^2 + x + 1 at 2
	if got := lvl.EvalPlayer(2); got != 15 {
		t.Errorf("EvalPlayer(2) = %v, expected 15", got)
	}
}

func TestPlayerCoefAccess(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)

	lvl.SetPlayerCoef(1, 0)
	lvl.SetPlayerCoef(2, lvl.PlayerCoef(2)-2)
	lvl.SetPlayerCoef(-1, 7) // ignored
	lvl.SetPlayerCoef(3, 7)  // ignored

	expected := Polynomial{1, 0, -1}
	got := lvl.PlayerCoefs()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("PlayerCoefs()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
	if lvl.PlayerCoef(9) != 0 {
		t.Error("PlayerCoef() out of range should return 0")
	}

	// Copies do not write through.
	got[0] = 42
	if lvl.PlayerCoef(0) != 1 {
		t.Error("PlayerCoefs() should return a copy")
	}
}

func TestTimeBudgetTransition(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)

	lvl.Advance(10)
	if !lvl.Lost() {
		t.Error("Lost() should be true once time reaches the budget")
	}
	if lvl.State() != StateLost {
		t.Errorf("State() = %v, expected lost", lvl.State())
	}

	// Cumulative advances.
	lvl = newTestLevel(t, []float64{1, 0, -1}, 10)
	for range 3 {
		lvl.Advance(4)
	}
	if !lvl.Lost() {
		t.Error("Lost() should be true after cumulative advances past the budget")
	}
	if lvl.TimeTaken() != 12 {
		t.Errorf("TimeTaken() = %v, expected 12", lvl.TimeTaken())
	}

	// Time stops once lost.
	lvl.Advance(5)
	if lvl.TimeTaken() != 12 {
		t.Errorf("TimeTaken() after loss = %v, expected 12", lvl.TimeTaken())
	}
	if lvl.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %v, expected 0", lvl.TimeLeft())
	}
}

func TestAdvanceIgnoresNegative(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)
	lvl.Advance(2)
	lvl.Advance(-5)
	lvl.Advance(math.NaN())
	if lvl.TimeTaken() != 2 {
		t.Errorf("TimeTaken() = %v, expected 2", lvl.TimeTaken())
	}
}

func TestPenaltyScenario(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)

	if lvl.CheckWon() {
		t.Fatal("CheckWon() with all-ones guess should be false")
	}
	if lvl.TimeTaken() != 0 {
		t.Errorf("CheckWon() should not charge time, got %v", lvl.TimeTaken())
	}

	before := lvl.TimeTaken()
	if lvl.Confirm() {
		t.Fatal("Confirm() with all-ones guess should be false")
	}
	if lvl.TimeTaken()-before != 1.0 {
		t.Errorf("penalty = %v, expected exactly 1.0", lvl.TimeTaken()-before)
	}
	if lvl.WrongGuesses() != 1 {
		t.Errorf("WrongGuesses() = %d, expected 1", lvl.WrongGuesses())
	}
}

func TestPenaltyCanExhaustBudget(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)
	lvl.Advance(9.5)
	lvl.Confirm()
	if !lvl.Lost() {
		t.Error("a penalty past the budget should lose the level")
	}
}

func TestWinWithinTolerance(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)
	lvl.SetPlayerCoef(0, 1.005)
	lvl.SetPlayerCoef(1, -0.01)
	lvl.SetPlayerCoef(2, -0.995)

	if !lvl.Confirm() {
		t.Fatal("Confirm() within tolerance should win")
	}
	if lvl.State() != StateWon {
		t.Errorf("State() = %v, expected won", lvl.State())
	}
	if lvl.TimeTaken() != 0 {
		t.Errorf("winning confirm should not charge time, got %v", lvl.TimeTaken())
	}

	// Finished levels ignore time and further confirms.
	lvl.Advance(100)
	if lvl.Lost() || lvl.TimeTaken() != 0 {
		t.Error("Advance() after a win should do nothing")
	}
}

func TestCheckWonClearsFlag(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)
	lvl.SetPlayerCoef(1, 0)
	lvl.SetPlayerCoef(2, -1)
	if !lvl.CheckWon() {
		t.Fatal("CheckWon() should match")
	}

	lvl.SetPlayerCoef(1, 0.02)
	if lvl.CheckWon() {
		t.Error("CheckWon() should fail outside tolerance")
	}
	if lvl.Won() {
		t.Error("a failed CheckWon() should clear the won flag")
	}
}

func TestWinLossExclusive(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)
	lvl.Advance(10)

	lvl.SetPlayerCoef(1, 0)
	lvl.SetPlayerCoef(2, -1)
	if lvl.CheckWon() {
		t.Error("CheckWon() on a lost level should return false")
	}
	if lvl.Confirm() {
		t.Error("Confirm() on a lost level should return false")
	}
	if lvl.Won() && lvl.Lost() {
		t.Error("won and lost must never both be set")
	}
	if lvl.WrongGuesses() != 0 {
		t.Errorf("Confirm() on a finished level should not count, got %d", lvl.WrongGuesses())
	}
}

func TestRestart(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)
	startBefore, endBefore := lvl.Domain()
	limitsBefore := lvl.Limits()

	lvl.SetPlayerCoef(0, 3)
	lvl.Confirm()
	lvl.Advance(20)

	lvl.Restart()

	if lvl.TimeTaken() != 0 {
		t.Errorf("TimeTaken() = %v, expected 0", lvl.TimeTaken())
	}
	if lvl.Won() || lvl.Lost() {
		t.Errorf("Restart() should clear flags, got won=%v lost=%v", lvl.Won(), lvl.Lost())
	}
	if lvl.WrongGuesses() != 0 {
		t.Errorf("WrongGuesses() = %d, expected 0", lvl.WrongGuesses())
	}
	if lvl.CheckWon() {
		t.Error("CheckWon() right after Restart() should be false")
	}
	for i, c := range lvl.PlayerCoefs() {
		if c != 1 {
			t.Errorf("player coefficient %d = %v, expected 1", i, c)
		}
	}

	start, end := lvl.Domain()
	if start != startBefore || end != endBefore || lvl.Limits() != limitsBefore {
		t.Error("Restart() should keep the derived domain")
	}
}

func TestDomainRangeTime(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)
	start, end := lvl.Domain()

	initial := lvl.DomainRangeTime(0.01).Collect()
	if len(initial) != 1 || initial[0] != start {
		t.Errorf("at t=0 revealed %v, expected only the start %v", initial, start)
	}

	lvl.Advance(5)
	half := lvl.DomainRangeTime(0.3).Collect()
	if len(half) == 0 || half[0] != start {
		t.Fatalf("revealed %v, expected to begin at %v", half, start)
	}
	mid := start + (end-start)/2
	last := half[len(half)-1]
	if last > mid || last <= mid-0.3 {
		t.Errorf("last revealed x = %v, expected within one step below %v", last, mid)
	}
}

func TestDomainRangeTimeOvershoots(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)
	lvl.Advance(15) // Lost, but the fraction is 1.5

	_, end := lvl.Domain()
	xs := lvl.DomainRangeTime(0.1).Collect()
	if xs[len(xs)-1] <= end {
		t.Errorf("revealed domain should overshoot %v, last = %v", end, xs[len(xs)-1])
	}
}

func TestDomainRangeLimits(t *testing.T) {
	lvl := newTestLevel(t, []float64{1, 0, -1}, 10)
	lim := lvl.Limits()

	xs := lvl.DomainRangeLimits(0.025).Collect()
	if xs[0] != lim.Min.X {
		t.Errorf("first x = %v, expected %v", xs[0], lim.Min.X)
	}
	if last := xs[len(xs)-1]; last > lim.Max.X || last <= lim.Max.X-0.025 {
		t.Errorf("last x = %v, expected within one step below %v", last, lim.Max.X)
	}

	// Independent of elapsed time.
	lvl.Advance(3)
	if n := len(lvl.DomainRangeLimits(0.025).Collect()); n != len(xs) {
		t.Errorf("sample count changed with time: %d vs %d", n, len(xs))
	}
}

func TestDefaultLevel(t *testing.T) {
	lvl := Default()

	if lvl.MaxTime() != 100 {
		t.Errorf("MaxTime() = %v, expected 100", lvl.MaxTime())
	}
	start, end := lvl.Domain()
	if start != -1 || end != 1 {
		t.Errorf("Domain() = (%v, %v), expected (-1, 1)", start, end)
	}
	expected := Limits{Min: Point{-2, -2}, Max: Point{2, 2}}
	if lvl.Limits() != expected {
		t.Errorf("Limits() = %+v, expected %+v", lvl.Limits(), expected)
	}
	if lvl.EvalEnemy(0) != 1 {
		t.Errorf("EvalEnemy(0) = %v, expected 1", lvl.EvalEnemy(0))
	}
}

func TestStateString(t *testing.T) {
	if StateActive.String() != "active" || StateWon.String() != "won" || StateLost.String() != "lost" {
		t.Error("unexpected State names")
	}
}

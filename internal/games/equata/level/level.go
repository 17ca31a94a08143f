package level

import "math"

// Gameplay constants.
const (
	// MatchTolerance is the largest per-coefficient difference that still counts as a match.
	MatchTolerance = 0.01
	// PenaltySeconds is added to the elapsed time after a wrong confirmation.
	PenaltySeconds = 1.0

	limitMargin = 1.0
)

// State is the level's position in its lifecycle.
type State int

const (
	StateActive State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Level holds a hidden enemy polynomial, the player's guess, and the time budget.
// A Level is not safe for concurrent use; the host serializes all calls.
type Level struct {
	enemyCoefs  Polynomial
	playerCoefs Polynomial
	limits      Limits
	maxTime     float64
	timeTaken   float64

	// Playable interval, bounded by the first two roots.
	startX float64
	endX   float64

	won          bool
	lost         bool
	wrongGuesses int
}

// New builds a level for the given enemy coefficients and time budget in seconds.
// The playable interval and plot limits are derived from the first two roots
// found in [ScanMin, ScanMax]. Fewer than two roots yields a *RootsError that
// matches ErrInsufficientRoots.
func New(coefs []float64, maxTime float64) (*Level, error) {
	enemy := Polynomial(coefs).Clone()

	roots := FindRoots(enemy)
	if len(roots) < 2 {
		return nil, &RootsError{Coefs: enemy, Found: len(roots)}
	}
	r0, r1 := roots[0], roots[1]

	return &Level{
		enemyCoefs:  enemy,
		playerCoefs: ones(len(enemy)),
		limits:      PlotLimits(enemy, r0, r1),
		maxTime:     maxTime,
		startX:      r0,
		endX:        r1,
	}, nil
}

// Default returns the built-in level -x^2 + 1 with a 100 second budget.
func Default() *Level {
	return &Level{
		enemyCoefs:  Polynomial{-1, 0, 1},
		playerCoefs: ones(3),
		limits: Limits{
			Min: Point{X: -2, Y: -2},
			Max: Point{X: 2, Y: 2},
		},
		maxTime: 100,
		startX:  -1,
		endX:    1,
	}
}

func ones(n int) Polynomial {
	p := make(Polynomial, n)
	for i := range p {
		p[i] = 1
	}
	return p
}

// State returns the current lifecycle state.
func (l *Level) State() State {
	switch {
	case l.won:
		return StateWon
	case l.lost:
		return StateLost
	default:
		return StateActive
	}
}

// Active reports whether the level is neither won nor lost.
func (l *Level) Active() bool {
	return !l.won && !l.lost
}

// Advance adds delta seconds to the elapsed time. It does nothing once the
// level is won or lost, and ignores negative deltas. Reaching the time budget
// loses the level.
func (l *Level) Advance(delta float64) {
	if !l.Active() || !(delta > 0) {
		return
	}
	l.timeTaken += delta
	if l.timeTaken >= l.maxTime {
		l.lost = true
	}
}

// CheckWon compares the player's coefficients to the enemy's and stores the
// result in the won flag, clearing it on a mismatch. A lost level stays lost.
func (l *Level) CheckWon() bool {
	l.won = !l.lost && l.coefsMatch()
	return l.won
}

func (l *Level) coefsMatch() bool {
	for i, c := range l.enemyCoefs {
		if math.Abs(c-l.playerCoefs[i]) > MatchTolerance {
			return false
		}
	}
	return true
}

// Confirm submits the current guess. A wrong guess costs PenaltySeconds,
// which may exhaust the budget. Confirming a finished level changes nothing.
func (l *Level) Confirm() bool {
	if !l.Active() {
		return l.won
	}
	if l.CheckWon() {
		return true
	}
	l.wrongGuesses++
	l.Advance(PenaltySeconds)
	return false
}

// Restart clears the elapsed time, the guess and both terminal flags.
// The derived domain is kept.
func (l *Level) Restart() {
	l.timeTaken = 0
	l.playerCoefs = ones(len(l.enemyCoefs))
	l.won = false
	l.lost = false
	l.wrongGuesses = 0
}

// DomainRangeTime returns the x values revealed so far: from the start of the
// playable interval, a fraction timeTaken/maxTime of the way to its end.
// The fraction is not clamped.
func (l *Level) DomainRangeTime(spacing float64) *LinSpace {
	fraction := 1.0
	if l.maxTime > 0 {
		fraction = l.timeTaken / l.maxTime
	}
	end := l.startX + (l.endX-l.startX)*fraction
	return NewLinSpace(l.startX, end, spacing)
}

// DomainRangeLimits returns x values across the whole plot rectangle.
func (l *Level) DomainRangeLimits(spacing float64) *LinSpace {
	return NewLinSpace(l.limits.Min.X, l.limits.Max.X, spacing)
}

// EvalEnemy evaluates the hidden polynomial at x.
func (l *Level) EvalEnemy(x float64) float64 {
	return l.enemyCoefs.Eval(x)
}

// EvalPlayer evaluates the player's polynomial at x.
func (l *Level) EvalPlayer(x float64) float64 {
	return l.playerCoefs.Eval(x)
}

// NumCoefs returns the number of coefficients in each polynomial.
func (l *Level) NumCoefs() int {
	return len(l.enemyCoefs)
}

// PlayerCoef returns coefficient i of the guess, or 0 when out of range.
func (l *Level) PlayerCoef(i int) float64 {
	if i < 0 || i >= len(l.playerCoefs) {
		return 0
	}
	return l.playerCoefs[i]
}

// SetPlayerCoef overwrites coefficient i of the guess.
// Out-of-range indices are silently ignored.
func (l *Level) SetPlayerCoef(i int, v float64) {
	if i < 0 || i >= len(l.playerCoefs) {
		return
	}
	l.playerCoefs[i] = v
}

// PlayerCoefs returns a copy of the guess.
func (l *Level) PlayerCoefs() Polynomial {
	return l.playerCoefs.Clone()
}

// EnemyCoefs returns a copy of the hidden polynomial.
func (l *Level) EnemyCoefs() Polynomial {
	return l.enemyCoefs.Clone()
}

// Won reports whether the last check matched.
func (l *Level) Won() bool { return l.won }

// Lost reports whether the time budget ran out.
func (l *Level) Lost() bool { return l.lost }

// TimeTaken returns the elapsed seconds, penalties included.
func (l *Level) TimeTaken() float64 { return l.timeTaken }

// MaxTime returns the time budget in seconds.
func (l *Level) MaxTime() float64 { return l.maxTime }

// TimeLeft returns the remaining seconds, never below zero.
func (l *Level) TimeLeft() float64 {
	return math.Max(0, l.maxTime-l.timeTaken)
}

// Limits returns the plot rectangle.
func (l *Level) Limits() Limits { return l.limits }

// Domain returns the playable interval.
func (l *Level) Domain() (start, end float64) { return l.startX, l.endX }

// WrongGuesses returns the number of penalized confirmations since the last restart.
func (l *Level) WrongGuesses() int { return l.wrongGuesses }

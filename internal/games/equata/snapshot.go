package equata

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string
	LevelID      string
	Hint         string
	LevelIndex   int
	Score        int
	Cleared      int
	Selected     int
	EnemyCoefs   []float64
	PlayerCoefs  []float64
	TimeTaken    float64
	WrongGuesses int
	State        GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		LevelID:    g.levelID,
		Hint:       g.hint,
		LevelIndex: g.levelIndex,
		Score:      g.score,
		Cleared:    g.cleared,
		Selected:   g.selected,
		State:      state,
	}
	if g.lvl != nil {
		snap.EnemyCoefs = g.lvl.EnemyCoefs()
		snap.PlayerCoefs = g.lvl.PlayerCoefs()
		snap.TimeTaken = g.lvl.TimeTaken()
		snap.WrongGuesses = g.lvl.WrongGuesses()
	}
	return snap
}

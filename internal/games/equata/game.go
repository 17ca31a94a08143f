// Package equata adapts the Level model to the platform's Game interface:
// campaign and endless runs, coefficient editing, scoring and rendering.
package equata

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/equata/internal/config"
	"github.com/vovakirdan/equata/internal/core"
	"github.com/vovakirdan/equata/internal/games/equata/level"
	"github.com/vovakirdan/equata/internal/games/equata/levels"
	"github.com/vovakirdan/equata/internal/registry"
)

// Game IDs.
const (
	IDCampaign = "equata"
	IDEndless  = "equata_endless"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// DefaultLevelID identifies the built-in level used when a campaign has no levels.
const DefaultLevelID = "default"

const (
	minScreenW      = 50
	minScreenH      = 16
	messageDuration = 1.5 // seconds
)

// Options configures a game instance. Zero values select the defaults.
type Options struct {
	Config     *config.Config      // nil means config.DefaultConfig()
	Levels     []levels.Definition // nil means the embedded catalog (campaign only)
	StartLevel string              // campaign level id to start from
	Logger     *log.Logger         // nil discards
}

// Game implements the Equata campaign and endless modes.
type Game struct {
	mode       Mode
	opts       Options
	logger     *log.Logger
	cfg        config.Config
	difficulty *config.DifficultyManager
	defs       []levels.Definition
	rng        *rand.Rand
	tick       uint64
	dt         float64

	screenW int
	screenH int

	levelIndex int
	levelID    string
	levelName  string
	hint       string
	lvl        *level.Level
	selected   int

	score   int
	cleared int
	pending []core.LevelResult

	message     string
	messageLeft float64
	clearTimer  float64
	lastGain    int

	paused       bool
	levelCleared bool
	gameOver     bool
	won          bool
	tooSmall     bool
}

// New creates a campaign game.
func New(opts Options) *Game {
	return newGame(ModeCampaign, opts)
}

// NewEndless creates an endless game with generated levels.
func NewEndless(opts Options) *Game {
	return newGame(ModeEndless, opts)
}

func newGame(mode Mode, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{mode: mode, opts: opts, logger: logger}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New(Options{})
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless(Options{})
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Equata (Endless)"
	}
	return "Equata"
}

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = config.DefaultConfig()
	if g.opts.Config != nil {
		g.cfg = *g.opts.Config
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.dt = cfg.TickSeconds()
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.score = 0
	g.cleared = 0
	g.pending = nil
	g.message = ""
	g.messageLeft = 0
	g.paused = false
	g.levelCleared = false
	g.gameOver = false
	g.won = false

	g.levelIndex = 0
	if g.mode == ModeCampaign {
		g.defs = g.opts.Levels
		if g.defs == nil {
			g.defs = g.embeddedLevels()
		}
		if i := levels.IndexOf(g.defs, g.opts.StartLevel); i >= 0 {
			g.levelIndex = i
		}
	}

	g.loadLevel()
	g.checkScreenSize()
}

// embeddedLevels loads the built-in catalog. On failure the campaign
// plays the default level.
func (g *Game) embeddedLevels() []levels.Definition {
	defs, err := levels.NewEmbeddedLoader(g.logger).LoadAll()
	if err != nil {
		g.logger.Warn("cannot load built-in levels, using the default level", "error", err)
		return nil
	}
	return defs
}

// loadLevel builds the level at levelIndex (campaign) or generates the next one (endless).
func (g *Game) loadLevel() {
	g.selected = 0
	g.levelCleared = false
	g.clearTimer = 0
	g.hint = ""
	timeScale := g.difficulty.TimeScale()

	if g.mode == ModeEndless {
		degree := g.difficulty.Degree(g.cfg.Endless.MinDegree, g.cfg.Endless.MaxDegree, g.cleared, int(g.tick))
		params := level.DefaultGenParams()
		params.Degree = degree
		params.BaseTime = g.cfg.Endless.BaseTime * timeScale
		params.TimePerTerm = g.cfg.Endless.TimePerTerm * timeScale

		lvl, err := level.Generate(g.rng, params)
		if err != nil {
			g.logger.Warn("level generation failed, using the default level", "degree", degree, "error", err)
			lvl = level.Default()
		}
		g.lvl = lvl
		g.levelID = fmt.Sprintf("endless-d%d", lvl.NumCoefs()-1)
		g.levelName = fmt.Sprintf("Endless #%d", g.levelIndex+1)
		return
	}

	if len(g.defs) == 0 {
		g.lvl = level.Default()
		g.levelID = DefaultLevelID
		g.levelName = "Default"
		return
	}

	def := g.defs[g.levelIndex]
	lvl, err := def.NewLevel(timeScale)
	if err != nil {
		// Definitions from the loader are validated; a hand-built list may not be.
		g.logger.Warn("invalid level, using the default level", "level", def.ID, "error", err)
		lvl = level.Default()
	}
	g.lvl = lvl
	g.levelID = def.ID
	g.levelName = def.Name
	g.hint = def.Hint()
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.levelCleared {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return g.result()
	}

	if g.messageLeft > 0 {
		g.messageLeft -= g.dt
		if g.messageLeft <= 0 {
			g.message = ""
		}
	}

	if g.levelCleared {
		g.clearTimer += g.dt
		delay := g.cfg.Timing.ClearDelay
		if in.Has(core.ActionNext) || in.Has(core.ActionConfirm) || (delay > 0 && g.clearTimer >= delay) {
			g.advanceLevel()
		}
		return g.result()
	}

	if in.Has(core.ActionRestart) {
		g.lvl.Restart()
		g.selected = 0
		g.flash("Level restarted")
		return g.result()
	}

	g.handleEditing(in)

	if in.Has(core.ActionConfirm) {
		if g.lvl.Confirm() {
			g.onLevelWon()
			return g.result()
		}
		g.flash(fmt.Sprintf("Miss! +%gs", level.PenaltySeconds))
	}

	g.lvl.Advance(g.dt)
	if g.lvl.Lost() {
		g.onLevelLost()
	}

	return g.result()
}

// handleEditing applies selection and coefficient changes from the input frame.
func (g *Game) handleEditing(in core.InputFrame) {
	n := g.lvl.NumCoefs()
	if n == 0 {
		return
	}

	move := in.Count(core.ActionRight) - in.Count(core.ActionLeft)
	g.selected = ((g.selected+move)%n + n) % n

	coarse := float64(in.Count(core.ActionUp) - in.Count(core.ActionDown))
	fine := float64(in.Count(core.ActionIncrease) - in.Count(core.ActionDecrease))
	delta := coarse*g.cfg.Controls.CoarseStep + fine*g.cfg.Controls.FineStep
	if delta == 0 {
		return
	}

	limit := g.cfg.Controls.CoefLimit
	v := g.lvl.PlayerCoef(g.selected) + delta
	v = math.Round(v*1e6) / 1e6 // keep repeated 0.1 steps printable
	g.lvl.SetPlayerCoef(g.selected, core.ClampF(v, -limit, limit))
}

func (g *Game) onLevelWon() {
	g.lastGain = levelScore(g.lvl)
	g.score += g.lastGain
	g.cleared++
	g.levelCleared = true
	g.clearTimer = 0
	g.message = ""
	g.queueResult()
}

func (g *Game) onLevelLost() {
	g.gameOver = true
	g.queueResult()
}

// advanceLevel moves past a cleared level.
func (g *Game) advanceLevel() {
	g.levelCleared = false

	if g.mode == ModeCampaign && g.levelIndex >= len(g.defs)-1 {
		g.won = true
		g.gameOver = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

func (g *Game) queueResult() {
	g.pending = append(g.pending, core.LevelResult{
		GameID:       g.ID(),
		LevelID:      g.levelID,
		Won:          g.lvl.Won(),
		TimeTaken:    g.lvl.TimeTaken(),
		MaxTime:      g.lvl.MaxTime(),
		WrongGuesses: g.lvl.WrongGuesses(),
	})
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageLeft = messageDuration
}

// levelScore awards time left in tenths of a second plus a bonus per degree.
func levelScore(lvl *level.Level) int {
	return int(math.Round(lvl.TimeLeft()*10)) + 100*(lvl.NumCoefs()-1)
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Results: g.pending}
	g.pending = nil
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

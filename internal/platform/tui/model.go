package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/equata/internal/core"
	"github.com/vovakirdan/equata/internal/games/equata"
	"github.com/vovakirdan/equata/internal/registry"
	"github.com/vovakirdan/equata/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game.
// It is used directly by `equata play` and embedded in menu sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	runID      string
	tickGen    uint64
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		runID:      storage.NewRunID(),
		tickGen:    nextTickGen(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run started", "game", m.game.ID(), "run", m.runID)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only when nothing is in play.
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}

	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in place
// are reset unless their run is already over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runID = storage.NewRunID()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Debug("run restarted", "game", m.game.ID(), "run", m.runID)
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.saveResults(result.Results)

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// saveResults persists finished level attempts. Failures are logged and
// do not interrupt play.
func (m *GameModel) saveResults(results []core.LevelResult) {
	for _, r := range results {
		m.logger.Info("level finished",
			"level", r.LevelID,
			"won", r.Won,
			"time", fmt.Sprintf("%.2f", r.TimeTaken),
			"misses", r.WrongGuesses,
		)
		if m.store == nil {
			continue
		}
		if _, err := m.store.SaveLevelResult(m.runID, r); err != nil {
			m.logger.Warn("could not save level result", "level", r.LevelID, "error", err)
		}
	}
}

func (m *GameModel) saveScore() {
	score := m.gameState.Score
	m.logger.Info("run over", "game", m.game.ID(), "run", m.runID, "score", score, "won", m.gameState.Won)
	if m.store == nil || score <= 0 {
		return
	}
	if high, err := m.store.HighScore(m.game.ID()); err == nil && score > high {
		m.logger.Info("new high score", "game", m.game.ID(), "score", score, "previous", high)
	}
	if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current screen as text to ~/.equata/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".equata", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screenshotText()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// screenshotText is the screen text, headed by the game state when available.
func (m *GameModel) screenshotText() string {
	text := m.screen.String() + "\n"
	g, ok := m.game.(*equata.Game)
	if !ok {
		return text
	}
	snap := g.Snapshot()
	return fmt.Sprintf("# %s level=%s state=%s score=%d time=%.1fs misses=%d guess=%v\n",
		snap.Mode, snap.LevelID, snap.State, snap.Score, snap.TimeTaken, snap.WrongGuesses, snap.PlayerCoefs) + text
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the user quits or goes back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		newStandaloneModel(NewGameModel(game, store, cfg, logger)),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// standaloneModel ends the program when the embedded game asks for the menu.
type standaloneModel struct {
	GameModel
}

func newStandaloneModel(g GameModel) standaloneModel {
	return standaloneModel{GameModel: g}
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	if g, ok := next.(GameModel); ok {
		m.GameModel = g
	}
	if m.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}

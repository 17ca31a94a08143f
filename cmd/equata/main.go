// equata is a terminal game about matching polynomials: a hidden curve is
// drawn a little at a time and the player edits coefficients to match it.
//
// Usage:
//
//	equata play [level-id]    - Play the campaign, optionally from a level
//	equata play --endless     - Play generated levels of rising degree
//	equata menu               - Pick a mode or level interactively
//	equata levels             - List the level catalog
//	equata validate <file>... - Check level files
//	equata scores [level-id]  - Show scores or a level's best times
//	equata serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible endless levels
//	--db <path>           - Set database path (default: ~/.equata/equata.db)
//	--config <path>       - Use a custom equata.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/equata/internal/config"
	"github.com/vovakirdan/equata/internal/core"
	"github.com/vovakirdan/equata/internal/games/equata/levels"
	"github.com/vovakirdan/equata/internal/platform/tui"
	"github.com/vovakirdan/equata/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "equata",
	Short: "Equata - match the hidden polynomial before time runs out",
	Long: `Equata draws a hidden polynomial from left to right while a timer runs.
Edit the coefficients of your own polynomial until both curves match,
then fire. Every miss costs a second.

Available commands:
  play      - Play the campaign or endless mode
  menu      - Interactive mode and level picker
  levels    - List the level catalog
  validate  - Check level files
  scores    - View scores and best times
  serve     - Start SSH server for remote play

Examples:
  equata play
  equata play 04 --difficulty easy
  equata play --endless --seed 42
  equata menu
  equata serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom equata.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files to use instead of the built-in catalog")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns a logger writing to stderr at the --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	setLevel(logger)
	return logger
}

// newFileLogger returns a logger for full-screen commands, which cannot
// share the terminal with log output. It writes to ~/.equata/equata.log.
func newFileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger("equata"), func() {}
	}
	dir := filepath.Join(home, ".equata")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger("equata"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "equata.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger("equata"), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "equata",
	})
	setLevel(logger)
	return logger, func() { f.Close() }
}

func setLevel(logger *log.Logger) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
}

// loadConfig reads equata.yaml and applies --difficulty.
func loadConfig() config.Config {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		exitf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	cfg, err := config.LoadWithPreset(flagConfig, preset)
	if err != nil {
		exitf("cannot load config: %v", err)
	}
	return cfg
}

// newLoader reads --levels or the built-in levels.
func newLoader(logger *log.Logger) *levels.Loader {
	if flagLevelsDir != "" {
		return levels.NewLoader(os.DirFS(flagLevelsDir), logger)
	}
	return levels.NewEmbeddedLoader(logger)
}

// loadCatalog loads every valid level of the catalog.
func loadCatalog(logger *log.Logger) []levels.Definition {
	defs, err := newLoader(logger).LoadAll()
	if err != nil {
		exitf("cannot load levels: %v", err)
	}
	if len(defs) == 0 {
		logger.Warn("no valid levels found, the campaign will use the default level")
	}
	return defs
}

func newLauncher(logger *log.Logger) tui.Launcher {
	cfg := loadConfig()
	return tui.Launcher{Config: &cfg, Levels: loadCatalog(logger), Logger: logger}
}

// completeLevelIDs offers catalog level ids for shell completion.
func completeLevelIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids, err := newLoader(nil).ListIDs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the results database. Play continues without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return nil
	}
	return store
}

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/equata/internal/games/equata/levels"
	"github.com/vovakirdan/equata/internal/platform/tui"
)

var flagEndless bool

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play the campaign or endless mode",
	Long: `Start playing right away.

The campaign runs through the level catalog in order, starting from
level-id when given. Endless mode generates levels whose degree grows
as you clear them.

Controls:
  Left/Right, A/D   - Select coefficient
  Up/Down, W/S      - Change it by the coarse step
  +/-               - Change it by the fine step
  Enter/Space       - Fire (a miss costs one second)
  N                 - Next level after a clear
  P                 - Pause
  R                 - Restart the level (new run after game over)
  B/Esc             - Leave (when paused or over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 1.5x time, degree starts low
  normal - standard time
  hard   - 0.75x time, degree starts high
  fixed  - no progression in endless mode

Examples:
  equata play
  equata play 05
  equata play --endless --difficulty hard
  equata play --levels ./my-levels`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLevelIDs,
	Run:               runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play generated levels instead of the campaign")
}

func runPlay(_ *cobra.Command, args []string) {
	logger, closeLog := newFileLogger()
	defer closeLog()

	launcher := newLauncher(logger)

	var sel tui.Selection
	switch {
	case flagEndless:
		sel.Endless = true
	case len(args) == 1:
		def, err := newLoader(logger).LoadByID(args[0])
		if errors.Is(err, levels.ErrNotFound) {
			exitf("unknown level %q\nRun 'equata levels' to see the catalog.", args[0])
		}
		if err != nil {
			exitf("cannot load level %q: %v", args[0], err)
		}
		sel.LevelID = def.ID
	}

	store := openStore(logger)
	runErr := tui.Run(launcher.NewGame(sel), store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closeLog()
		exitf("running game: %v", runErr)
	}
}

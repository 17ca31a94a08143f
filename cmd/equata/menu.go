package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/equata/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode or level interactively",
	Long: `Start Equata in interactive menu mode.

The menu lists the campaign, endless mode and every catalog level.
Levels you have cleared are marked. After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scores
  Q            - Quit

Examples:
  equata menu
  equata menu --fps 60
  equata menu --db ./equata.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newFileLogger()
	defer closeLog()

	launcher := newLauncher(logger)
	store := openStore(logger)

	err := tui.RunSession(launcher, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}
	if err != nil {
		closeLog()
		exitf("%v", err)
	}
}

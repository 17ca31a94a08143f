package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/equata/internal/config"
	"github.com/vovakirdan/equata/internal/games/equata"
	"github.com/vovakirdan/equata/internal/games/equata/levels"
	"github.com/vovakirdan/equata/internal/registry"
)

// Selection is what the player picked in the menu.
type Selection struct {
	Endless bool
	LevelID string // campaign start level, empty for the first
}

// Launcher builds games for menu selections from a shared config and catalog.
type Launcher struct {
	Config *config.Config
	Levels []levels.Definition
	Logger *log.Logger // passed to every game; nil discards
}

// NewGame creates the game for sel.
func (l Launcher) NewGame(sel Selection) registry.Game {
	opts := equata.Options{
		Config:     l.Config,
		Levels:     l.Levels,
		StartLevel: sel.LevelID,
		Logger:     l.Logger,
	}
	if sel.Endless {
		return equata.NewEndless(opts)
	}
	return equata.New(opts)
}

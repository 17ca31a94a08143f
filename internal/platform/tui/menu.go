package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/equata/internal/core"
	"github.com/vovakirdan/equata/internal/games/equata/levels"
	"github.com/vovakirdan/equata/internal/storage"
)

type menuItemKind int

const (
	itemCampaign menuItemKind = iota
	itemEndless
	itemLevel
	itemHelp
	itemScores
)

var howToPlay = []string{
	"An enemy has launched a missile. Its path is a polynomial.",
	"The path is drawn from left to right while the clock runs.",
	"Edit the coefficients until your curve predicts its FUTURE,",
	"then fire. Every miss takes a second off your time.",
	"Match it before the whole path is drawn to save the town.",
	"",
	"←/→ select a coefficient   ↑/↓ change it   +/- fine tune",
	"enter fire   p pause   r restart level   n next level",
}

// MenuItem is one selectable menu line.
type MenuItem struct {
	kind    menuItemKind
	Title   string
	Group   string
	LevelID string
	Cleared bool
}

var (
	menuTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuClearedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	menuDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the mode and level picker.
// It records the choice; the enclosing session acts on it.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *Selection
	openScoreboard bool
	showHelp       bool
}

// NewMenuModel creates a menu listing both modes and every catalog level.
// Levels already won are marked using store, which may be nil.
func NewMenuModel(defs []levels.Definition, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	cleared := map[string]bool{}
	if store != nil {
		if c, err := store.ClearedLevels(); err == nil {
			cleared = c
		}
	}

	items := []MenuItem{
		{kind: itemCampaign, Title: "Campaign"},
		{kind: itemEndless, Title: "Endless"},
	}
	for _, d := range defs {
		name := d.Label()
		if d.Tier > 0 {
			name = fmt.Sprintf("Level %d", d.Tier)
		}
		items = append(items, MenuItem{
			kind:    itemLevel,
			Title:   fmt.Sprintf("%s  (degree %d)", name, d.Degree()),
			Group:   d.Group(),
			LevelID: d.ID,
			Cleared: cleared[d.ID],
		})
	}
	items = append(items,
		MenuItem{kind: itemHelp, Title: "How to play"},
		MenuItem{kind: itemScores, Title: "High scores"},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.showHelp {
		if action == MenuActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionScoreboard:
		m.openScoreboard = true

	case MenuActionSelect:
		item := m.items[m.cursor]
		switch item.kind {
		case itemCampaign:
			m.selected = &Selection{}
		case itemEndless:
			m.selected = &Selection{Endless: true}
		case itemLevel:
			m.selected = &Selection{LevelID: item.LevelID}
		case itemHelp:
			m.showHelp = true
		case itemScores:
			m.openScoreboard = true
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("E Q U A T A"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("guess the polynomial before its path runs out"), m.width))
	b.WriteString("\n\n")

	if m.showHelp {
		m.writeHelp(&b)
		return b.String()
	}

	for i, item := range m.items {
		if item.kind == itemLevel && (i == 0 || m.items[i-1].Group != item.Group) {
			b.WriteString(centerText(menuDimStyle.Render(item.Group), m.width))
			b.WriteString("\n")
		}

		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		if item.Cleared {
			line += " " + menuClearedStyle.Render("✓")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) writeHelp(b *strings.Builder) {
	b.WriteString(centerText(menuCursorStyle.Render("How to play"), m.width))
	b.WriteString("\n\n")
	for _, line := range howToPlay {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Press any key to return  |  Q: Quit"), m.width))
	b.WriteString("\n")
}

// Selected returns the chosen mode and level, or nil.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

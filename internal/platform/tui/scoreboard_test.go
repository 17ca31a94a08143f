package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/equata/internal/core"
	"github.com/vovakirdan/equata/internal/games/equata"
	"github.com/vovakirdan/equata/internal/storage"
)

func TestScoreboardBoards(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{120, 340} {
		if _, err := store.SaveScore(equata.IDCampaign, score); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}
	runID := storage.NewRunID()
	for _, r := range []core.LevelResult{
		{GameID: equata.IDCampaign, LevelID: "a", Won: false, TimeTaken: 60, MaxTime: 60},
		{GameID: equata.IDCampaign, LevelID: "a", Won: true, TimeTaken: 12.5, MaxTime: 60},
	} {
		if _, err := store.SaveLevelResult(runID, r); err != nil {
			t.Fatalf("SaveLevelResult() error = %v", err)
		}
	}

	m := NewScoreboardModel(testLauncher(60).Levels, store, 100, 30)

	if got := m.current().gameID; got != equata.IDCampaign {
		t.Fatalf("first board = %q, expected %q", got, equata.IDCampaign)
	}
	if len(m.rows) != 2 || m.rows[0][1] != "340" {
		t.Errorf("rows = %v, expected 340 first", m.rows)
	}

	// Campaign -> Endless -> Levels
	tab := tea.KeyMsg{Type: tea.KeyTab}
	for range 2 {
		next, _ := m.Update(tab)
		m = next.(ScoreboardModel)
	}

	if m.current().kind != boardLevels {
		t.Fatalf("board = %+v, expected the levels board", m.current())
	}
	if len(m.rows) != 1 {
		t.Fatalf("rows = %v, expected only level a", m.rows)
	}
	row := m.rows[0]
	if row[2] != "2" || row[3] != "1" || row[4] != "12.5s" {
		t.Errorf("row = %v, expected 2 tries, 1 win, best 12.5s", row)
	}

	// Wraps back to the first board.
	next, _ := m.Update(tab)
	m = next.(ScoreboardModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 60, 20)
	if len(m.rows) != 0 {
		t.Errorf("rows = %v, expected none", m.rows)
	}
	if m.View() == "" {
		t.Error("View() should render the empty board")
	}

	next, _ := m.Update(runeKey("b"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}

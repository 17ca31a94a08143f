package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/equata/internal/games/equata"
	"github.com/vovakirdan/equata/internal/games/equata/levels"
)

func sessionUpdate(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update() returned %T, expected SessionModel", next)
		}
		m = sm
	}
	return m
}

func TestSessionMenuGameMenu(t *testing.T) {
	store := openTestStore(t)
	m := NewSessionModel(testLauncher(60), store, testRuntime(), nil)

	m = sessionUpdate(t, m, keyEnter)
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("enter on Campaign should start a game")
	}
	if m.gameModel.game.ID() != equata.IDCampaign {
		t.Errorf("game = %q, expected %q", m.gameModel.game.ID(), equata.IDCampaign)
	}

	m = sessionUpdate(t, m, runeKey("p"), TickMsg{Gen: m.gameModel.tickGen})
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show the pause box")
	}

	m = sessionUpdate(t, m, runeKey("b"))
	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatal("back while paused should return to the menu")
	}
	if !strings.Contains(m.View(), "Campaign") {
		t.Error("View() should show the menu")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(testLauncher(60), openTestStore(t), testRuntime(), nil)

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("View() should show the scoreboard")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Error("esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testLauncher(60), nil, testRuntime(), nil)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if got := next.View(); got != "" {
		t.Errorf("View() after quit = %q, expected empty", got)
	}
}

func TestSessionGamesLogThroughSession(t *testing.T) {
	var buf bytes.Buffer
	l := testLauncher(60)
	l.Levels = []levels.Definition{{ID: "flat", Name: "Flat", Coefficients: []float64{1, 0, 1}, MaxTime: 10}}

	m := NewSessionModel(l, nil, testRuntime(), log.New(&buf))
	m = sessionUpdate(t, m, keyEnter)
	if m.screen != screenGame {
		t.Fatal("enter on Campaign should start a game")
	}

	out := buf.String()
	if !strings.Contains(out, "game selected") || !strings.Contains(out, "invalid level") {
		t.Errorf("log = %q, expected the selection and the game's warning", out)
	}
}

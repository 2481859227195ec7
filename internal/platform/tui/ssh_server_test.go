package tui

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())

	m := NewSessionModel(core.DefaultConfig(), Options{Width: 80, Height: 24, AllowBack: true})

	// Menu -> scoreboard -> menu
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}
	if m.View() == "" {
		t.Error("scoreboard View() should not be empty")
	}
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}

	// Menu -> game
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if m.game.game.ID() != "breakout" {
		t.Errorf("selected game = %q, expected breakout", m.game.game.ID())
	}

	// A menu tick keeps the game in its menu phase, so back is allowed.
	m = updateSession(t, m, TickMsg(testEpoch))
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", m.screen)
	}

	// Quit from the menu ends the session.
	m = updateSession(t, m, runeKey("q"))
	if !m.quitting {
		t.Error("session should be quitting")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestSessionIgnoresStrayTicksInMenu(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), Options{Width: 80, Height: 24})

	m = updateSession(t, m, TickMsg(testEpoch))
	if m.screen != screenMenu || m.quitting {
		t.Error("a tick in the menu should change nothing")
	}
}

func TestMenuModelResult(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected MenuResult
	}{
		{"select first", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuResult{GameID: "breakout", Width: 80, Height: 24}},
		{"select second", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuResult{GameID: "breakout_classic", Width: 80, Height: 24}},
		{"cursor stops at end", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuResult{GameID: "breakout_classic", Width: 80, Height: 24}},
		{"scoreboard", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuResult{WantsScoreboard: true, Width: 80, Height: 24}},
		{"quit", []tea.KeyMsg{runeKey("q")}, MenuResult{Quit: true, Width: 80, Height: 24}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, 80, 24)
			for _, k := range tc.keys {
				next, _ := m.Update(k)
				m = next.(MenuModel)
			}
			if got := m.result(); got != tc.expected {
				t.Errorf("result() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

// testChdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"l", runeKey("l"), core.ActionRight, false},
		{"space", runeKey(" "), core.ActionStart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.msg.String(), action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.msg.String(), quit, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(100 * time.Millisecond)

	if h.Held(core.ActionLeft, base) {
		t.Error("action should not be held before any press")
	}

	h.Press(core.ActionLeft, base)
	if !h.Held(core.ActionLeft, base.Add(50*time.Millisecond)) {
		t.Error("action should be held inside the window")
	}
	if !h.Held(core.ActionLeft, base.Add(100*time.Millisecond)) {
		t.Error("action should be held at the window edge")
	}
	if h.Held(core.ActionLeft, base.Add(101*time.Millisecond)) {
		t.Error("action should expire after the window")
	}

	// Auto-repeat extends the hold.
	h.Press(core.ActionRight, base)
	h.Press(core.ActionRight, base.Add(90*time.Millisecond))
	if !h.Held(core.ActionRight, base.Add(180*time.Millisecond)) {
		t.Error("repeat should extend the hold")
	}

	h.Release(core.ActionRight)
	if h.Held(core.ActionRight, base.Add(180*time.Millisecond)) {
		t.Error("released action should not be held")
	}

	h.Press(core.ActionLeft, base)
	h.Reset()
	if h.Held(core.ActionLeft, base) {
		t.Error("Reset() should release every action")
	}
}

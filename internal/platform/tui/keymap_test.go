package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/greensward/tinygolf/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		want   core.Action
		isQuit bool
	}{
		{"a", core.ActionAimLeft, false},
		{"left", core.ActionAimLeft, false},
		{"d", core.ActionAimRight, false},
		{"right", core.ActionAimRight, false},
		{" ", core.ActionSwing, false},
		{"enter", core.ActionConfirm, false},
		{"tab", core.ActionScorecard, false},
		{"esc", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if action != tt.want || isQuit != tt.isQuit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				tt.key, action, isQuit, tt.want, tt.isQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg(" "), &frame) {
		t.Fatal("space is not a quit key")
	}
	if !frame.Has(core.ActionSwing) {
		t.Error("space should set the swing action")
	}

	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should report quit")
	}
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridpath/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"w moves up", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"vim left", runeKey('h'), core.ActionLeft, false},
		{"space paints", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPaint, false},
		{"wall mode", runeKey('1'), core.ActionModeWall, false},
		{"start mode", runeKey('2'), core.ActionModeStart, false},
		{"end mode", runeKey('3'), core.ActionModeEnd, false},
		{"enter runs", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRun, false},
		{"tab cycles algo", tea.KeyMsg{Type: tea.KeyTab}, core.ActionCycleAlgo, false},
		{"m generates maze", runeKey('m'), core.ActionMaze, false},
		{"c clears", runeKey('c'), core.ActionClear, false},
		{"r resets", runeKey('r'), core.ActionReset, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tt.msg.String(), action, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 6, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 9, Y: 9, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, &frame)

	if len(frame.Clicks) != 2 {
		t.Fatalf("got %d clicks, want 2 (press and drag only)", len(frame.Clicks))
	}
	if frame.Clicks[0] != (core.Click{X: 5, Y: 3}) || frame.Clicks[1] != (core.Click{X: 6, Y: 3}) {
		t.Errorf("clicks = %+v", frame.Clicks)
	}
}

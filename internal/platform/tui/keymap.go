package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridpath/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to editor actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionPaint, false
	case "1":
		return core.ActionModeWall, false
	case "2":
		return core.ActionModeStart, false
	case "3":
		return core.ActionModeEnd, false
	case "enter":
		return core.ActionRun, false
	case "tab":
		return core.ActionCycleAlgo, false
	case "m":
		return core.ActionMaze, false
	case "x":
		return core.ActionScatter, false
	case "c":
		return core.ActionClear, false
	case "r":
		return core.ActionReset, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records left presses and drags as paint clicks.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	frame.AddClick(msg.X, msg.Y)
}

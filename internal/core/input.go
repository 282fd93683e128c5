package core

// Action represents a semantic editor/visualizer action, abstracted from
// physical key presses. The session works with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move cursor up
	ActionDown             // S, Down arrow - move cursor down
	ActionLeft             // A, Left arrow - move cursor left
	ActionRight            // D, Right arrow - move cursor right
	ActionPaint            // Space - apply current paint mode at cursor
	ActionModeWall         // 1 - select wall paint mode
	ActionModeStart        // 2 - select start paint mode
	ActionModeEnd          // 3 - select end paint mode
	ActionRun              // Enter - start the search
	ActionClear            // C - cancel run, clear search marks
	ActionReset            // R - cancel run, reset board to defaults
	ActionMaze             // M - generate a fresh maze
	ActionScatter          // X - scatter random walls
	ActionCycleAlgo        // Tab - cycle through registered algorithms
	ActionPause            // P - pause/resume animation
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPaint:
		return "Paint"
	case ActionModeWall:
		return "ModeWall"
	case ActionModeStart:
		return "ModeStart"
	case ActionModeEnd:
		return "ModeEnd"
	case ActionRun:
		return "Run"
	case ActionClear:
		return "Clear"
	case ActionReset:
		return "Reset"
	case ActionMaze:
		return "Maze"
	case ActionScatter:
		return "Scatter"
	case ActionCycleAlgo:
		return "CycleAlgo"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Click records a mouse press or drag position in screen coordinates.
// The session translates clicks into board cells using its own layout.
type Click struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions triggered during this frame plus any mouse clicks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Clicks holds mouse press/drag positions received this frame, in order.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddClick appends a mouse position to this frame.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Clear removes all actions and clicks, reusing the underlying storage.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Clone returns a deep copy of the input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		if v {
			c.Actions[k] = true
		}
	}
	c.Clicks = append(c.Clicks, f.Clicks...)
	return c
}

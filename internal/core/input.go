package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow, W - coarse increase / menu up
	ActionDown            // Down arrow, S - coarse decrease / menu down
	ActionLeft            // Left arrow, A - previous coefficient
	ActionRight           // Right arrow, D - next coefficient
	ActionIncrease        // + or = - fine increase
	ActionDecrease        // - or _ - fine decrease
	ActionConfirm         // Enter - submit the guess
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R - restart the current level
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause
	ActionNext            // N - continue after a cleared level
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionIncrease: "Increase",
	ActionDecrease: "Decrease",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionRestart:  "Restart",
	ActionQuit:     "Quit",
	ActionPause:    "Pause",
	ActionNext:     "Next",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one simulation tick.
// Key repeats between ticks are counted so fast typing is not lost.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]int)}
}

// Set records one occurrence of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times an action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

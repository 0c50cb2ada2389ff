package core

// Action is a semantic input, decoupled from physical keys.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W - hop
	ActionPause          // P, Esc
	ActionRestart        // R, Enter - only meaningful after game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Each action is counted so that two presses within one tick produce two
// hops.
type InputFrame struct {
	counts [ActionQuit + 1]uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records one occurrence of the action.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || int(a) >= len(f.counts) {
		return
	}
	if f.counts[a] < ^uint8(0) {
		f.counts[a]++
	}
}

// Has reports whether the action occurred at least once this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action occurred this frame.
func (f InputFrame) Count(a Action) int {
	if int(a) >= len(f.counts) {
		return 0
	}
	return int(f.counts[a])
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.counts = [ActionQuit + 1]uint8{}
}

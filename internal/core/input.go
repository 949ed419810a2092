package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left
	ActionRight          // D, Right arrow - walk right
	ActionUp             // W, Up arrow - climb up
	ActionDown           // S, Down arrow - climb down
	ActionJump           // Space - jump, also leaves the end screen
	ActionFire           // F, X - shoot the blaster
	ActionConfirm        // Enter - start a run from the home screen
	ActionSkip           // 2 - start directly at level 2 from the home screen
	ActionPause          // P - pause/unpause
	ActionBack           // Escape - back to home
	ActionQuit           // Q, Ctrl+C - exit
)

// Actions lists every action except ActionNone, in declaration order.
var Actions = []Action{
	ActionLeft, ActionRight, ActionUp, ActionDown, ActionJump, ActionFire,
	ActionConfirm, ActionSkip, ActionPause, ActionBack, ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionSkip:
		return "Skip"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// An action is held while its key is down and pressed only on the first
// tick it went down. A pressed action is always held as well.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

func (f *InputFrame) ensure() {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
}

// Set marks an action as freshly pressed (and therefore held) this frame.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.held[a] = true
	f.pressed[a] = true
}

// Hold marks an action as held without a fresh press.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.held[a] = true
}

// Held reports whether the action is down this frame.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed reports whether the action went down this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	for _, v := range f.held {
		if v {
			return false
		}
	}
	return true
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A - move left
	ActionRight              // Right arrow, D - move right
	ActionJump               // Space, W, Up - jump
	ActionContinue           // Space - play again on the win/game over screens
	ActionUp                 // Up, K - menu cursor up
	ActionDown               // Down, J - menu cursor down
	ActionConfirm            // Enter - confirm menu selection
	ActionClose              // Esc, X - close the running session
	ActionToggleMusic        // M - music on/off
	ActionToggleSound        // S - sound cues on/off
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionContinue:
		return "Continue"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionClose:
		return "Close"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction converts a lower-case action name (as used in input scripts)
// into an Action. The second return value is false for unknown names.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "left":
		return ActionLeft, true
	case "right":
		return ActionRight, true
	case "jump":
		return ActionJump, true
	case "continue":
		return ActionContinue, true
	case "up":
		return ActionUp, true
	case "down":
		return ActionDown, true
	case "confirm":
		return ActionConfirm, true
	case "close":
		return ActionClose, true
	case "music":
		return ActionToggleMusic, true
	case "sound":
		return ActionToggleSound, true
	case "quit":
		return ActionQuit, true
	}
	return ActionNone, false
}

// InputFrame represents the input state during one simulation tick.
// Movement and jump are level-triggered: an action present in the frame is
// treated as "held" for that tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

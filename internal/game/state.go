package game

// State is the top-level screen the session is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateWin
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Trigger is an event that may move the state machine.
type Trigger int

const (
	TriggerStart          Trigger = iota // "Start Game" chosen in the menu
	TriggerWin                           // Progress reached the win threshold
	TriggerLivesExhausted                // Last life lost
	TriggerContinue                      // Play again from the win/game over screen
	TriggerClose                         // Close button while playing or on the win screen
)

// String returns a human-readable name for the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerWin:
		return "win"
	case TriggerLivesExhausted:
		return "lives_exhausted"
	case TriggerContinue:
		return "continue"
	case TriggerClose:
		return "close"
	default:
		return "unknown"
	}
}

// transitions lists every legal move; anything absent leaves the state alone.
var transitions = map[State]map[Trigger]State{
	StateMenu: {
		TriggerStart: StatePlaying,
	},
	StatePlaying: {
		TriggerWin:            StateWin,
		TriggerLivesExhausted: StateGameOver,
		TriggerClose:          StateMenu,
	},
	StateWin: {
		TriggerContinue: StatePlaying,
		TriggerClose:    StateMenu,
	},
	StateGameOver: {
		TriggerContinue: StatePlaying,
	},
}

// Transition returns the state that follows from under t, and whether the
// trigger applies at all.
func Transition(from State, t Trigger) (State, bool) {
	next, ok := transitions[from][t]
	if !ok {
		return from, false
	}
	return next, true
}

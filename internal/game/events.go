package game

// Event is a discrete cue for the presentation layer, produced during a
// single Step, Click or HandleAction call.
type Event int

const (
	EventJump Event = iota // Jump or stomp bounce sound
	EventHurt              // Damage sound
	EventMusicStarted
	EventMusicStopped
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventHurt:
		return "hurt"
	case EventMusicStarted:
		return "music_started"
	case EventMusicStopped:
		return "music_stopped"
	default:
		return "unknown"
	}
}

// IsSound reports whether the event is a sound cue gated by the sound toggle.
func (e Event) IsSound() bool {
	return e == EventJump || e == EventHurt
}

// StepResult is returned after every call that can change the session.
type StepResult struct {
	State  State
	Events []Event
}

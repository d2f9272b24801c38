package narrator

// StateType represents the lifecycle state of a narration session.
type StateType int

const (
	// StateIdle indicates no narration is active.
	StateIdle StateType = iota
	// StateLoading is reserved for asynchronous utterance preparation.
	// No current transition enters it.
	StateLoading
	// StatePlaying indicates narration is being spoken.
	StatePlaying
	// StatePaused indicates narration is suspended mid-utterance.
	StatePaused
	// StateDone indicates the utterance completed naturally.
	StateDone
	// StateError indicates the platform reported a narration failure.
	StateError
)

// String returns the string representation of the state.
func (s StateType) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Active returns true while an utterance is live (speaking or suspended).
func (s StateType) Active() bool {
	return s == StatePlaying || s == StatePaused
}

// Terminal returns true for states a narration attempt cannot leave without
// an explicit user action.
func (s StateType) Terminal() bool {
	return s == StateDone || s == StateError
}

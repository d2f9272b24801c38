// Package speech defines the synthesizer contract the narration player
// speaks through. Implementations wrap a platform text-to-speech capability
// and report playback progress as asynchronous events.
package speech

// EventType identifies the kind of synthesizer event.
type EventType int

const (
	// EventWord is emitted once per spoken word boundary.
	EventWord EventType = iota
	// EventEnd is emitted when an utterance finishes naturally.
	EventEnd
	// EventError is emitted when synthesis or playback fails.
	EventError
)

// String returns the string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventWord:
		return "word"
	case EventEnd:
		return "end"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one asynchronous signal from the synthesizer. Every event is
// tagged with the utterance it belongs to so consumers can discard signals
// from superseded utterances.
type Event struct {
	Type      EventType
	Utterance uint64 // ID of the utterance that produced the event
	Err       error  // Set for EventError
}

// Voice describes one synthesizer voice.
type Voice struct {
	ID   string // Engine-specific identifier
	Name string // Human-readable name
	Lang string // BCP 47 language tag, e.g. "en-US"
}

// Utterance is one unit of synthesized speech. Exactly one utterance is
// live per synthesizer at any time; Speak replaces whatever was playing.
type Utterance struct {
	ID    uint64  // Caller-assigned generation tag
	Text  string  // Plain text to speak
	Rate  float64 // Speech rate multiplier (1.0 = normal)
	Pitch float64 // Pitch multiplier (1.0 = neutral)
	Lang  string  // Requested language tag
	Voice Voice   // Selected voice; zero value means platform default
}

// Synthesizer is the platform speech capability. Speak begins asynchronous
// playback and must cancel any in-flight utterance first, so at most one
// utterance is ever live.
type Synthesizer interface {
	// Speak starts speaking the utterance asynchronously.
	Speak(u Utterance) error

	// Cancel discards the current utterance, if any.
	Cancel() error

	// Pause suspends playback of the current utterance.
	Pause() error

	// Resume continues a paused utterance.
	Resume() error

	// Voices lists the voices available to this synthesizer.
	Voices() []Voice

	// Events delivers word-boundary, end, and error events. The channel is
	// closed when the synthesizer shuts down.
	Events() <-chan Event

	// Close cancels playback and releases resources.
	Close() error
}

// Package noop provides a silent speech.Synthesizer for hosts without a
// working narration engine. Utterances complete immediately, so a caller
// driving playback state never waits on audio that will not play.
package noop

import (
	"sync"

	"github.com/manpreetkaur367/Elexico/speech"
)

// Synthesizer accepts every utterance and reports it finished at once.
type Synthesizer struct {
	mu     sync.Mutex
	events chan speech.Event
	closed bool
}

// New creates a silent synthesizer.
func New() *Synthesizer {
	return &Synthesizer{events: make(chan speech.Event, 8)}
}

// Speak acknowledges the utterance with an immediate end event.
func (s *Synthesizer) Speak(u speech.Utterance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return speech.ErrSynthesizerClosed
	}
	select {
	case s.events <- speech.Event{Type: speech.EventEnd, Utterance: u.ID}:
	default:
	}
	return nil
}

// Cancel is a no-op; nothing is ever playing.
func (s *Synthesizer) Cancel() error { return nil }

// Pause is a no-op.
func (s *Synthesizer) Pause() error { return nil }

// Resume is a no-op.
func (s *Synthesizer) Resume() error { return nil }

// Voices reports no voices; callers fall back to the platform default.
func (s *Synthesizer) Voices() []speech.Voice { return nil }

// Events returns the synthesizer event channel.
func (s *Synthesizer) Events() <-chan speech.Event {
	return s.events
}

// Close shuts the synthesizer down.
func (s *Synthesizer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.events)
	return nil
}

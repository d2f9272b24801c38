// Package mock provides a scripted synthesizer for testing.
package mock

import (
	"sync"

	"github.com/manpreetkaur367/Elexico/speech"
)

// Synthesizer implements speech.Synthesizer without producing audio.
// Tests drive it by emitting events for the current utterance.
type Synthesizer struct {
	mu sync.Mutex

	voices  []speech.Voice
	events  chan speech.Event
	closed  bool
	current uint64 // ID of the live utterance, 0 if none
	paused  bool

	// Call records for assertions.
	spoken  []speech.Utterance
	cancels int
	pauses  int
	resumes int

	// Failure injection.
	speakErr error
}

// New creates a mock synthesizer with a default English voice.
func New() *Synthesizer {
	return &Synthesizer{
		voices: []speech.Voice{
			{ID: "mock-en", Name: "Mock English", Lang: "en-US"},
		},
		events: make(chan speech.Event, 64),
	}
}

// SetVoices replaces the advertised voice list.
func (s *Synthesizer) SetVoices(voices []speech.Voice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voices = voices
}

// FailSpeakWith makes the next Speak calls return err.
func (s *Synthesizer) FailSpeakWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speakErr = err
}

// Speak records the utterance and makes it current.
func (s *Synthesizer) Speak(u speech.Utterance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.speakErr != nil {
		return s.speakErr
	}

	s.current = u.ID
	s.paused = false
	s.spoken = append(s.spoken, u)
	return nil
}

// Cancel discards the current utterance.
func (s *Synthesizer) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = 0
	s.paused = false
	s.cancels++
	return nil
}

// Pause suspends the current utterance.
func (s *Synthesizer) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
	s.pauses++
	return nil
}

// Resume continues the current utterance.
func (s *Synthesizer) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
	s.resumes++
	return nil
}

// Voices returns the configured voice list.
func (s *Synthesizer) Voices() []speech.Voice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voices
}

// Events returns the event channel.
func (s *Synthesizer) Events() <-chan speech.Event {
	return s.events
}

// Close shuts the synthesizer down and closes the event channel.
func (s *Synthesizer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	return nil
}

// EmitWords emits n word-boundary events for the current utterance.
func (s *Synthesizer) EmitWords(n int) {
	id := s.CurrentUtterance()
	for i := 0; i < n; i++ {
		s.events <- speech.Event{Type: speech.EventWord, Utterance: id}
	}
}

// EmitWordsFor emits n word-boundary events tagged with an arbitrary
// utterance ID, for stale-event tests.
func (s *Synthesizer) EmitWordsFor(id uint64, n int) {
	for i := 0; i < n; i++ {
		s.events <- speech.Event{Type: speech.EventWord, Utterance: id}
	}
}

// EmitEnd emits an end-of-utterance event for the current utterance.
func (s *Synthesizer) EmitEnd() {
	s.events <- speech.Event{Type: speech.EventEnd, Utterance: s.CurrentUtterance()}
}

// EmitEndFor emits an end event tagged with an arbitrary utterance ID.
func (s *Synthesizer) EmitEndFor(id uint64) {
	s.events <- speech.Event{Type: speech.EventEnd, Utterance: id}
}

// EmitError emits an error event for the current utterance.
func (s *Synthesizer) EmitError(err error) {
	s.events <- speech.Event{Type: speech.EventError, Utterance: s.CurrentUtterance(), Err: err}
}

// CurrentUtterance returns the ID of the live utterance, 0 if none.
func (s *Synthesizer) CurrentUtterance() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SpeakCount returns how many times Speak succeeded.
func (s *Synthesizer) SpeakCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.spoken)
}

// LastUtterance returns the most recently spoken utterance.
func (s *Synthesizer) LastUtterance() (speech.Utterance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.spoken) == 0 {
		return speech.Utterance{}, false
	}
	return s.spoken[len(s.spoken)-1], true
}

// CancelCount returns how many times Cancel was called.
func (s *Synthesizer) CancelCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancels
}

// PauseCount returns how many times Pause was called.
func (s *Synthesizer) PauseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pauses
}

// ResumeCount returns how many times Resume was called.
func (s *Synthesizer) ResumeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumes
}

// IsPaused reports whether the synthesizer is paused.
func (s *Synthesizer) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

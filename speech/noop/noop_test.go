package noop

import (
	"errors"
	"testing"
	"time"

	"github.com/manpreetkaur367/Elexico/speech"
)

// TestSpeakCompletesImmediately tests that every utterance ends right away,
// tagged with its own id.
func TestSpeakCompletesImmediately(t *testing.T) {
	s := New()
	defer s.Close() //nolint:errcheck

	if err := s.Speak(speech.Utterance{ID: 7, Text: "anything at all"}); err != nil {
		t.Fatalf("Speak() = %v, want nil", err)
	}

	select {
	case ev := <-s.Events():
		if ev.Type != speech.EventEnd {
			t.Errorf("event type = %v, want EventEnd", ev.Type)
		}
		if ev.Utterance != 7 {
			t.Errorf("event utterance = %d, want 7", ev.Utterance)
		}
	case <-time.After(time.Second):
		t.Fatal("no end event emitted")
	}
}

// TestSpeakAfterClose tests the closed-synthesizer error.
func TestSpeakAfterClose(t *testing.T) {
	s := New()
	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v, want nil", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() = %v, want nil", err)
	}

	if err := s.Speak(speech.Utterance{ID: 1, Text: "too late"}); !errors.Is(err, speech.ErrSynthesizerClosed) {
		t.Errorf("Speak() after close = %v, want ErrSynthesizerClosed", err)
	}
}

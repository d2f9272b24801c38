package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manpreetkaur367/Elexico/narrator"
	"github.com/manpreetkaur367/Elexico/slides"
	"github.com/manpreetkaur367/Elexico/speech/mock"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	player := narrator.NewPlayer(mock.New(), narrator.Config{})
	t.Cleanup(func() { _ = player.Close() })

	cfg := Config{Sentences: 3, GlamourStyle: "notty"}
	m := newModel(cfg, slides.Builtin(), &fakeSummarizer{}, player, nil).(model)
	m.setSize(80, 40)
	return m
}

// TestSlideNavigation tests index movement and its bounds.
func TestSlideNavigation(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.gotoSlide(1)
	m = next.(model)
	if m.index != 1 {
		t.Errorf("index = %d, want 1", m.index)
	}
	if cmd == nil {
		t.Error("slide change did not trigger a render")
	}

	next, _ = m.gotoSlide(-1)
	if got := next.(model).index; got != 1 {
		t.Errorf("index = %d, want navigation below zero ignored", got)
	}

	next, _ = m.gotoSlide(len(m.deck))
	if got := next.(model).index; got != 1 {
		t.Errorf("index = %d, want navigation past the end ignored", got)
	}
}

// TestSlideChangeResetsAssistant tests that moving between slides discards
// the previous slide's summary.
func TestSlideChangeResetsAssistant(t *testing.T) {
	m := newTestModel(t)
	m.assistant.summary = "belongs to slide zero"

	next, _ := m.gotoSlide(1)
	m = next.(model)

	if m.assistant.summary != "" {
		t.Errorf("summary = %q, want cleared on slide change", m.assistant.summary)
	}
	if m.assistant.slide.ID != m.deck[1].ID {
		t.Errorf("assistant slide = %q, want %q", m.assistant.slide.ID, m.deck[1].ID)
	}
}

// TestPickerFilter tests the fuzzy picker flow: filter, select, return.
func TestPickerFilter(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	if m.state != stateShowPicker {
		t.Fatalf("state = %v, want picker", m.state)
	}
	if len(m.matches) != len(m.deck) {
		t.Errorf("matches = %d, want full deck with empty filter", len(m.matches))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cach")})
	m = next.(model)
	if len(m.matches) == 0 {
		t.Fatal("no matches for 'cach', want the caching slide")
	}
	if m.deck[m.matches[0]].ID != "caching" {
		t.Errorf("top match = %q, want caching", m.deck[m.matches[0]].ID)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if m.state != stateShowSlide {
		t.Errorf("state = %v, want back to slide view", m.state)
	}
	if m.deck[m.index].ID != "caching" {
		t.Errorf("current slide = %q, want caching", m.deck[m.index].ID)
	}
}

// TestPickerEscape tests that cancelling the picker keeps the slide.
func TestPickerEscape(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)

	if m.state != stateShowSlide {
		t.Errorf("state = %v, want slide view", m.state)
	}
	if m.index != 0 {
		t.Errorf("index = %d, want unchanged", m.index)
	}
}

// TestDeckReloadKeepsSlide tests that a reload holds position by slide id.
func TestDeckReloadKeepsSlide(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.gotoSlide(2)
	m = next.(model)
	id := m.deck[2].ID

	// Same slides, reversed order.
	reversed := make(slides.Deck, len(m.deck))
	for i, s := range m.deck {
		reversed[len(m.deck)-1-i] = s
	}

	next, _ = m.reloadDeck(reversed)
	m = next.(model)

	if m.deck[m.index].ID != id {
		t.Errorf("current slide = %q, want %q kept across reload", m.deck[m.index].ID, id)
	}
}

package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manpreetkaur367/Elexico/narrator"
	"github.com/manpreetkaur367/Elexico/slides"
)

// Summarizer produces narration text for a slide. Satisfied by
// summary.Requester; tests substitute their own.
type Summarizer interface {
	Summarize(ctx context.Context, slide slides.Slide, sentences int) (string, error)
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// summaryMsg carries the result of one generation attempt. The id ties the
// result back to the request that started it; anything else is stale.
type summaryMsg struct {
	id      uint64
	slideID string
	text    string
	err     error
}

// narrationMsg is a state snapshot pushed by the narration player.
type narrationMsg narrator.Snapshot

// slideRenderedMsg carries a slide body rendered with glamour.
type slideRenderedMsg struct {
	index int
	body  string
}

// deckReloadedMsg arrives when the watched deck file changes on disk.
type deckReloadedMsg slides.Deck

type statusTimeoutMsg struct{}

// COMMANDS

func generateSummary(s Summarizer, slide slides.Slide, sentences int, id uint64) tea.Cmd {
	return func() tea.Msg {
		text, err := s.Summarize(context.Background(), slide, sentences)
		return summaryMsg{id: id, slideID: slide.ID, text: text, err: err}
	}
}

func listenNarration(p *narrator.Player) tea.Cmd {
	return func() tea.Msg {
		return narrationMsg(<-p.Updates())
	}
}

func watchDeck(w *slides.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		return deckReloadedMsg(<-w.Updates())
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusTimeoutMsg{}
	})
}

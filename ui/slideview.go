package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/log"
)

// renderSlide renders the slide at index with glamour, off the Update loop.
func renderSlide(m model, index int) tea.Cmd {
	return func() tea.Msg {
		s, err := glamourRender(m, m.deck[index].Markdown())
		if err != nil {
			log.Error("error rendering with Glamour", "error", err)
			return errMsg{err}
		}
		return slideRenderedMsg{index: index, body: s}
	}
}

func glamourRender(m model, markdown string) (string, error) {
	if !m.common.cfg.GlamourEnabled {
		return markdown, nil
	}

	width := max(0, min(int(m.common.cfg.GlamourMaxWidth), m.viewport.Width)) //nolint:gosec

	options := []glamour.TermRendererOption{
		glamour.WithStandardStyle(m.common.cfg.GlamourStyle),
		glamour.WithWordWrap(width),
	}
	if m.common.cfg.GlamourStyle == styles.AutoStyle {
		options[0] = glamour.WithAutoStyle()
	}
	if m.common.cfg.PreserveNewLines {
		options = append(options, glamour.WithPreservedNewLines())
	}

	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("error creating glamour renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}

	// trim lines
	lines := strings.Split(out, "\n")
	var b strings.Builder
	for i, s := range lines {
		b.WriteString(strings.TrimRight(s, " "))
		if i < len(lines)-1 {
			b.WriteRune('\n')
		}
	}
	return b.String(), nil
}

// RenderMarkdown renders a slide body for plain CLI output, outside the TUI.
func RenderMarkdown(markdown, style string, width uint) (string, error) {
	options := []glamour.TermRendererOption{
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(int(width)), //nolint:gosec
	}
	if style == styles.AutoStyle {
		options[0] = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("error creating glamour renderer: %w", err)
	}
	return r.Render(markdown)
}

// Package ui provides the slideshow TUI with the narration assistant panel.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
	te "github.com/muesli/termenv"

	"github.com/manpreetkaur367/Elexico/narrator"
	"github.com/manpreetkaur367/Elexico/slides"
)

const (
	// assistantHeight is the vertical space reserved for the assistant
	// panel below the slide viewport.
	assistantHeight = 14

	ellipsis = "…"
)

// NewProgram returns a new Tea program over the given deck. The player is
// owned by the program and closed on quit; watcher may be nil when the deck
// is not file-backed.
func NewProgram(cfg Config, deck slides.Deck, summarizer Summarizer, player *narrator.Player, watcher *slides.Watcher) *tea.Program {
	log.Debug("Starting elexico", "slides", len(deck), "glamour", cfg.GlamourEnabled)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	m := newModel(cfg, deck, summarizer, player, watcher)
	return tea.NewProgram(m, opts...)
}

// state is the top-level application state.
type state int

const (
	stateShowSlide state = iota
	stateShowPicker
)

func (s state) String() string {
	return map[state]string{
		stateShowSlide:  "showing slide",
		stateShowPicker: "picking a slide",
	}[s]
}

// Common stuff we'll need to access in all models.
type commonModel struct {
	cfg    Config
	width  int
	height int
}

type model struct {
	common   *commonModel
	state    state
	fatalErr error

	deck     slides.Deck
	index    int
	viewport viewport.Model
	showHelp bool

	assistant assistantModel
	watcher   *slides.Watcher

	// Slide picker
	filterInput textinput.Model
	matches     []int
	cursor      int
}

func newModel(cfg Config, deck slides.Deck, summarizer Summarizer, player *narrator.Player, watcher *slides.Watcher) tea.Model {
	if cfg.GlamourStyle == styles.AutoStyle {
		if te.HasDarkBackground() {
			cfg.GlamourStyle = styles.DarkStyle
		} else {
			cfg.GlamourStyle = styles.LightStyle
		}
	}

	common := commonModel{cfg: cfg}

	fi := textinput.New()
	fi.Prompt = "Find: "
	fi.PromptStyle = pickerCursorStyle
	fi.CharLimit = 64

	m := model{
		common:      &common,
		state:       stateShowSlide,
		deck:        deck,
		watcher:     watcher,
		filterInput: fi,
	}
	m.assistant = newAssistantModel(&common, summarizer, player, cfg.Sentences)
	if len(deck) > 0 {
		m.assistant = m.assistant.setSlide(deck[0])
	}
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{listenNarration(m.assistant.player)}
	if cmd := watchDeck(m.watcher); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If there's been an error, any key exits
	if m.fatalErr != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, m.quit()
		}
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateShowPicker {
			return m.updatePicker(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, m.quit()

		case "ctrl+z":
			return m, tea.Suspend

		case "left", "h":
			return m.gotoSlide(m.index - 1)

		case "right", "l":
			return m.gotoSlide(m.index + 1)

		case "tab", "/":
			m.state = stateShowPicker
			m.filterInput.SetValue("")
			m.filterInput.Focus()
			m.matches = allIndexes(m.deck)
			m.cursor = m.index
			return m, textinput.Blink

		case "?":
			m.showHelp = !m.showHelp
			return m, nil

		case "g", "+", "=", "-", "_", " ", "r", "s", "c":
			// Assistant keys; don't let space and friends scroll the slide.
			var cmd tea.Cmd
			m.assistant, cmd = m.assistant.update(msg)
			return m, cmd
		}

	// Window size is received when starting up and on every resize
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		cmds = append(cmds, renderSlide(m, m.index))

	case slideRenderedMsg:
		if msg.index == m.index {
			m.viewport.SetContent(msg.body)
			m.viewport.GotoTop()
		}

	case deckReloadedMsg:
		return m.reloadDeck(slides.Deck(msg))

	case errMsg:
		m.fatalErr = msg.err
		return m, nil

	default:
		var cmd tea.Cmd
		m.assistant, cmd = m.assistant.update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if m.fatalErr != nil {
		return errorView(m.fatalErr, true)
	}
	if m.state == stateShowPicker {
		return m.pickerView()
	}
	if len(m.deck) == 0 {
		return errorView(slides.ErrEmptyDeck, true)
	}

	slide := m.deck[m.index]
	title := runewidth.Truncate(slide.Icon+" "+slide.Title, max(10, m.common.width-10), ellipsis)
	header := titleBarStyle.Render(title) +
		positionStyle.Render(fmt.Sprintf("%d/%d", m.index+1, len(m.deck)))

	parts := []string{
		header,
		m.viewport.View(),
		m.assistant.view(m.common.width),
	}
	if m.showHelp {
		parts = append(parts, m.helpView())
	} else {
		parts = append(parts, helpStyle.Render(" ←/→ slides · tab find · g generate · space play/pause · ? help · q quit"))
	}
	return strings.Join(parts, "\n")
}

// quit tears down narration before leaving the alt screen. Closing the
// player cancels any live utterance unconditionally.
func (m model) quit() tea.Cmd {
	log.Debug("Shutting down narration player")
	if err := m.assistant.player.Close(); err != nil {
		log.Warn("Player close error", "error", err)
	}
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			log.Warn("Deck watcher close error", "error", err)
		}
	}
	return tea.Quit
}

func (m model) gotoSlide(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.deck) || index == m.index {
		return m, nil
	}
	m.index = index
	m.assistant = m.assistant.setSlide(m.deck[index])
	return m, renderSlide(m, index)
}

// reloadDeck swaps in a deck freshly read from disk, keeping the current
// slide when its id survives the edit.
func (m model) reloadDeck(deck slides.Deck) (tea.Model, tea.Cmd) {
	if len(deck) == 0 {
		return m, watchDeck(m.watcher)
	}
	log.Info("Deck reloaded", "slides", len(deck))

	currentID := ""
	if m.index < len(m.deck) {
		currentID = m.deck[m.index].ID
	}
	m.deck = deck
	m.index = 0
	for i, s := range deck {
		if s.ID == currentID {
			m.index = i
			break
		}
	}
	m.assistant = m.assistant.setSlide(deck[m.index])
	return m, tea.Batch(renderSlide(m, m.index), watchDeck(m.watcher))
}

func (m *model) setSize(width, height int) {
	m.common.width = width
	m.common.height = height

	m.viewport.Width = width
	m.viewport.Height = max(1, height-assistantHeight-2)
}

// PICKER

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		m.state = stateShowSlide
		m.filterInput.Blur()
		return m, nil

	case "enter":
		m.state = stateShowSlide
		m.filterInput.Blur()
		if m.cursor < len(m.matches) {
			return m.gotoSlide(m.matches[m.cursor])
		}
		return m, nil

	case "up", "ctrl+k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "ctrl+j":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)

	if term := m.filterInput.Value(); term == "" {
		m.matches = allIndexes(m.deck)
	} else {
		m.matches = m.deck.Filter(term)
	}
	if m.cursor >= len(m.matches) {
		m.cursor = 0
	}
	return m, cmd
}

func (m model) pickerView() string {
	var b strings.Builder
	b.WriteString("\n  " + m.filterInput.View() + "\n\n")

	if len(m.matches) == 0 {
		b.WriteString(subtleStyle.Render("  Nothing found."))
		return b.String()
	}

	for i, idx := range m.matches {
		slide := m.deck[idx]
		line := fmt.Sprintf("%s %s", slide.Icon, slide.Title)
		if i == m.cursor {
			b.WriteString(pickerCursorStyle.Render("  > "+line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render("  ↑/↓ move · enter select · esc cancel"))
	return b.String()
}

func (m model) helpView() string {
	rows := []string{
		"←/→, h/l  previous/next slide",
		"tab, /    fuzzy slide picker",
		"g         generate summary",
		"+/-       summary length",
		"space     play/pause narration",
		"r         replay narration",
		"s         stop narration",
		"c         copy summary to clipboard",
		"q         quit",
	}
	return helpStyle.Render(" " + strings.Join(rows, "\n "))
}

// ETC

func errorView(err error, fatal bool) string {
	exitMsg := "press any key to "
	if fatal {
		exitMsg += "exit"
	} else {
		exitMsg += "return"
	}
	s := fmt.Sprintf("%s\n\n%v\n\n%s",
		errorTitleStyle.Render("ERROR"),
		err,
		subtleStyle.Render(exitMsg),
	)
	return "\n" + indent(s, 3)
}

func allIndexes(d slides.Deck) []int {
	idx := make([]int, len(d))
	for i := range d {
		idx[i] = i
	}
	return idx
}

// Lightweight version of reflow's indent function.
func indent(s string, n int) string {
	if n <= 0 || s == "" {
		return s
	}
	l := strings.Split(s, "\n")
	b := strings.Builder{}
	i := strings.Repeat(" ", n)
	for _, v := range l {
		fmt.Fprintf(&b, "%s%s\n", i, v)
	}
	return b.String()
}

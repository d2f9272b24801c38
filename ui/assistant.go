package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	"github.com/manpreetkaur367/Elexico/narrator"
	"github.com/manpreetkaur367/Elexico/slides"
	"github.com/manpreetkaur367/Elexico/summary"
)

const statusMessageTimeout = time.Second * 3

// assistantModel drives the summary-and-narration panel for the current
// slide. At most one generation request is ever in flight; every request
// carries an id and results whose id is no longer current are dropped.
type assistantModel struct {
	common     *commonModel
	summarizer Summarizer
	player     *narrator.Player

	slide     slides.Slide
	sentences int

	summary   string
	summaryAt time.Time

	generating bool
	requestSeq uint64 // id of the most recent request; older results are stale

	narration narrator.Snapshot

	spin spinner.Model
	bar  progress.Model

	status      string
	statusIsErr bool
}

func newAssistantModel(common *commonModel, summarizer Summarizer, player *narrator.Player, sentences int) assistantModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5FD2"))

	return assistantModel{
		common:     common,
		summarizer: summarizer,
		player:     player,
		sentences:  summary.ClampSentences(sentences),
		spin:       sp,
		bar:        progress.New(progress.WithDefaultGradient()),
	}
}

// setSlide points the assistant at a new slide. The previous summary and any
// narration belong to the old slide, so both are discarded; bumping the
// request id makes any in-flight generation result stale on arrival.
func (a assistantModel) setSlide(slide slides.Slide) assistantModel {
	a.slide = slide
	a.summary = ""
	a.summaryAt = time.Time{}
	a.generating = false
	a.requestSeq++
	a.player.Stop()
	a.player.SetText("")
	a.narration = a.player.Snapshot()
	return a
}

// generate kicks off a summary request unless one is already running.
func (a assistantModel) generate() (assistantModel, tea.Cmd) {
	if a.generating {
		log.Debug("Generation already in flight, ignoring", "slide", a.slide.ID)
		return a, nil
	}

	a.generating = true
	a.requestSeq++
	a.summary = ""
	a.summaryAt = time.Time{}
	a.player.Stop()
	a.player.SetText("")

	log.Debug("Requesting summary", "slide", a.slide.ID, "sentences", a.sentences, "request", a.requestSeq)
	return a, tea.Batch(
		a.spin.Tick,
		generateSummary(a.summarizer, a.slide, a.sentences, a.requestSeq),
	)
}

func (a assistantModel) update(msg tea.Msg) (assistantModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "g":
			return a.generate()

		case "+", "=":
			a.sentences = summary.ClampSentences(a.sentences + 1)

		case "-", "_":
			a.sentences = summary.ClampSentences(a.sentences - 1)

		case " ":
			return a.togglePlayback()

		case "r":
			if a.summary != "" {
				a.player.Replay()
			}

		case "s":
			a.player.Stop()

		case "c":
			if a.summary == "" {
				break
			}
			if err := clipboard.WriteAll(a.summary); err != nil {
				return a.setStatus("Unable to copy: "+err.Error(), true)
			}
			return a.setStatus("Copied summary", false)
		}

	case summaryMsg:
		if msg.id != a.requestSeq {
			log.Debug("Dropping stale summary result",
				"slide", msg.slideID, "request", msg.id, "current", a.requestSeq)
			return a, nil
		}
		a.generating = false
		if msg.err != nil {
			log.Error("Summary generation failed", "slide", msg.slideID, "error", msg.err)
			return a.setStatus("Summary failed: "+msg.err.Error(), true)
		}
		a.summary = msg.text
		a.summaryAt = time.Now()
		a.player.SetText(msg.text)
		a.narration = a.player.Snapshot()

	case narrationMsg:
		a.narration = narrator.Snapshot(msg)
		cmds = append(cmds, listenNarration(a.player))

	case statusTimeoutMsg:
		a.status = ""
		a.statusIsErr = false

	case spinner.TickMsg:
		if a.generating {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

// togglePlayback maps the space key onto the player: pause while speaking,
// otherwise (re)start whatever summary is loaded.
func (a assistantModel) togglePlayback() (assistantModel, tea.Cmd) {
	if a.narration.State == narrator.StatePlaying {
		if err := a.player.Pause(); err != nil {
			return a.setStatus("Pause failed: "+err.Error(), true)
		}
		return a, nil
	}

	if a.summary == "" {
		return a.setStatus("Nothing to narrate, press g first", false)
	}
	if err := a.player.Play(); err != nil {
		return a.setStatus("Narration failed: "+err.Error(), true)
	}
	return a, nil
}

func (a assistantModel) setStatus(s string, isErr bool) (assistantModel, tea.Cmd) {
	a.status = s
	a.statusIsErr = isErr
	return a, clearStatusAfter(statusMessageTimeout)
}

func (a assistantModel) view(width int) string {
	var b strings.Builder

	title := panelTitleStyle.Render("Assistant")
	length := subtleStyle.Render(fmt.Sprintf(" · %d sentences", a.sentences))
	b.WriteString(title + length + "\n\n")

	inner := width - 4 // panel border and padding
	if inner < 10 {
		inner = 10
	}

	switch {
	case a.generating:
		b.WriteString(a.spin.View() + subtleStyle.Render(" Generating summary…"))
	case a.summary != "":
		b.WriteString(summaryStyle.Render(wordwrap.String(a.summary, inner)))
		b.WriteString("\n\n" + summaryAgeStyle.Render("generated "+humanize.Time(a.summaryAt)))
	default:
		b.WriteString(subtleStyle.Render("Press g to generate a spoken summary of this slide."))
	}

	if line := a.narrationView(inner); line != "" {
		b.WriteString("\n\n" + line)
	}

	if a.status != "" {
		style := subtleStyle
		if a.statusIsErr {
			style = statusErrorStyle
		}
		b.WriteString("\n" + style.Render(a.status))
	}

	return panelBorderStyle.Width(width - 2).Render(b.String())
}

// narrationView renders the playback line: a state marker and, while a
// session is live, the estimated progress bar.
func (a assistantModel) narrationView(width int) string {
	var label string
	switch a.narration.State {
	case narrator.StateIdle:
		return ""
	case narrator.StateLoading:
		label = subtleStyle.Render("… preparing")
	case narrator.StatePlaying:
		label = narrationPlayingStyle.Render("▶ playing")
	case narrator.StatePaused:
		label = narrationPausedStyle.Render("⏸ paused")
	case narrator.StateDone:
		label = narrationDoneStyle.Render("■ done")
	case narrator.StateError:
		msg := "narration error"
		if a.narration.Err != nil {
			msg = a.narration.Err.Error()
		}
		return narrationErrorStyle.Render("✗ " + msg)
	}

	barWidth := width - lipgloss.Width(label) - 7
	if barWidth < 10 {
		return label
	}
	a.bar.Width = barWidth
	bar := a.bar.ViewAs(float64(a.narration.Progress) / 100)
	pct := subtleStyle.Render(fmt.Sprintf("%3d%%", a.narration.Progress))

	return label + " " + bar + " " + pct
}

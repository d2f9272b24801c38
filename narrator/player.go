// Package narrator implements the narration player: a small state machine
// over a speech synthesizer with play, pause, replay, and stop transitions
// and an estimated 0-100 progress readout.
package narrator

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/manpreetkaur367/Elexico/speech"
)

// Config holds fixed delivery parameters for narration.
type Config struct {
	Rate        float64       // Speech rate multiplier
	Pitch       float64       // Pitch multiplier
	Lang        string        // Preferred voice language
	ReplayDelay time.Duration // Settle time between cancel and re-speak on replay
}

// DefaultConfig returns moderate delivery settings.
func DefaultConfig() Config {
	return Config{
		Rate:        0.95,
		Pitch:       1.0,
		Lang:        "en-US",
		ReplayDelay: 250 * time.Millisecond,
	}
}

// Snapshot is the externally visible state of the current narration session.
type Snapshot struct {
	State    StateType
	Progress int // 0-100
	Err      error
}

// Player narrates one text at a time through an injected synthesizer. The
// synthesizer is the process-wide narration channel: every transition that
// starts new speech cancels whatever is live first, so at most one utterance
// ever plays. Utterances are tagged with a generation counter and events
// from superseded generations are discarded.
type Player struct {
	mu    sync.Mutex
	synth speech.Synthesizer
	cfg   Config

	text     string // sanitized narration text
	total    int    // word count of text
	spoken   int    // word boundaries seen this session
	progress int    // 0-100
	state    StateType
	lastErr  error

	generation  uint64 // current utterance tag; bumped on every cancel
	replayTimer *time.Timer

	updates   chan Snapshot
	done      chan struct{}
	closeOnce sync.Once
	closed    bool
}

// NewPlayer creates a player speaking through synth and starts consuming
// its events. The player takes ownership of the synthesizer.
func NewPlayer(synth speech.Synthesizer, cfg Config) *Player {
	def := DefaultConfig()
	if cfg.Rate <= 0 {
		cfg.Rate = def.Rate
	}
	if cfg.Pitch <= 0 {
		cfg.Pitch = def.Pitch
	}
	if cfg.Lang == "" {
		cfg.Lang = def.Lang
	}
	if cfg.ReplayDelay <= 0 {
		cfg.ReplayDelay = def.ReplayDelay
	}

	p := &Player{
		synth:   synth,
		cfg:     cfg,
		state:   StateIdle,
		updates: make(chan Snapshot, 1),
		done:    make(chan struct{}),
	}
	go p.eventLoop()
	return p
}

// SetText replaces the narration text. Any in-flight narration is cancelled
// and the session resets before the new text becomes current.
func (p *Player) SetText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.text = SpokenText(text)
	p.total = CountWords(p.text)
	p.resetLocked()
	p.publishLocked()
}

// Play starts narration. From paused it resumes the existing utterance with
// progress untouched; from every other state it restarts from the top of
// the current text.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPlayerClosed
	}

	if p.state == StatePaused {
		if err := p.synth.Resume(); err != nil {
			p.failLocked(err)
			return err
		}
		p.state = StatePlaying
		p.publishLocked()
		return nil
	}

	return p.startLocked()
}

// Pause suspends narration. Calling it in any state other than playing is a
// tolerated no-op.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePlaying {
		return nil
	}
	if err := p.synth.Pause(); err != nil {
		p.failLocked(err)
		return err
	}
	p.state = StatePaused
	p.publishLocked()
	return nil
}

// Replay restarts narration of the current text from the beginning. The
// session resets immediately; speech starts again after a short delay so
// the platform fully releases the previous utterance.
func (p *Player) Replay() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.cancelLocked()
	p.resetLocked()
	p.publishLocked()

	gen := p.generation
	p.replayTimer = time.AfterFunc(p.cfg.ReplayDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		// A Stop, SetText, or Play that happened meanwhile wins.
		if p.closed || p.generation != gen || p.state != StateIdle {
			return
		}
		if err := p.startLocked(); err != nil {
			log.Debug("Replay failed", "error", err)
		}
	})
}

// Stop cancels narration and resets the session.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.resetLocked()
	p.publishLocked()
}

// Snapshot returns the current session state.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{State: p.state, Progress: p.progress, Err: p.lastErr}
}

// Updates delivers state snapshots as they change. Intermediate snapshots
// are coalesced; only the latest is retained for a slow consumer.
func (p *Player) Updates() <-chan Snapshot {
	return p.updates
}

// Close cancels narration unconditionally and shuts the player and its
// synthesizer down.
func (p *Player) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.cancelLocked()
		p.mu.Unlock()

		close(p.done)
		err = p.synth.Close()
	})
	return err
}

// startLocked begins a fresh narration of the current text. Callers hold
// p.mu.
func (p *Player) startLocked() error {
	if strings.TrimSpace(p.text) == "" {
		return ErrNoText
	}

	p.cancelLocked()
	p.spoken = 0
	p.progress = 0
	p.lastErr = nil

	u := speech.Utterance{
		ID:    p.generation,
		Text:  p.text,
		Rate:  p.cfg.Rate,
		Pitch: p.cfg.Pitch,
		Lang:  p.cfg.Lang,
	}
	if voice, ok := speech.PreferredVoice(p.synth.Voices(), p.cfg.Lang); ok {
		u.Voice = voice
	}

	if err := p.synth.Speak(u); err != nil {
		p.failLocked(err)
		return err
	}

	p.state = StatePlaying
	p.publishLocked()
	return nil
}

// cancelLocked discards the live utterance and invalidates its events.
func (p *Player) cancelLocked() {
	if p.replayTimer != nil {
		p.replayTimer.Stop()
		p.replayTimer = nil
	}
	if err := p.synth.Cancel(); err != nil {
		log.Debug("Cancel failed", "error", err)
	}
	p.generation++
}

// resetLocked returns the session to idle with zero progress.
func (p *Player) resetLocked() {
	p.state = StateIdle
	p.spoken = 0
	p.progress = 0
	p.lastErr = nil
}

func (p *Player) failLocked(err error) {
	p.state = StateError
	p.lastErr = err
	p.publishLocked()
}

// publishLocked pushes the current snapshot, keeping only the latest.
func (p *Player) publishLocked() {
	snap := Snapshot{State: p.state, Progress: p.progress, Err: p.lastErr}
	select {
	case <-p.updates:
	default:
	}
	select {
	case p.updates <- snap:
	default:
	}
}

// eventLoop consumes synthesizer events until the player closes.
func (p *Player) eventLoop() {
	for {
		select {
		case <-p.done:
			return
		case ev, ok := <-p.synth.Events():
			if !ok {
				return
			}
			p.handleEvent(ev)
		}
	}
}

// handleEvent applies one synthesizer event to the session. Events tagged
// with a superseded generation are dropped.
func (p *Player) handleEvent(ev speech.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ev.Utterance != p.generation {
		return
	}

	switch ev.Type {
	case speech.EventWord:
		if !p.state.Active() {
			return
		}
		p.spoken++
		if p.total > 0 {
			pct := int(math.Round(float64(p.spoken) / float64(p.total) * 100))
			// Clamped below 100 until the end signal: boundary granularity
			// is word-level, so completion timing is approximate.
			if pct > 99 {
				pct = 99
			}
			if pct > p.progress {
				p.progress = pct
			}
		}
		p.publishLocked()

	case speech.EventEnd:
		p.state = StateDone
		p.progress = 100
		p.publishLocked()

	case speech.EventError:
		p.failLocked(ev.Err)
	}
}

package espeak

import (
	"time"

	"github.com/manpreetkaur367/Elexico/speech"
)

// pacer emits estimated word-boundary events spread evenly across the
// playback duration of one utterance. espeak-ng gives no boundary callbacks
// over its CLI, so boundaries are approximated from audio length, the same
// way sentence positions are tracked by elapsed time elsewhere in the app.
type pacer struct {
	utterance uint64
	words     int
	interval  time.Duration
	events    chan<- speech.Event

	pauseCh  chan struct{}
	resumeCh chan struct{}
	stopCh   chan struct{}
	finished chan struct{} // closed when run returns; the pacer no longer touches events

	// onDone runs after the final word fires, before EventEnd.
	onDone func()
}

// wordInterval returns the estimated time between word boundaries.
func wordInterval(duration time.Duration, words int) time.Duration {
	if words <= 0 {
		return duration
	}
	return duration / time.Duration(words)
}

func newPacer(utterance uint64, words int, duration time.Duration, events chan<- speech.Event, onDone func()) *pacer {
	return &pacer{
		utterance: utterance,
		words:     words,
		interval:  wordInterval(duration, words),
		events:    events,
		pauseCh:   make(chan struct{}, 1),
		resumeCh:  make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		finished:  make(chan struct{}),
		onDone:    onDone,
	}
}

// run paces out word events, then emits the end event. It returns early
// and silently when stopped.
func (p *pacer) run() {
	defer close(p.finished)

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for spoken := 0; spoken < p.words; {
		select {
		case <-p.stopCh:
			return
		case <-p.pauseCh:
			select {
			case <-p.stopCh:
				return
			case <-p.resumeCh:
				timer.Reset(p.interval)
			}
		case <-timer.C:
			spoken++
			select {
			case p.events <- speech.Event{Type: speech.EventWord, Utterance: p.utterance}:
			case <-p.stopCh:
				return
			}
			timer.Reset(p.interval)
		}
	}

	// Let the tail of the audio drain before reporting completion.
	select {
	case <-p.stopCh:
		return
	case <-timer.C:
	}

	if p.onDone != nil {
		p.onDone()
	}
	select {
	case p.events <- speech.Event{Type: speech.EventEnd, Utterance: p.utterance}:
	case <-p.stopCh:
	}
}

// pause suspends word pacing until resume.
func (p *pacer) pause() {
	select {
	case p.pauseCh <- struct{}{}:
	default:
	}
}

// resume continues word pacing.
func (p *pacer) resume() {
	select {
	case p.resumeCh <- struct{}{}:
	default:
	}
}

// stop halts the pacer permanently.
func (p *pacer) stop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

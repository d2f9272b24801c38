// Package espeak provides a speech.Synthesizer backed by the espeak-ng
// command line synthesizer, with playback through oto.
package espeak

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"

	"github.com/manpreetkaur367/Elexico/speech"
)

// sampleRate is the PCM rate espeak-ng produces and the rate the audio
// context is opened with. A mismatch in the WAV header is rejected.
const sampleRate = 22050

// Config holds espeak engine settings.
type Config struct {
	Binary         string        // espeak-ng executable, found on PATH
	Voice          string        // default voice when the utterance has none
	WordsPerMinute int           // base speaking rate at utterance rate 1.0
	Timeout        time.Duration // subprocess timeout per utterance
}

// DefaultConfig returns sensible engine defaults.
func DefaultConfig() Config {
	return Config{
		Binary:         "espeak-ng",
		Voice:          "en-us",
		WordsPerMinute: 170,
		Timeout:        15 * time.Second,
	}
}

// Synthesizer speaks utterances by synthesizing them with espeak-ng and
// playing the PCM through a single oto context.
type Synthesizer struct {
	cfg    Config
	events chan speech.Event

	otoCtx   *oto.Context
	otoReady chan struct{}
	readyOne sync.Once

	mu     sync.Mutex
	player *oto.Player
	pacer  *pacer
	closed bool
}

// New creates the synthesizer. It fails if the espeak-ng binary cannot be
// found or the audio device cannot be opened.
func New(cfg Config) (*Synthesizer, error) {
	def := DefaultConfig()
	if cfg.Binary == "" {
		cfg.Binary = def.Binary
	}
	if cfg.Voice == "" {
		cfg.Voice = def.Voice
	}
	if cfg.WordsPerMinute <= 0 {
		cfg.WordsPerMinute = def.WordsPerMinute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	path, err := exec.LookPath(cfg.Binary)
	if err != nil {
		return nil, fmt.Errorf("espeak binary not found: %w", err)
	}
	cfg.Binary = path

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", speech.ErrNoAudioDevice, err)
	}

	return &Synthesizer{
		cfg:      cfg,
		events:   make(chan speech.Event, 64),
		otoCtx:   otoCtx,
		otoReady: ready,
	}, nil
}

// Speak synthesizes the utterance and starts playback, cancelling whatever
// was playing first.
func (s *Synthesizer) Speak(u speech.Utterance) error {
	pcm, duration, err := s.synthesize(u)
	if err != nil {
		return err
	}

	s.readyOne.Do(func() { <-s.otoReady })

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return speech.ErrSynthesizerClosed
	}
	s.cancelLocked()

	player := s.otoCtx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	s.player = player

	words := len(strings.Fields(u.Text))
	s.pacer = newPacer(u.ID, words, duration, s.events, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.player == player {
			player.Close() //nolint:errcheck
			s.player = nil
		}
	})
	go s.pacer.run()

	log.Debug("Speaking utterance", "id", u.ID, "words", words, "duration", duration)
	return nil
}

// Cancel discards the current utterance, if any.
func (s *Synthesizer) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	return nil
}

// Pause suspends playback. A no-op when nothing is playing.
func (s *Synthesizer) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		s.player.Pause()
	}
	if s.pacer != nil {
		s.pacer.pause()
	}
	return nil
}

// Resume continues a paused utterance. A no-op when nothing is paused.
func (s *Synthesizer) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		s.player.Play()
	}
	if s.pacer != nil {
		s.pacer.resume()
	}
	return nil
}

// Voices queries espeak-ng for its English voice inventory. On failure the
// configured default voice is advertised alone.
func (s *Synthesizer) Voices() []speech.Voice {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, s.cfg.Binary, "--voices=en").Output()
	if err != nil {
		log.Debug("Voice query failed, using default voice", "error", err)
		return []speech.Voice{{ID: s.cfg.Voice, Name: "eSpeak default", Lang: "en-US"}}
	}
	return parseVoices(string(out))
}

// Events returns the synthesizer event channel.
func (s *Synthesizer) Events() <-chan speech.Event {
	return s.events
}

// Close cancels playback and shuts the synthesizer down. The event channel
// is closed only after the pacer goroutine has exited; closing it while the
// pacer could still send would race. The wait happens outside the lock
// because the pacer's completion callback takes it.
func (s *Synthesizer) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	pacer := s.pacer
	s.cancelLocked()
	s.mu.Unlock()

	if pacer != nil {
		<-pacer.finished
	}
	close(s.events)
	return nil
}

// cancelLocked stops the pacer and releases the player. Callers hold s.mu.
func (s *Synthesizer) cancelLocked() {
	if s.pacer != nil {
		s.pacer.stop()
		s.pacer = nil
	}
	if s.player != nil {
		s.player.Close() //nolint:errcheck
		s.player = nil
	}
}

// synthesize runs espeak-ng and decodes its WAV output.
func (s *Synthesizer) synthesize(u speech.Utterance) ([]byte, time.Duration, error) {
	voice := s.cfg.Voice
	if u.Voice.ID != "" {
		voice = u.Voice.ID
	}

	wpm := int(float64(s.cfg.WordsPerMinute) * orOne(u.Rate))
	wpm = clampInt(wpm, 80, 450)
	pitch := clampInt(int(50*orOne(u.Pitch)), 0, 99)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.cfg.Binary,
		"--stdout",
		"-v", voice,
		"-s", strconv.Itoa(wpm),
		"-p", strconv.Itoa(pitch),
	)
	// Stdin is wired before the process starts so synthesis can't race a
	// late write.
	cmd.Stdin = strings.NewReader(u.Text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, 0, fmt.Errorf("%w: espeak timed out after %v", speech.ErrSynthesisFailed, s.cfg.Timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, 0, fmt.Errorf("%w: %v: %s", speech.ErrSynthesisFailed, err, msg)
		}
		return nil, 0, fmt.Errorf("%w: %v", speech.ErrSynthesisFailed, err)
	}

	wav, err := parseWAV(stdout.Bytes())
	if err != nil {
		return nil, 0, fmt.Errorf("%w: unable to decode espeak output: %v", speech.ErrSynthesisFailed, err)
	}
	if wav.sampleRate != sampleRate || wav.channels != 1 {
		return nil, 0, fmt.Errorf("%w: unexpected audio format: %d Hz, %d channels", speech.ErrSynthesisFailed, wav.sampleRate, wav.channels)
	}

	samples := len(wav.pcm) / 2
	duration := time.Duration(samples) * time.Second / time.Duration(wav.sampleRate)
	return wav.pcm, duration, nil
}

// parseVoices reads the tabular output of `espeak-ng --voices`.
func parseVoices(out string) []speech.Voice {
	var voices []speech.Voice
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i == 0 { // header row
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, speech.Voice{
			ID:   fields[1],
			Name: fields[3],
			Lang: fields[1],
		})
	}
	return voices
}

func orOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

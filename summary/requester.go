// Package summary produces narration text for a slide: an N-sentence
// spoken-style summary from the generative-language API, tried across an
// ordered list of model candidates, with a deterministic local fallback.
package summary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/manpreetkaur367/Elexico/slides"
)

const (
	// tokensPerSentence sizes the generation budget: enough for long
	// sentences without paying for an unbounded response.
	tokensPerSentence = 60

	// MinSentences and MaxSentences bound the length exposed in the UI.
	// The requester itself accepts any positive count.
	MinSentences = 2
	MaxSentences = 20

	// fallbackKeyPoints caps how many key points the local fallback uses.
	fallbackKeyPoints = 4
)

// ErrInvalidSentenceCount is returned for a non-positive sentence count.
var ErrInvalidSentenceCount = errors.New("sentence count must be positive")

// Requester generates slide summaries. It keeps no state between calls:
// every invocation is a fresh pass over the candidate models.
type Requester struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a requester. A nil-safe default HTTP client is built from the
// configured timeout.
func New(cfg Config) *Requester {
	if len(cfg.Models) == 0 {
		cfg.Models = DefaultModels()
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Requester{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Summarize returns text meant to read aloud as exactly the requested
// number of sentences. Candidates are tried in order and the first
// non-empty response wins; when all fail the deterministic fallback is
// returned. The only error paths are an invalid count and context
// cancellation — endpoint failure is never surfaced.
func (r *Requester) Summarize(ctx context.Context, slide slides.Slide, sentences int) (string, error) {
	if sentences < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSentenceCount, sentences)
	}

	prompt := BuildPrompt(slide, sentences)

	for _, model := range r.cfg.Models {
		if err := r.limiter.Wait(ctx); err != nil {
			return "", err
		}

		text, err := r.generate(ctx, model, prompt, sentences*tokensPerSentence)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			log.Debug("Model candidate failed", "model", model, "slide", slide.ID, "error", err)
			continue
		}
		if text != "" {
			log.Debug("Summary generated", "model", model, "slide", slide.ID, "sentences", sentences)
			return text, nil
		}
	}

	log.Warn("All model candidates failed, using local fallback", "slide", slide.ID)
	return Fallback(slide, sentences), nil
}

// BuildPrompt assembles the generation prompt from the slide fields and the
// requested sentence count.
func BuildPrompt(slide slides.Slide, sentences int) string {
	return fmt.Sprintf(`You are narrating a lesson slide titled %q.

Write a summary that reads aloud as exactly %d complete sentences.
Rules:
- Plain prose only: no markdown, no bullet points, no code.
- No greeting or preamble; start with the substance.
- Cover what the concept is, why it matters, and one real-world use.

SLIDE DESCRIPTION:
%s

KEY POINTS:
%s

REAL-WORLD EXAMPLE:
%s`,
		slide.Title,
		sentences,
		slide.Description,
		strings.Join(slide.KeyPoints, "; "),
		slide.Example,
	)
}

// Fallback builds the deterministic local summary: the slide description
// followed by up to min(sentences-1, 4) key points, space-joined. It is
// never empty for a slide with a non-empty description.
func Fallback(slide slides.Slide, sentences int) string {
	parts := []string{slide.Description}

	points := sentences - 1
	if points > fallbackKeyPoints {
		points = fallbackKeyPoints
	}
	for i := 0; i < points && i < len(slide.KeyPoints); i++ {
		parts = append(parts, slide.KeyPoints[i])
	}

	return strings.Join(parts, " ")
}

// ClampSentences forces a requested count into the UI range.
func ClampSentences(n int) int {
	if n < MinSentences {
		return MinSentences
	}
	if n > MaxSentences {
		return MaxSentences
	}
	return n
}

// Package slides holds the lesson deck rendered by the slideshow.
package slides

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Slide is one static lesson unit. Slides are read-only configuration:
// they are created once at startup and never mutated.
type Slide struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	KeyPoints   []string `yaml:"key_points"`
	Example     string   `yaml:"example"`

	// Presentation-only fields.
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
	Code  string `yaml:"code"`
}

// Deck is an ordered collection of slides.
type Deck []Slide

// ByID returns the slide with the given identifier.
func (d Deck) ByID(id string) (Slide, bool) {
	for _, s := range d {
		if s.ID == id {
			return s, true
		}
	}
	return Slide{}, false
}

// Titles returns the slide titles in deck order.
func (d Deck) Titles() []string {
	titles := make([]string, len(d))
	for i, s := range d {
		titles[i] = s.Title
	}
	return titles
}

// Filter returns the indexes of slides whose titles fuzzy-match term,
// best matches first. An empty term matches every slide in order.
func (d Deck) Filter(term string) []int {
	if strings.TrimSpace(term) == "" {
		indexes := make([]int, len(d))
		for i := range d {
			indexes[i] = i
		}
		return indexes
	}

	matches := fuzzy.Find(term, d.Titles())
	indexes := make([]int, len(matches))
	for i, m := range matches {
		indexes[i] = m.Index
	}
	return indexes
}

// Validate checks that the deck is usable: at least one slide, unique
// non-empty IDs, and a description on every slide (the narration fallback
// depends on it).
func (d Deck) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDeck
	}

	seen := make(map[string]bool, len(d))
	for i, s := range d {
		if s.ID == "" {
			return fmt.Errorf("slide %d: %w", i, ErrMissingID)
		}
		if seen[s.ID] {
			return fmt.Errorf("slide %q: %w", s.ID, ErrDuplicateID)
		}
		seen[s.ID] = true

		if s.Title == "" {
			return fmt.Errorf("slide %q: %w", s.ID, ErrMissingTitle)
		}
		if s.Description == "" {
			return fmt.Errorf("slide %q: %w", s.ID, ErrMissingDescription)
		}
	}
	return nil
}

// Markdown renders the slide as a markdown document for display.
func (s Slide) Markdown() string {
	var b strings.Builder

	if s.Icon != "" {
		fmt.Fprintf(&b, "# %s %s\n\n", s.Icon, s.Title)
	} else {
		fmt.Fprintf(&b, "# %s\n\n", s.Title)
	}

	b.WriteString(s.Description)
	b.WriteString("\n")

	if len(s.KeyPoints) > 0 {
		b.WriteString("\n## Key points\n\n")
		for _, p := range s.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	if s.Example != "" {
		fmt.Fprintf(&b, "\n## Real-world example\n\n%s\n", s.Example)
	}

	if s.Code != "" {
		fmt.Fprintf(&b, "\n```\n%s\n```\n", strings.TrimRight(s.Code, "\n"))
	}

	return b.String()
}

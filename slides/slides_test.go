package slides

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestBuiltinDeckIsValid ensures the compiled-in deck always validates.
func TestBuiltinDeckIsValid(t *testing.T) {
	deck := Builtin()
	if err := deck.Validate(); err != nil {
		t.Fatalf("Builtin().Validate() = %v, want nil", err)
	}
	if len(deck) == 0 {
		t.Fatal("builtin deck is empty")
	}
}

// TestDeckValidate tests deck validation rules.
func TestDeckValidate(t *testing.T) {
	valid := Slide{ID: "a", Title: "A", Description: "About A."}

	tests := []struct {
		name    string
		deck    Deck
		wantErr error
	}{
		{
			name:    "empty deck",
			deck:    Deck{},
			wantErr: ErrEmptyDeck,
		},
		{
			name:    "valid single slide",
			deck:    Deck{valid},
			wantErr: nil,
		},
		{
			name:    "missing id",
			deck:    Deck{{Title: "A", Description: "d"}},
			wantErr: ErrMissingID,
		},
		{
			name:    "duplicate id",
			deck:    Deck{valid, {ID: "a", Title: "B", Description: "d"}},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "missing title",
			deck:    Deck{{ID: "x", Description: "d"}},
			wantErr: ErrMissingTitle,
		},
		{
			name:    "missing description",
			deck:    Deck{{ID: "x", Title: "X"}},
			wantErr: ErrMissingDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deck.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestDeckByID tests slide lookup.
func TestDeckByID(t *testing.T) {
	deck := Builtin()

	s, ok := deck.ByID("caching")
	if !ok {
		t.Fatal("ByID(caching) not found")
	}
	if s.Title != "Caching" {
		t.Errorf("ByID(caching).Title = %q, want %q", s.Title, "Caching")
	}

	if _, ok := deck.ByID("no-such-slide"); ok {
		t.Error("ByID(no-such-slide) found, want not found")
	}
}

// TestDeckFilter tests fuzzy title filtering.
func TestDeckFilter(t *testing.T) {
	deck := Deck{
		{ID: "a", Title: "Caching", Description: "d"},
		{ID: "b", Title: "Load balancing", Description: "d"},
		{ID: "c", Title: "Message queues", Description: "d"},
	}

	t.Run("empty term matches all in order", func(t *testing.T) {
		got := deck.Filter("")
		if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
			t.Errorf("Filter(\"\") = %v, want [0 1 2]", got)
		}
	})

	t.Run("term narrows matches", func(t *testing.T) {
		got := deck.Filter("cach")
		if len(got) != 1 || got[0] != 0 {
			t.Errorf("Filter(cach) = %v, want [0]", got)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if got := deck.Filter("zzzz"); len(got) != 0 {
			t.Errorf("Filter(zzzz) = %v, want empty", got)
		}
	})
}

// TestSlideMarkdown tests markdown rendering of a slide.
func TestSlideMarkdown(t *testing.T) {
	s := Slide{
		ID:          "x",
		Title:       "Topic",
		Description: "A description.",
		KeyPoints:   []string{"first", "second"},
		Example:     "An example.",
		Code:        "GET /",
	}

	md := s.Markdown()

	for _, want := range []string{
		"# Topic",
		"A description.",
		"- first",
		"- second",
		"## Real-world example",
		"An example.",
		"```\nGET /\n```",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q\ngot:\n%s", want, md)
		}
	}
}

// TestLoad tests reading a deck from YAML.
func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deck.yml")
		content := `slides:
  - id: one
    title: First
    description: The first slide.
    key_points:
      - alpha
      - beta
    example: An example.
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		deck, err := Load(path)
		if err != nil {
			t.Fatalf("Load() = %v, want nil", err)
		}
		if len(deck) != 1 {
			t.Fatalf("Load() returned %d slides, want 1", len(deck))
		}
		if deck[0].ID != "one" || len(deck[0].KeyPoints) != 2 {
			t.Errorf("Load() = %+v, want id=one with 2 key points", deck[0])
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
			t.Error("Load() = nil error, want error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deck.yml")
		if err := os.WriteFile(path, []byte("slides: [\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() = nil error, want parse error")
		}
	})

	t.Run("invalid deck", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deck.yml")
		if err := os.WriteFile(path, []byte("slides:\n  - title: no id\n    description: d\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, ErrMissingID) {
			t.Errorf("Load() = %v, want ErrMissingID", err)
		}
	})
}

package slides

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// deckFile is the on-disk shape of a custom deck.
type deckFile struct {
	Slides []Slide `yaml:"slides"`
}

// Load reads a custom deck from a YAML file and validates it.
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read deck file: %w", err)
	}

	var f deckFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unable to parse deck file: %w", err)
	}

	deck := Deck(f.Slides)
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck %s: %w", path, err)
	}
	return deck, nil
}

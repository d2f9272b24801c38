package ui

// Config contains TUI-specific configuration.
type Config struct {
	GlamourMaxWidth  uint
	GlamourStyle     string `env:"GLAMOUR_STYLE"`
	EnableMouse      bool
	PreserveNewLines bool

	// Path to a deck file; empty means the built-in deck.
	DeckPath string

	// Requested summary length in sentences.
	Sentences int

	// For debugging the UI
	GlamourEnabled bool `env:"ELEXICO_ENABLE_GLAMOUR" envDefault:"true"`
}

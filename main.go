// Package main provides the entry point for the Elexico CLI application.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/manpreetkaur367/Elexico/narrator"
	"github.com/manpreetkaur367/Elexico/slides"
	"github.com/manpreetkaur367/Elexico/speech"
	"github.com/manpreetkaur367/Elexico/speech/espeak"
	"github.com/manpreetkaur367/Elexico/speech/noop"
	"github.com/manpreetkaur367/Elexico/summary"
	"github.com/manpreetkaur367/Elexico/ui"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile       string
	deckPath         string
	style            string
	width            uint
	sentences        int
	engine           string
	mouse            bool
	preserveNewLines bool

	rootCmd = &cobra.Command{
		Use:   "elexico [SLIDE-ID]",
		Short: "System-design lessons on the CLI, narrated out loud",
		Long: paragraph(
			fmt.Sprintf("\nBrowse system-design slides in the terminal, and let %s read them to you.", keyword("a narrator")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			deck, err := loadDeck()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			ids := make([]string, len(deck))
			for i, s := range deck {
				ids[i] = s.ID
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

func loadDeck() (slides.Deck, error) {
	if deckPath == "" {
		return slides.Builtin(), nil
	}
	deck, err := slides.Load(deckPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load deck: %w", err)
	}
	return deck, nil
}

// validateStyle checks if the style is a default style, if not, checks that
// the custom style exists.
func validateStyle(style string) error {
	if style != "auto" && styles.DefaultStyles[style] == nil {
		if _, err := os.Stat(style); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("specified style does not exist: %s", style)
		} else if err != nil {
			return fmt.Errorf("unable to stat file: %w", err)
		}
	}
	return nil
}

func validateOptions(cmd *cobra.Command) error {
	// grab config values from Viper
	width = viper.GetUint("width")
	mouse = viper.GetBool("mouse")
	preserveNewLines = viper.GetBool("preserveNewLines")
	sentences = viper.GetInt("sentences")
	engine = viper.GetString("engine")
	if deckPath == "" {
		deckPath = viper.GetString("deck")
	}

	switch engine {
	case "espeak", "off":
	default:
		return fmt.Errorf("unknown narration engine %q (use espeak or off)", engine)
	}

	// validate the glamour style
	style = viper.GetString("style")
	if err := validateStyle(style); err != nil {
		return err
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	// We want to use a special no-TTY style, when stdout is not a terminal
	// and there was no specific style passed by arg
	if !isTerminal && !cmd.Flags().Changed("style") {
		style = "notty"
	}

	// Detect terminal width
	if !cmd.Flags().Changed("width") {
		if isTerminal && width == 0 {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				width = uint(w) //nolint:gosec
			}
			if width > 120 {
				width = 120
			}
		}
		if width == 0 {
			width = 80
		}
	}
	return nil
}

func execute(_ *cobra.Command, args []string) error {
	// With a slide id argument, render that one slide and exit.
	if len(args) == 1 {
		return executeCLI(args[0], os.Stdout)
	}
	return runTUI()
}

// executeCLI renders a single slide to the writer, outside the TUI.
func executeCLI(slideID string, w io.Writer) error {
	deck, err := loadDeck()
	if err != nil {
		return err
	}
	slide, ok := deck.ByID(slideID)
	if !ok {
		return fmt.Errorf("no slide with id %q (try one of: %v)", slideID, deckIDs(deck))
	}

	out, err := ui.RenderMarkdown(slide.Markdown(), style, width)
	if err != nil {
		return fmt.Errorf("unable to render slide: %w", err)
	}
	if _, err := fmt.Fprint(w, out); err != nil {
		return fmt.Errorf("unable to write to writer: %w", err)
	}
	return nil
}

func runTUI() error {
	deck, err := loadDeck()
	if err != nil {
		return err
	}

	var watcher *slides.Watcher
	if deckPath != "" {
		watcher, err = slides.Watch(deckPath)
		if err != nil {
			log.Warn("Deck file watching unavailable", "error", err)
		}
	}

	genCfg, err := summary.LoadConfig()
	if err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}
	requester := summary.New(genCfg)

	player := narrator.NewPlayer(newSynthesizer(), narrator.DefaultConfig())

	cfg := ui.Config{
		GlamourStyle:     style,
		GlamourMaxWidth:  width,
		EnableMouse:      mouse,
		PreserveNewLines: preserveNewLines,
		DeckPath:         deckPath,
		Sentences:        sentences,
		GlamourEnabled:   true,
	}

	// Run Bubble Tea program
	if _, err := ui.NewProgram(cfg, deck, requester, player, watcher).Run(); err != nil {
		return fmt.Errorf("unable to run tui program: %w", err)
	}
	return nil
}

// newSynthesizer picks the narration backend. When espeak-ng or an audio
// device is missing the app still runs, just without sound: the silent
// backend finishes utterances immediately so playback never hangs.
func newSynthesizer() speech.Synthesizer {
	if engine == "off" {
		return noop.New()
	}
	synth, err := espeak.New(espeak.DefaultConfig())
	if err != nil {
		log.Warn("Narration engine unavailable, sound disabled", "error", err)
		return noop.New()
	}
	return synth
}

func deckIDs(deck slides.Deck) []string {
	ids := make([]string, len(deck))
	for i, s := range deck {
		ids[i] = s.ID
	}
	return ids
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.PersistentFlags().StringVarP(&deckPath, "deck", "d", "", "path to a YAML slide deck (default: built-in deck)")
	rootCmd.Flags().StringVarP(&style, "style", "s", styles.AutoStyle, "style name or JSON path")
	rootCmd.Flags().UintVarP(&width, "width", "w", 0, "word-wrap at width (set to 0 to disable)")
	rootCmd.Flags().IntVarP(&sentences, "sentences", "n", 3, "summary length in sentences (2-20)")
	rootCmd.Flags().StringVarP(&engine, "engine", "e", "espeak", "narration engine (espeak/off)")
	rootCmd.Flags().BoolVarP(&preserveNewLines, "preserve-new-lines", "p", false, "preserve newlines in the output")
	rootCmd.Flags().BoolVarP(&mouse, "mouse", "m", false, "enable mouse wheel (TUI-mode only)")
	_ = rootCmd.Flags().MarkHidden("mouse")

	// Config bindings
	_ = viper.BindPFlag("style", rootCmd.Flags().Lookup("style"))
	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("sentences", rootCmd.Flags().Lookup("sentences"))
	_ = viper.BindPFlag("engine", rootCmd.Flags().Lookup("engine"))
	_ = viper.BindPFlag("mouse", rootCmd.Flags().Lookup("mouse"))
	_ = viper.BindPFlag("preserveNewLines", rootCmd.Flags().Lookup("preserve-new-lines"))
	_ = viper.BindPFlag("deck", rootCmd.PersistentFlags().Lookup("deck"))

	viper.SetDefault("style", styles.AutoStyle)
	viper.SetDefault("width", 0)
	viper.SetDefault("sentences", 3)
	viper.SetDefault("engine", "espeak")

	rootCmd.AddCommand(configCmd, summarizeCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "elexico")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "elexico")}, dirs...)
	}

	if c := os.Getenv("ELEXICO_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("elexico")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("elexico")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "elexico.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}

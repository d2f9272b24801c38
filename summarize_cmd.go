package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manpreetkaur367/Elexico/summary"
)

var summarizeCmd = &cobra.Command{
	Use:     "summarize SLIDE-ID",
	Short:   "Print a spoken-style summary of a slide",
	Long:    paragraph(fmt.Sprintf("\n%s a slide without opening the TUI: the same narration text the assistant panel would speak, printed to stdout.", keyword("Summarize"))),
	Example: paragraph("elexico summarize caching\nelexico -n 5 summarize caching"),
	Args:    cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return rootCmd.ValidArgsFunction(cmd, args, toComplete)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := loadDeck()
		if err != nil {
			return err
		}
		slide, ok := deck.ByID(args[0])
		if !ok {
			return fmt.Errorf("no slide with id %q (try one of: %v)", args[0], deckIDs(deck))
		}

		cfg, err := summary.LoadConfig()
		if err != nil {
			return fmt.Errorf("error parsing config: %w", err)
		}

		text, err := summary.New(cfg).Summarize(cmd.Context(), slide, summary.ClampSentences(sentences))
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

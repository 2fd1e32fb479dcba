package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kamik423/quadrant/internal/classify"
)

// lexiconCmd prints the active classification tables so the scoring can
// be audited without running a survey.
var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Print the classification lexicon",
	Long: `Print the token lexicon and flair anchors the classifier uses.

Each token contributes its (x, y) deltas to an item's raw score; the
sums are squashed into [-1, 1]. Items with a recognized flair are
placed at the flair's anchor point instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lexicon %s (%d tokens)\n\n", classify.LexiconVersion, len(classify.Lexicon))

		tokens := make([]string, 0, len(classify.Lexicon))
		for token := range classify.Lexicon {
			tokens = append(tokens, token)
		}
		sort.Strings(tokens)

		fmt.Printf("%-16s %8s %8s\n", "token", "x", "y")
		for _, token := range tokens {
			contrib := classify.Lexicon[token]
			fmt.Printf("%-16s %+8.2f %+8.2f\n", token, contrib.X, contrib.Y)
		}
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}

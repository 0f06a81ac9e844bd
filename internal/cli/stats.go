package cli

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <deck-id>",
	Short: "Show review statistics for a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid deck id: %s", args[0])
		}
		ctx := cmd.Context()

		deck, err := a.decks.GetDeck(ctx, deckID)
		if err != nil {
			return err
		}
		stats, err := a.stats.DeckStats(ctx, deckID, time.Now().UTC())
		if err != nil {
			return err
		}
		lifetime, err := a.stats.LifetimeStats(ctx, deckID)
		if err != nil {
			return err
		}

		fmt.Printf("Deck %q\n", deck.Name)
		fmt.Printf("  Cards:      %d total, %d reviewed at least once\n", stats.TotalCards, stats.ReviewedCards)
		fmt.Printf("  Due today:  %d\n", stats.DueCards)
		fmt.Printf("  Difficult:  %d\n", stats.DifficultCards)
		fmt.Printf("  Reviews:    %d total, %d correct (%.0f%% accuracy)\n",
			stats.TotalReviews, stats.CorrectReviews, stats.Accuracy*100)
		fmt.Printf("  Sessions:   %d cards across recorded sessions, %.0f%% success\n",
			lifetime.ReviewedCount, lifetime.SuccessRate*100)

		if len(stats.TagCounts) > 0 {
			tags := make([]string, 0, len(stats.TagCounts))
			for tag := range stats.TagCounts {
				tags = append(tags, tag)
			}
			sort.Strings(tags)
			fmt.Println("  Tags:")
			for _, tag := range tags {
				fmt.Printf("    %-20s %d\n", tag, stats.TagCounts[tag])
			}
		}

		sessions, err := a.stats.RecentSessions(ctx, deckID, 5)
		if err != nil {
			return err
		}
		if len(sessions) > 0 {
			fmt.Println("  Recent sessions:")
			for _, s := range sessions {
				fmt.Printf("    %s  %-10s %d reviewed, %d correct\n",
					s.StartedAt.Format("2006-01-02 15:04"), s.Mode, s.Reviewed, s.Correct)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

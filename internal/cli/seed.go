package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfreitas/flashdeck/internal/errors"
)

var sampleCards = []struct {
	front string
	back  string
	tags  []string
}{
	{"abandon", "to give up or leave behind", []string{"verb", "high-frequency"}},
	{"ability", "skill or talent", []string{"noun", "basic"}},
	{"absence", "the state of being away", []string{"noun", "basic"}},
	{"absolute", "complete or total", []string{"adjective", "intermediate"}},
	{"academic", "relating to education or scholarship", []string{"adjective", "academic"}},
	{"accelerate", "to speed up or increase", []string{"verb", "intermediate"}},
	{"acceptable", "satisfactory or adequate", []string{"adjective", "intermediate"}},
	{"access", "the ability to enter or approach", []string{"noun", "verb", "basic"}},
	{"accident", "an unexpected event", []string{"noun", "basic"}},
	{"accompany", "to go with someone", []string{"verb", "intermediate"}},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a sample English vocabulary deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		now := time.Now().UTC()

		deck, err := a.decks.CreateDeck(ctx, "English Vocabulary")
		if err != nil {
			if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrCodeConflict {
				fmt.Println("Sample deck already exists.")
				return nil
			}
			return err
		}

		for _, c := range sampleCards {
			if _, err := a.cards.AddCard(ctx, deck.ID, c.front, c.back, c.tags, now); err != nil {
				return err
			}
		}
		fmt.Printf("Created deck %q with %d cards. Start with: flashdeck study %d\n",
			deck.Name, len(sampleCards), deck.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

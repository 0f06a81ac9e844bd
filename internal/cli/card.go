package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/services"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage flashcards",
}

var (
	addTags   []string
	editTags  []string
	cardFront string
	cardBack  string
)

var cardAddCmd = &cobra.Command{
	Use:   "add <deck-id> <front> <back>",
	Short: "Add a card to a deck",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid deck id: %s", args[0])
		}
		card, err := a.cards.AddCard(cmd.Context(), deckID, args[1], args[2], addTags, time.Now().UTC())
		if err != nil {
			return err
		}
		fmt.Printf("Added card %d to deck %d\n", card.ID, deckID)
		return nil
	},
}

var cardListCmd = &cobra.Command{
	Use:   "list <deck-id>",
	Short: "List cards in a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid deck id: %s", args[0])
		}
		tag, _ := cmd.Flags().GetString("tag")

		cards, err := a.cards.ListCards(cmd.Context(), models.CardFilter{DeckID: deckID, Tag: tag})
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			fmt.Println("No cards found.")
			return nil
		}
		fmt.Printf("%-5s %-30s %-10s %5s %6s %7s %-10s\n", "ID", "FRONT", "STATUS", "EASE", "IVL", "LAPSES", "DUE")
		for _, c := range cards {
			fmt.Printf("%-5d %-30s %-10s %5.2f %6d %7d %-10s\n",
				c.ID, truncate(c.Front, 30), c.Status(), c.EaseFactor, c.IntervalDays, c.Lapses, c.DueAt.Format("2006-01-02"))
		}
		return nil
	},
}

var cardEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a card's front, back, or tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid card id: %s", args[0])
		}

		var edit services.CardEdit
		if cmd.Flags().Changed("front") {
			edit.Front = &cardFront
		}
		if cmd.Flags().Changed("back") {
			edit.Back = &cardBack
		}
		if cmd.Flags().Changed("tag") {
			edit.Tags = editTags
		}
		if edit.Front == nil && edit.Back == nil && edit.Tags == nil {
			return fmt.Errorf("nothing to edit, pass --front, --back, or --tag")
		}

		card, err := a.cards.EditCard(cmd.Context(), id, edit)
		if err != nil {
			return err
		}
		fmt.Printf("Updated card %d: %s / %s", card.ID, card.Front, card.Back)
		if len(card.Tags) > 0 {
			fmt.Printf(" [%s]", strings.Join(card.Tags, ", "))
		}
		fmt.Println()
		return nil
	},
}

var cardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid card id: %s", args[0])
		}
		if err := a.cards.DeleteCard(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted card %d\n", id)
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	cardAddCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag for the card (repeatable)")
	cardListCmd.Flags().String("tag", "", "only cards carrying this tag")
	cardEditCmd.Flags().StringVar(&cardFront, "front", "", "new front text")
	cardEditCmd.Flags().StringVar(&cardBack, "back", "", "new back text")
	cardEditCmd.Flags().StringSliceVar(&editTags, "tag", nil, "replacement tag set (repeatable)")

	cardCmd.AddCommand(cardAddCmd, cardListCmd, cardEditCmd, cardDeleteCmd)
	rootCmd.AddCommand(cardCmd)
}

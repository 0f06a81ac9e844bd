package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage flashcard decks",
}

var deckCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := a.decks.CreateDeck(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created deck %q (id %d)\n", deck.Name, deck.ID)
		return nil
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List decks with due and difficult counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := a.decks.ListDecks(cmd.Context(), time.Now().UTC())
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No decks yet. Create one with: flashdeck deck create <name>")
			return nil
		}
		fmt.Printf("%-5s %-25s %8s %6s %10s\n", "ID", "NAME", "CARDS", "DUE", "DIFFICULT")
		for _, s := range summaries {
			fmt.Printf("%-5d %-25s %8d %6d %10d\n", s.ID, s.Name, s.CardCount, s.DueCount, s.DifficultCount)
		}
		return nil
	},
}

var deckRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a deck",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid deck id: %s", args[0])
		}
		if err := a.decks.RenameDeck(cmd.Context(), id, args[1]); err != nil {
			return err
		}
		fmt.Printf("Renamed deck %d to %q\n", id, args[1])
		return nil
	},
}

var deckDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a deck and all its cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid deck id: %s", args[0])
		}
		if err := a.decks.DeleteDeck(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted deck %d\n", id)
		return nil
	},
}

func init() {
	deckCmd.AddCommand(deckCreateCmd, deckListCmd, deckRenameCmd, deckDeleteCmd)
	rootCmd.AddCommand(deckCmd)
}

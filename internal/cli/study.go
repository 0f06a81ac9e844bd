package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfreitas/flashdeck/internal/errors"
	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/study"
)

var (
	studyMode string
	studyTags []string
)

var studyCmd = &cobra.Command{
	Use:   "study <deck-id>",
	Short: "Start an interactive review session",
	Long: `Study runs through the selected cards one at a time. For each card the
front is shown first; press enter to reveal the back, then grade your
recall from 0 (blackout) to 4 (easy). Enter q at any prompt to stop.

Modes:
  due        cards whose review date has arrived (default)
  difficult  cards with many lapses or a low ease factor
  tags       cards carrying any of the tags passed with --tag
  all        every card in the deck, shuffled`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid deck id: %s", args[0])
		}
		return runStudySession(cmd, deckID)
	},
}

func runStudySession(cmd *cobra.Command, deckID int64) error {
	ctx := cmd.Context()
	now := time.Now().UTC()
	mode := study.Mode(studyMode)

	queue, err := a.study.BuildQueue(ctx, deckID, mode, studyTags, now)
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		fmt.Println("Nothing to study. Try another mode or come back tomorrow.")
		return nil
	}

	tracker := a.study.NewTracker(now)
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Studying %d card(s) in %s mode. Enter q to quit.\n\n", len(queue), mode)

	for i, card := range queue {
		fmt.Printf("[%d/%d] %s\n", i+1, len(queue), card.Front)
		fmt.Print("Press enter to reveal... ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		if isQuit(line) {
			break
		}
		fmt.Printf("-> %s\n", card.Back)

		quality, quit := promptGrade(reader)
		if quit {
			break
		}

		updated, err := a.study.SubmitReview(ctx, card.ID, quality, time.Now().UTC())
		if err != nil {
			return err
		}
		tracker.Record(models.ReviewOutcome{CardID: card.ID, Quality: quality, ReviewedAt: time.Now().UTC()})
		fmt.Printf("Next review in %d day(s) (%s)\n\n", updated.IntervalDays, updated.DueAt.Format("2006-01-02"))
	}

	summary := tracker.Summary()
	fmt.Printf("Session complete: %d reviewed, %d correct (%.0f%%)\n",
		summary.ReviewedCount, summary.CorrectCount, summary.SuccessRate*100)

	return a.study.FinishSession(ctx, models.SessionRecord{
		DeckID:    deckID,
		Mode:      string(mode),
		Reviewed:  summary.ReviewedCount,
		Correct:   summary.CorrectCount,
		StartedAt: tracker.StartedAt(),
		EndedAt:   time.Now().UTC(),
	})
}

// promptGrade reads a quality grade, re-prompting until the answer is a
// defined grade or the learner quits.
func promptGrade(reader *bufio.Reader) (models.Quality, bool) {
	for {
		fmt.Print("Grade [0=blackout 1=incorrect 2=hard 3=good 4=easy, q=quit]: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, true
		}
		if isQuit(line) {
			return 0, true
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("Please enter a number between 0 and 4.")
			continue
		}
		q := models.Quality(n)
		if !q.IsValid() {
			appErr := errors.NewInvalidGradeError(n)
			fmt.Println(appErr.Message)
			continue
		}
		return q, false
	}
}

func isQuit(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	return s == "q" || s == "quit"
}

func init() {
	studyCmd.Flags().StringVar(&studyMode, "mode", string(study.ModeDue), "selection mode: due, difficult, tags, or all")
	studyCmd.Flags().StringSliceVar(&studyTags, "tag", nil, "tags for tags mode (repeatable)")
	rootCmd.AddCommand(studyCmd)
}

package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/repository"
	"github.com/mfreitas/flashdeck/internal/repository/sqlite"
	"github.com/mfreitas/flashdeck/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ReviewRepositorySuite struct {
	suite.Suite
	db      *sql.DB
	decks   repository.DeckRepository
	cards   repository.CardRepository
	reviews repository.ReviewRepository
}

func (s *ReviewRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.decks = sqlite.NewDeckRepository(s.db)
	s.cards = sqlite.NewCardRepository(s.db)
	s.reviews = sqlite.NewReviewRepository(s.db)
}

func (s *ReviewRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ReviewRepositorySuite) seedCard(deckID int64) int64 {
	id, err := s.cards.Insert(context.Background(), models.Card{
		DeckID:     deckID,
		Front:      "front",
		Back:       "back",
		EaseFactor: 2.5,
		DueAt:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	return id
}

func (s *ReviewRepositorySuite) TestReviewTotals() {
	ctx := context.Background()

	deckID, err := s.decks.Insert(ctx, "vocab")
	s.Require().NoError(err)
	cardID := s.seedCard(deckID)

	when := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, q := range []models.Quality{
		models.QualityEasy,
		models.QualityIncorrect,
		models.QualityGood,
		models.QualityBlackout,
	} {
		s.Require().NoError(s.reviews.InsertReview(ctx, cardID, q, when.Add(time.Duration(i)*time.Minute)))
	}

	stats, err := s.reviews.ReviewTotals(ctx, deckID, models.QualityGood)
	s.Require().NoError(err)
	s.Equal(4, stats.ReviewedCount)
	s.Equal(2, stats.CorrectCount)
	s.InDelta(0.5, stats.SuccessRate, 1e-9)
}

func (s *ReviewRepositorySuite) TestReviewTotalsScopedToDeck() {
	ctx := context.Background()

	deckA, err := s.decks.Insert(ctx, "a")
	s.Require().NoError(err)
	deckB, err := s.decks.Insert(ctx, "b")
	s.Require().NoError(err)

	cardA := s.seedCard(deckA)
	cardB := s.seedCard(deckB)
	when := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	s.Require().NoError(s.reviews.InsertReview(ctx, cardA, models.QualityEasy, when))
	s.Require().NoError(s.reviews.InsertReview(ctx, cardB, models.QualityBlackout, when))

	stats, err := s.reviews.ReviewTotals(ctx, deckA, models.QualityGood)
	s.Require().NoError(err)
	s.Equal(1, stats.ReviewedCount)
	s.Equal(1, stats.CorrectCount)
}

func (s *ReviewRepositorySuite) TestReviewTotalsEmpty() {
	stats, err := s.reviews.ReviewTotals(context.Background(), 1, models.QualityGood)
	s.Require().NoError(err)
	s.Zero(stats.ReviewedCount)
	s.Zero(stats.SuccessRate)
}

func (s *ReviewRepositorySuite) TestDeletingCardCascadesHistory() {
	ctx := context.Background()

	deckID, err := s.decks.Insert(ctx, "vocab")
	s.Require().NoError(err)
	cardID := s.seedCard(deckID)

	when := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	s.Require().NoError(s.reviews.InsertReview(ctx, cardID, models.QualityGood, when))
	s.Require().NoError(s.cards.Delete(ctx, cardID))

	stats, err := s.reviews.ReviewTotals(ctx, deckID, models.QualityGood)
	s.Require().NoError(err)
	s.Zero(stats.ReviewedCount)
}

func TestReviewRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositorySuite))
}

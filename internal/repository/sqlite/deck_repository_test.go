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

type DeckRepositorySuite struct {
	suite.Suite
	db      *sql.DB
	repo    repository.DeckRepository
	reviews repository.ReviewRepository
}

func (s *DeckRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewDeckRepository(s.db)
	s.reviews = sqlite.NewReviewRepository(s.db)
}

func (s *DeckRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *DeckRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, "English Vocabulary")
	s.Require().NoError(err)

	deck, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(deck)
	s.Equal("English Vocabulary", deck.Name)

	byName, err := s.repo.GetByName(ctx, "English Vocabulary")
	s.Require().NoError(err)
	s.Require().NotNil(byName)
	s.Equal(id, byName.ID)
}

func (s *DeckRepositorySuite) TestInsertDuplicateName() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, "vocab")
	s.Require().NoError(err)

	_, err = s.repo.Insert(ctx, "vocab")
	s.Error(err, "deck names are unique")
}

func (s *DeckRepositorySuite) TestListOrdersByName() {
	ctx := context.Background()

	for _, name := range []string{"zoology", "algebra", "music"} {
		_, err := s.repo.Insert(ctx, name)
		s.Require().NoError(err)
	}

	decks, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(decks, 3)
	s.Equal("algebra", decks[0].Name)
	s.Equal("music", decks[1].Name)
	s.Equal("zoology", decks[2].Name)
}

func (s *DeckRepositorySuite) TestRename() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, "old name")
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Rename(ctx, id, "new name"))

	deck, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal("new name", deck.Name)

	s.ErrorIs(s.repo.Rename(ctx, 999, "x"), sql.ErrNoRows)
}

func (s *DeckRepositorySuite) TestDeleteMissing() {
	s.ErrorIs(s.repo.Delete(context.Background(), 42), sql.ErrNoRows)
}

func (s *DeckRepositorySuite) TestSessionsAndLifetimeStats() {
	ctx := context.Background()

	deckID, err := s.repo.Insert(ctx, "vocab")
	s.Require().NoError(err)

	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, rec := range []models.SessionRecord{
		{DeckID: deckID, Mode: "due", Reviewed: 10, Correct: 7},
		{DeckID: deckID, Mode: "difficult", Reviewed: 4, Correct: 1},
	} {
		rec.StartedAt = start.Add(time.Duration(i) * time.Hour)
		rec.EndedAt = rec.StartedAt.Add(10 * time.Minute)
		_, err := s.reviews.InsertSession(ctx, rec)
		s.Require().NoError(err)
	}

	sessions, err := s.reviews.ListSessions(ctx, deckID, 10)
	s.Require().NoError(err)
	s.Require().Len(sessions, 2)
	s.Equal("difficult", sessions[0].Mode, "most recent first")

	stats, err := s.reviews.LifetimeStats(ctx, deckID)
	s.Require().NoError(err)
	s.Equal(14, stats.ReviewedCount)
	s.Equal(8, stats.CorrectCount)
	s.InDelta(8.0/14.0, stats.SuccessRate, 1e-9)
}

func (s *DeckRepositorySuite) TestLifetimeStatsEmpty() {
	stats, err := s.reviews.LifetimeStats(context.Background(), 1)
	s.Require().NoError(err)
	s.Zero(stats.ReviewedCount)
	s.Zero(stats.SuccessRate)
}

func TestDeckRepositorySuite(t *testing.T) {
	suite.Run(t, new(DeckRepositorySuite))
}

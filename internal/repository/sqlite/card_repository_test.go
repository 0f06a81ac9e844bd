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

type CardRepositorySuite struct {
	suite.Suite
	db    *sql.DB
	repo  repository.CardRepository
	decks repository.DeckRepository
}

func (s *CardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewCardRepository(s.db)
	s.decks = sqlite.NewDeckRepository(s.db)
}

func (s *CardRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *CardRepositorySuite) newDeck(name string) int64 {
	id, err := s.decks.Insert(context.Background(), name)
	s.Require().NoError(err)
	return id
}

func (s *CardRepositorySuite) newCard(deckID int64, front string, tags []string) models.Card {
	return models.Card{
		DeckID:     deckID,
		Front:      front,
		Back:       front + " definition",
		Tags:       tags,
		EaseFactor: 2.5,
		DueAt:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func (s *CardRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	deckID := s.newDeck("vocab")

	id, err := s.repo.Insert(ctx, s.newCard(deckID, "abandon", []string{"verb", "high-frequency"}))
	s.Require().NoError(err)
	s.Require().NotZero(id)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("abandon", got.Front)
	s.Equal("abandon definition", got.Back)
	s.Equal([]string{"verb", "high-frequency"}, got.Tags)
	s.Equal(2.5, got.EaseFactor)
	s.Equal(0, got.Repetitions)
	s.Nil(got.LastReviewedAt)
	s.Equal(models.StatusNew, got.Status())
}

func (s *CardRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), 999)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *CardRepositorySuite) TestUpdateSchedulingState() {
	ctx := context.Background()
	deckID := s.newDeck("vocab")

	id, err := s.repo.Insert(ctx, s.newCard(deckID, "ability", nil))
	s.Require().NoError(err)

	reviewed := time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC)
	card, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	card.EaseFactor = 2.6
	card.IntervalDays = 6
	card.Repetitions = 2
	card.DueAt = reviewed.AddDate(0, 0, 6)
	card.LastReviewedAt = &reviewed

	s.Require().NoError(s.repo.Update(ctx, *card))

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(2.6, got.EaseFactor)
	s.Equal(6, got.IntervalDays)
	s.Equal(2, got.Repetitions)
	s.Require().NotNil(got.LastReviewedAt)
	s.Equal(reviewed.Unix(), got.LastReviewedAt.Unix())
}

func (s *CardRepositorySuite) TestUpdateMissingCard() {
	card := s.newCard(s.newDeck("vocab"), "absence", nil)
	card.ID = 12345

	err := s.repo.Update(context.Background(), card)
	s.ErrorIs(err, sql.ErrNoRows)
}

func (s *CardRepositorySuite) TestListFilters() {
	ctx := context.Background()
	deckA := s.newDeck("vocab")
	deckB := s.newDeck("idioms")

	_, err := s.repo.Insert(ctx, s.newCard(deckA, "abandon", []string{"verb"}))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, s.newCard(deckA, "ability", []string{"noun", "basic"}))
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, s.newCard(deckB, "at once", []string{"basic"}))
	s.Require().NoError(err)

	cards, err := s.repo.List(ctx, models.CardFilter{DeckID: deckA})
	s.Require().NoError(err)
	s.Len(cards, 2)

	cards, err = s.repo.List(ctx, models.CardFilter{Tag: "basic"})
	s.Require().NoError(err)
	s.Len(cards, 2)

	cards, err = s.repo.List(ctx, models.CardFilter{DeckID: deckA, Tag: "basic"})
	s.Require().NoError(err)
	s.Require().Len(cards, 1)
	s.Equal("ability", cards[0].Front)
}

func (s *CardRepositorySuite) TestListDueBefore() {
	ctx := context.Background()
	deckID := s.newDeck("vocab")

	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	early := s.newCard(deckID, "early", nil)
	early.DueAt = today.AddDate(0, 0, -1)
	late := s.newCard(deckID, "late", nil)
	late.DueAt = today.AddDate(0, 0, 5)

	_, err := s.repo.Insert(ctx, early)
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, late)
	s.Require().NoError(err)

	cards, err := s.repo.List(ctx, models.CardFilter{DeckID: deckID, DueBefore: &today})
	s.Require().NoError(err)
	s.Require().Len(cards, 1)
	s.Equal("early", cards[0].Front)
}

func (s *CardRepositorySuite) TestCount() {
	ctx := context.Background()
	deckID := s.newDeck("vocab")

	for _, front := range []string{"a", "b", "c"} {
		_, err := s.repo.Insert(ctx, s.newCard(deckID, front, nil))
		s.Require().NoError(err)
	}

	n, err := s.repo.Count(ctx, models.CardFilter{DeckID: deckID})
	s.Require().NoError(err)
	s.Equal(3, n)
}

func (s *CardRepositorySuite) TestDelete() {
	ctx := context.Background()
	deckID := s.newDeck("vocab")

	id, err := s.repo.Insert(ctx, s.newCard(deckID, "abandon", nil))
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(ctx, id))

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Nil(got)

	s.ErrorIs(s.repo.Delete(ctx, id), sql.ErrNoRows)
}

func (s *CardRepositorySuite) TestDeckDeleteCascades() {
	ctx := context.Background()
	deckID := s.newDeck("vocab")

	id, err := s.repo.Insert(ctx, s.newCard(deckID, "abandon", nil))
	s.Require().NoError(err)

	s.Require().NoError(s.decks.Delete(ctx, deckID))

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Nil(got, "cards are removed with their deck")
}

func TestCardRepositorySuite(t *testing.T) {
	suite.Run(t, new(CardRepositorySuite))
}

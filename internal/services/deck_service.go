package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"github.com/mfreitas/flashdeck/internal/errors"
	"github.com/mfreitas/flashdeck/internal/logger"
	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/repository"
	"github.com/mfreitas/flashdeck/internal/study"
)

// DeckService handles deck-related business logic
type DeckService interface {
	CreateDeck(ctx context.Context, name string) (*models.Deck, error)
	GetDeck(ctx context.Context, id int64) (*models.Deck, error)
	GetDeckByName(ctx context.Context, name string) (*models.Deck, error)
	ListDecks(ctx context.Context, today time.Time) ([]models.DeckSummary, error)
	RenameDeck(ctx context.Context, id int64, name string) error
	DeleteDeck(ctx context.Context, id int64) error
}

type deckService struct {
	decks  repository.DeckRepository
	cards  repository.CardRepository
	policy Policy
}

// NewDeckService creates a new DeckService
func NewDeckService(decks repository.DeckRepository, cards repository.CardRepository, policy Policy) DeckService {
	return &deckService{decks: decks, cards: cards, policy: policy}
}

func (s *deckService) CreateDeck(ctx context.Context, name string) (*models.Deck, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}

	existing, err := s.decks.GetByName(ctx, name)
	if err != nil {
		log.Error("failed to check deck name: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("deck already exists: " + name)
	}

	id, err := s.decks.Insert(ctx, name)
	if err != nil {
		log.Error("failed to create deck: %v", err)
		return nil, errors.NewInternalError(err)
	}

	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		log.Error("failed to load created deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("deck created: id=%d, name=%s", id, name)
	return deck, nil
}

func (s *deckService) GetDeck(ctx context.Context, id int64) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", id)
	}
	return deck, nil
}

func (s *deckService) GetDeckByName(ctx context.Context, name string) (*models.Deck, error) {
	deck, err := s.decks.GetByName(ctx, name)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", name)
	}
	return deck, nil
}

func (s *deckService) ListDecks(ctx context.Context, today time.Time) ([]models.DeckSummary, error) {
	log := logger.FromContext(ctx)

	decks, err := s.decks.List(ctx)
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, errors.NewInternalError(err)
	}

	summaries := make([]models.DeckSummary, 0, len(decks))
	for _, deck := range decks {
		cards, err := s.cards.List(ctx, models.CardFilter{DeckID: deck.ID})
		if err != nil {
			log.Error("failed to load cards for deck %d: %v", deck.ID, err)
			return nil, errors.NewInternalError(err)
		}
		due := study.Select(cards, study.ModeDue, study.Params{Today: today})
		difficult := study.Select(cards, study.ModeDifficult, study.Params{
			MaxLapses: s.policy.DifficultLapses,
			MinEase:   s.policy.DifficultEase,
		})
		summaries = append(summaries, models.DeckSummary{
			Deck:           deck,
			CardCount:      len(cards),
			DueCount:       len(due),
			DifficultCount: len(difficult),
		})
	}
	return summaries, nil
}

func (s *deckService) RenameDeck(ctx context.Context, id int64, name string) error {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("name", "cannot be empty")
	}

	existing, err := s.decks.GetByName(ctx, name)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing != nil && existing.ID != id {
		return errors.NewConflictError("deck already exists: " + name)
	}

	if err := s.decks.Rename(ctx, id, name); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NewNotFoundError("deck", id)
		}
		log.Error("failed to rename deck: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("deck renamed: id=%d, name=%s", id, name)
	return nil
}

func (s *deckService) DeleteDeck(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.decks.Delete(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NewNotFoundError("deck", id)
		}
		log.Error("failed to delete deck: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("deck deleted: id=%d", id)
	return nil
}

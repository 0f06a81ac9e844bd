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
)

// CardEdit carries the optional fields of a card update; nil means keep the
// current value.
type CardEdit struct {
	Front *string
	Back  *string
	Tags  []string
}

// CardService handles card-related business logic
type CardService interface {
	AddCard(ctx context.Context, deckID int64, front, back string, tags []string, today time.Time) (*models.Card, error)
	GetCard(ctx context.Context, id int64) (*models.Card, error)
	ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	EditCard(ctx context.Context, id int64, edit CardEdit) (*models.Card, error)
	DeleteCard(ctx context.Context, id int64) error
}

type cardService struct {
	cards  repository.CardRepository
	decks  repository.DeckRepository
	policy Policy
}

// NewCardService creates a new CardService
func NewCardService(cards repository.CardRepository, decks repository.DeckRepository, policy Policy) CardService {
	return &cardService{cards: cards, decks: decks, policy: policy}
}

func (s *cardService) AddCard(ctx context.Context, deckID int64, front, back string, tags []string, today time.Time) (*models.Card, error) {
	log := logger.FromContext(ctx)

	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" {
		return nil, errors.NewValidationError("front", "cannot be empty")
	}
	if back == "" {
		return nil, errors.NewValidationError("back", "cannot be empty")
	}

	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}

	// New cards are immediately due with no repetition history.
	card := models.Card{
		DeckID:     deckID,
		Front:      front,
		Back:       back,
		Tags:       normalizeTags(tags),
		EaseFactor: s.policy.InitialEaseFactor,
		DueAt:      today.Truncate(24 * time.Hour),
	}

	id, err := s.cards.Insert(ctx, card)
	if err != nil {
		log.Error("failed to insert card: %v", err)
		return nil, errors.NewInternalError(err)
	}

	created, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	log.Info("card added: id=%d, deck_id=%d", id, deckID)
	return created, nil
}

func (s *cardService) GetCard(ctx context.Context, id int64) (*models.Card, error) {
	card, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", id)
	}
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, filter models.CardFilter) ([]models.Card, error) {
	cards, err := s.cards.List(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *cardService) EditCard(ctx context.Context, id int64, edit CardEdit) (*models.Card, error) {
	log := logger.FromContext(ctx)

	card, err := s.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if edit.Front != nil {
		front := strings.TrimSpace(*edit.Front)
		if front == "" {
			return nil, errors.NewValidationError("front", "cannot be empty")
		}
		card.Front = front
	}
	if edit.Back != nil {
		back := strings.TrimSpace(*edit.Back)
		if back == "" {
			return nil, errors.NewValidationError("back", "cannot be empty")
		}
		card.Back = back
	}
	if edit.Tags != nil {
		card.Tags = normalizeTags(edit.Tags)
	}

	if err := s.cards.Update(ctx, *card); err != nil {
		log.Error("failed to update card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("card updated: id=%d", id)
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.cards.Delete(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NewNotFoundError("card", id)
		}
		log.Error("failed to delete card: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("card deleted: id=%d", id)
	return nil
}

// normalizeTags trims whitespace and drops empty or duplicate tags while
// preserving first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

package services

import (
	"context"
	"time"

	"github.com/mfreitas/flashdeck/internal/errors"
	"github.com/mfreitas/flashdeck/internal/logger"
	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/repository"
	"github.com/mfreitas/flashdeck/internal/study"
)

// StatsService aggregates review performance across cards and past sessions.
type StatsService interface {
	DeckStats(ctx context.Context, deckID int64, today time.Time) (*models.DeckStats, error)
	LifetimeStats(ctx context.Context, deckID int64) (models.Statistics, error)
	RecentSessions(ctx context.Context, deckID int64, limit int) ([]models.SessionRecord, error)
}

type statsService struct {
	decks   repository.DeckRepository
	cards   repository.CardRepository
	reviews repository.ReviewRepository
	policy  Policy
}

// NewStatsService creates a new StatsService
func NewStatsService(decks repository.DeckRepository, cards repository.CardRepository, reviews repository.ReviewRepository, policy Policy) StatsService {
	return &statsService{decks: decks, cards: cards, reviews: reviews, policy: policy}
}

func (s *statsService) DeckStats(ctx context.Context, deckID int64, today time.Time) (*models.DeckStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing deck stats: deck_id=%d", deckID)

	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}

	cards, err := s.cards.List(ctx, models.CardFilter{DeckID: deckID})
	if err != nil {
		log.Error("failed to load deck cards: %v", err)
		return nil, errors.NewInternalError(err)
	}

	params := study.Params{
		Today:     today,
		MaxLapses: s.policy.DifficultLapses,
		MinEase:   s.policy.DifficultEase,
	}
	stats := &models.DeckStats{
		DeckID:         deckID,
		TotalCards:     len(cards),
		DueCards:       len(study.Select(cards, study.ModeDue, params)),
		DifficultCards: len(study.Select(cards, study.ModeDifficult, params)),
		TagCounts:      map[string]int{},
	}
	for _, c := range cards {
		if c.LastReviewedAt != nil {
			stats.ReviewedCards++
		}
		for _, tag := range c.Tags {
			stats.TagCounts[tag]++
		}
	}

	totals, err := s.reviews.ReviewTotals(ctx, deckID, s.policy.Scheduler.PassThreshold)
	if err != nil {
		log.Error("failed to load review totals: %v", err)
		return nil, errors.NewInternalError(err)
	}
	stats.TotalReviews = totals.ReviewedCount
	stats.CorrectReviews = totals.CorrectCount
	stats.Accuracy = totals.SuccessRate

	return stats, nil
}

func (s *statsService) LifetimeStats(ctx context.Context, deckID int64) (models.Statistics, error) {
	stats, err := s.reviews.LifetimeStats(ctx, deckID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load lifetime stats: %v", err)
		return models.Statistics{}, errors.NewInternalError(err)
	}
	return stats, nil
}

func (s *statsService) RecentSessions(ctx context.Context, deckID int64, limit int) ([]models.SessionRecord, error) {
	sessions, err := s.reviews.ListSessions(ctx, deckID, limit)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list sessions: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return sessions, nil
}

package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/mfreitas/flashdeck/internal/errors"
	"github.com/mfreitas/flashdeck/internal/jobs"
	"github.com/mfreitas/flashdeck/internal/logger"
	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/repository"
	"github.com/mfreitas/flashdeck/internal/srs"
	"github.com/mfreitas/flashdeck/internal/study"
)

// StudyService drives review sessions: it builds the queue for a study mode,
// grades answers through the scheduler, and records outcomes.
type StudyService interface {
	BuildQueue(ctx context.Context, deckID int64, mode study.Mode, tags []string, today time.Time) ([]models.Card, error)
	SubmitReview(ctx context.Context, cardID int64, quality models.Quality, today time.Time) (*models.Card, error)
	FinishSession(ctx context.Context, session models.SessionRecord) error
	NewTracker(startedAt time.Time) *study.Tracker
}

type studyService struct {
	cards  repository.CardRepository
	decks  repository.DeckRepository
	queue  jobs.JobQueue
	policy Policy
}

// NewStudyService creates a new StudyService
func NewStudyService(cards repository.CardRepository, decks repository.DeckRepository, queue jobs.JobQueue, policy Policy) StudyService {
	return &studyService{cards: cards, decks: decks, queue: queue, policy: policy}
}

func (s *studyService) BuildQueue(ctx context.Context, deckID int64, mode study.Mode, tags []string, today time.Time) ([]models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("building study queue: deck_id=%d, mode=%s", deckID, mode)

	if !mode.IsValid() {
		return nil, errors.NewBadRequestError("unknown study mode: " + string(mode))
	}

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

	selected := study.Select(cards, mode, study.Params{
		Today:     today,
		Tags:      tags,
		MaxLapses: s.policy.DifficultLapses,
		MinEase:   s.policy.DifficultEase,
	})

	// The ordered modes stay deterministic; a full-deck pass is shuffled so
	// repeated sessions do not drill the same sequence.
	if mode == study.ModeAll && s.policy.ShuffleAllMode {
		rand.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
	}

	if s.policy.SessionLimit > 0 && len(selected) > s.policy.SessionLimit {
		selected = selected[:s.policy.SessionLimit]
	}

	log.Debug("study queue built: %d cards", len(selected))
	return selected, nil
}

func (s *studyService) SubmitReview(ctx context.Context, cardID int64, quality models.Quality, today time.Time) (*models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting review: card_id=%d, quality=%d", cardID, quality)

	card, err := s.cards.Get(ctx, cardID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", cardID)
	}

	updated, err := srs.Grade(*card, quality, today, s.policy.Scheduler)
	if err != nil {
		// Invalid grade: reject the answer, leave the card untouched.
		return nil, err
	}

	if err := s.cards.Update(ctx, updated); err != nil {
		log.Error("failed to persist review: %v", err)
		return nil, errors.NewInternalError(err)
	}

	outcome := models.ReviewOutcome{CardID: cardID, Quality: quality, ReviewedAt: today}
	if err := s.queue.EnqueueReviewLog(outcome); err != nil {
		// History is best effort; the review itself already succeeded.
		log.Warn("failed to enqueue review log: %v", err)
	}

	log.Debug("review applied: card_id=%d, interval=%d, ease=%.2f", cardID, updated.IntervalDays, updated.EaseFactor)
	return &updated, nil
}

func (s *studyService) FinishSession(ctx context.Context, session models.SessionRecord) error {
	log := logger.FromContext(ctx)

	if session.Reviewed == 0 {
		log.Debug("session had no reviews, skipping record")
		return nil
	}
	if err := s.queue.EnqueueSessionLog(session); err != nil {
		log.Warn("failed to enqueue session log: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("session finished: deck_id=%d, reviewed=%d, correct=%d", session.DeckID, session.Reviewed, session.Correct)
	return nil
}

func (s *studyService) NewTracker(startedAt time.Time) *study.Tracker {
	return study.NewTracker(s.policy.Scheduler.PassThreshold, startedAt)
}

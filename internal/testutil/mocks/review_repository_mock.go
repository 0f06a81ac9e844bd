package mocks

import (
	"context"
	"time"

	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock implementation of repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) InsertReview(ctx context.Context, cardID int64, quality models.Quality, reviewedAt time.Time) error {
	args := m.Called(ctx, cardID, quality, reviewedAt)
	return args.Error(0)
}

func (m *MockReviewRepository) InsertSession(ctx context.Context, session models.SessionRecord) (int64, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) ListSessions(ctx context.Context, deckID int64, limit int) ([]models.SessionRecord, error) {
	args := m.Called(ctx, deckID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionRecord), args.Error(1)
}

func (m *MockReviewRepository) ReviewTotals(ctx context.Context, deckID int64, passThreshold models.Quality) (models.Statistics, error) {
	args := m.Called(ctx, deckID, passThreshold)
	return args.Get(0).(models.Statistics), args.Error(1)
}

func (m *MockReviewRepository) LifetimeStats(ctx context.Context, deckID int64) (models.Statistics, error) {
	args := m.Called(ctx, deckID)
	return args.Get(0).(models.Statistics), args.Error(1)
}

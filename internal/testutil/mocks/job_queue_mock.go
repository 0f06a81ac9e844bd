package mocks

import (
	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueReviewLog(outcome models.ReviewOutcome) error {
	args := m.Called(outcome)
	return args.Error(0)
}

func (m *MockJobQueue) EnqueueSessionLog(session models.SessionRecord) error {
	args := m.Called(session)
	return args.Error(0)
}

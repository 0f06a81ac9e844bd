package jobs

import (
	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/repository"
	"github.com/mfreitas/flashdeck/internal/worker"
)

// JobQueue provides an abstraction for enqueueing background writes
type JobQueue interface {
	EnqueueReviewLog(outcome models.ReviewOutcome) error
	EnqueueSessionLog(session models.SessionRecord) error
}

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	pool    *worker.Pool
	reviews repository.ReviewRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, reviews repository.ReviewRepository) JobQueue {
	return &WorkerQueue{pool: pool, reviews: reviews}
}

func (q *WorkerQueue) EnqueueReviewLog(outcome models.ReviewOutcome) error {
	return q.pool.Submit(&worker.LogReviewJob{Reviews: q.reviews, Outcome: outcome})
}

func (q *WorkerQueue) EnqueueSessionLog(session models.SessionRecord) error {
	return q.pool.Submit(&worker.LogSessionJob{Reviews: q.reviews, Session: session})
}

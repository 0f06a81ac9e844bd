package worker

import (
	"context"

	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/repository"
)

// LogReviewJob appends one graded answer to the review history.
type LogReviewJob struct {
	Reviews repository.ReviewRepository
	Outcome models.ReviewOutcome
}

func (j *LogReviewJob) Name() string { return "log_review" }

func (j *LogReviewJob) Run(ctx context.Context) error {
	return j.Reviews.InsertReview(ctx, j.Outcome.CardID, j.Outcome.Quality, j.Outcome.ReviewedAt)
}

// LogSessionJob persists a finished session's summary for lifetime statistics.
type LogSessionJob struct {
	Reviews repository.ReviewRepository
	Session models.SessionRecord
}

func (j *LogSessionJob) Name() string { return "log_session" }

func (j *LogSessionJob) Run(ctx context.Context) error {
	_, err := j.Reviews.InsertSession(ctx, j.Session)
	return err
}

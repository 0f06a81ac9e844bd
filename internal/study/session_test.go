package study_test

import (
	"testing"
	"time"

	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/study"
	"github.com/stretchr/testify/assert"
)

func TestTracker_RecordAndSummary(t *testing.T) {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := study.NewTracker(models.QualityGood, start)

	for i, q := range []models.Quality{models.QualityEasy, models.QualityIncorrect, models.QualityGood, models.QualityBlackout} {
		tracker.Record(models.ReviewOutcome{
			CardID:     int64(i + 1),
			Quality:    q,
			ReviewedAt: start.Add(time.Duration(i) * time.Minute),
		})
	}

	stats := tracker.Summary()
	assert.Equal(t, 4, stats.ReviewedCount)
	assert.Equal(t, 2, stats.CorrectCount)
	assert.Equal(t, 0.5, stats.SuccessRate)
	assert.Equal(t, start, tracker.StartedAt())
}

func TestTracker_EmptySession(t *testing.T) {
	tracker := study.NewTracker(models.QualityGood, time.Now())

	stats := tracker.Summary()
	assert.Equal(t, 0, stats.ReviewedCount)
	assert.Equal(t, 0, stats.CorrectCount)
	assert.Equal(t, 0.0, stats.SuccessRate, "rate is zero, not NaN, with nothing reviewed")
}

func TestTracker_PassThreshold(t *testing.T) {
	tracker := study.NewTracker(models.QualityHard, time.Now())

	tracker.Record(models.ReviewOutcome{CardID: 1, Quality: models.QualityHard})
	tracker.Record(models.ReviewOutcome{CardID: 2, Quality: models.QualityIncorrect})

	stats := tracker.Summary()
	assert.Equal(t, 2, stats.ReviewedCount)
	assert.Equal(t, 1, stats.CorrectCount, "hard passes under a lowered threshold")
}

func TestTracker_Reset(t *testing.T) {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := study.NewTracker(models.QualityGood, start)
	tracker.Record(models.ReviewOutcome{CardID: 1, Quality: models.QualityGood})

	next := start.Add(time.Hour)
	tracker.Reset(next)

	stats := tracker.Summary()
	assert.Equal(t, 0, stats.ReviewedCount)
	assert.Equal(t, next, tracker.StartedAt())
}

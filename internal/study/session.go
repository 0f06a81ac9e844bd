package study

import (
	"sync"
	"time"

	"github.com/mfreitas/flashdeck/internal/models"
)

// Tracker accumulates graded answers for one study session. Create one per
// session and Reset it, or make a new one, when the next session starts.
type Tracker struct {
	mu            sync.Mutex
	passThreshold models.Quality
	startedAt     time.Time
	reviewed      int
	correct       int
}

// NewTracker creates a Tracker that counts grades at or above passThreshold
// as correct.
func NewTracker(passThreshold models.Quality, startedAt time.Time) *Tracker {
	return &Tracker{
		passThreshold: passThreshold,
		startedAt:     startedAt,
	}
}

// Record counts one graded answer.
func (t *Tracker) Record(outcome models.ReviewOutcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.reviewed++
	if outcome.Quality >= t.passThreshold {
		t.correct++
	}
}

// Summary returns a snapshot of the session's statistics. The success rate is
// derived on every call, never stored.
func (t *Tracker) Summary() models.Statistics {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := models.Statistics{
		ReviewedCount: t.reviewed,
		CorrectCount:  t.correct,
	}
	if t.reviewed > 0 {
		s.SuccessRate = float64(t.correct) / float64(t.reviewed)
	}
	return s
}

// StartedAt returns when the session began.
func (t *Tracker) StartedAt() time.Time {
	return t.startedAt
}

// Reset clears the counters for a new session starting at the given time.
func (t *Tracker) Reset(startedAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.startedAt = startedAt
	t.reviewed = 0
	t.correct = 0
}

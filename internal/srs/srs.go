// Package srs implements the spaced-repetition scheduling policy, an SM-2
// variant. Grading is a pure state transition: it touches no clock and no
// storage, so a given (card, quality, today) always yields the same card.
package srs

import (
	"math"
	"time"

	"github.com/mfreitas/flashdeck/internal/errors"
	"github.com/mfreitas/flashdeck/internal/models"
)

// Params holds the scheduling tunables. Values come from configuration;
// DefaultParams mirrors the config defaults for callers that have none.
type Params struct {
	MinEaseFactor float64        // floor the ease factor never drops below
	LapsePenalty  float64        // ease factor deduction on a failed review
	PassThreshold models.Quality // lowest grade that counts as a success
}

// DefaultParams returns the standard SM-2 tuning.
func DefaultParams() Params {
	return Params{
		MinEaseFactor: 1.3,
		LapsePenalty:  0.2,
		PassThreshold: models.QualityGood,
	}
}

// Grade applies one review to a card and returns the rescheduled card.
//
// A grade below the pass threshold is a lapse: repetition progress resets,
// the card comes back tomorrow, and the ease factor takes a fixed penalty.
// A passing grade grows the interval: 1 day, then 6 days, then the previous
// interval scaled by the adjusted ease factor.
//
// An out-of-range quality returns an INVALID_GRADE error and the card
// unchanged; grades are never silently clamped.
func Grade(card models.Card, quality models.Quality, today time.Time, p Params) (models.Card, error) {
	if !quality.IsValid() {
		return card, errors.NewInvalidGradeError(int(quality))
	}

	day := today.Truncate(24 * time.Hour)

	if quality < p.PassThreshold {
		card.Repetitions = 0
		card.IntervalDays = 1
		card.Lapses++
		card.EaseFactor = clampEase(card.EaseFactor-p.LapsePenalty, p.MinEaseFactor)
	} else {
		card.Repetitions++
		ef := card.EaseFactor + (0.1 - float64(models.QualityEasy-quality)*(0.08+float64(models.QualityEasy-quality)*0.02))
		card.EaseFactor = clampEase(ef, p.MinEaseFactor)

		switch {
		case card.Repetitions == 1:
			card.IntervalDays = 1
		case card.Repetitions == 2:
			card.IntervalDays = 6
		default:
			card.IntervalDays = int(math.Round(float64(card.IntervalDays) * card.EaseFactor))
		}
	}

	card.DueAt = day.AddDate(0, 0, card.IntervalDays)
	reviewed := today
	card.LastReviewedAt = &reviewed
	return card, nil
}

// IsPass reports whether the grade counts as a successful recall.
func (p Params) IsPass(quality models.Quality) bool {
	return quality >= p.PassThreshold
}

func clampEase(ef, floor float64) float64 {
	if ef < floor {
		return floor
	}
	return ef
}

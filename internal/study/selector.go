// Package study builds review queues for a session and tracks its outcomes.
package study

import (
	"sort"
	"time"

	"github.com/mfreitas/flashdeck/internal/models"
)

// Mode selects which cards a study session draws from.
type Mode string

const (
	ModeDue       Mode = "due"
	ModeDifficult Mode = "difficult"
	ModeByTags    Mode = "tags"
	ModeAll       Mode = "all"
)

// IsValid reports whether m is a known study mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeDue, ModeDifficult, ModeByTags, ModeAll:
		return true
	}
	return false
}

// Params carries the per-mode selection inputs.
type Params struct {
	Today time.Time // reference date for due checks
	Tags  []string  // requested tags for ModeByTags

	// Difficult classification: a card qualifies when it has lapsed at
	// least MaxLapses times or its ease factor is at or below MinEase.
	MaxLapses int
	MinEase   float64
}

// Select filters and orders cards for one study mode. The input slice is never
// mutated; an empty result is a valid outcome, not an error.
//
// Ordering: due mode sorts by due date then id, difficult mode by lapse count
// (worst first) then ease factor, and the tag and all modes preserve the input
// order.
func Select(cards []models.Card, mode Mode, p Params) []models.Card {
	var out []models.Card

	switch mode {
	case ModeDue:
		// Compare calendar days so a card due "today" qualifies no matter
		// what time of day it was scheduled.
		day := p.Today.Truncate(24 * time.Hour)
		for _, c := range cards {
			if !c.DueAt.Truncate(24 * time.Hour).After(day) {
				out = append(out, c)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			if !out[i].DueAt.Equal(out[j].DueAt) {
				return out[i].DueAt.Before(out[j].DueAt)
			}
			return out[i].ID < out[j].ID
		})

	case ModeDifficult:
		for _, c := range cards {
			if c.Lapses >= p.MaxLapses || c.EaseFactor <= p.MinEase {
				out = append(out, c)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Lapses != out[j].Lapses {
				return out[i].Lapses > out[j].Lapses
			}
			return out[i].EaseFactor < out[j].EaseFactor
		})

	case ModeByTags:
		// An empty requested set matches nothing. Matching everything here
		// would silently turn a typo into a full-deck session.
		if len(p.Tags) == 0 {
			return nil
		}
		requested := make(map[string]struct{}, len(p.Tags))
		for _, t := range p.Tags {
			requested[t] = struct{}{}
		}
		for _, c := range cards {
			for _, t := range c.Tags {
				if _, ok := requested[t]; ok {
					out = append(out, c)
					break
				}
			}
		}

	case ModeAll:
		out = append(out, cards...)
	}

	return out
}

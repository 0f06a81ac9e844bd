package sqlite

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/mfreitas/flashdeck/internal/models"
)

// Helper functions shared across repository implementations

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*models.Card, error) {
	var (
		c        models.Card
		tags     string
		reviewed sql.NullTime
	)
	err := row.Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &tags, &c.EaseFactor,
		&c.IntervalDays, &c.Repetitions, &c.Lapses, &c.DueAt, &reviewed, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if reviewed.Valid {
		t := reviewed.Time
		c.LastReviewedAt = &t
	}
	if c.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	return &c, nil
}

func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

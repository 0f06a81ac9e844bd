package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/mfreitas/flashdeck/internal/logger"
	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new ReviewRepository implementation
func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) InsertReview(ctx context.Context, cardID int64, quality models.Quality, reviewedAt time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("inserting review: card_id=%d, quality=%d", cardID, quality)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_history (card_id, quality, reviewed_at)
VALUES (?, ?, ?)
`, cardID, int(quality), reviewedAt)
	if err != nil {
		log.Error("failed to insert review: %v", err)
	}
	return err
}

func (r *reviewRepository) InsertSession(ctx context.Context, s models.SessionRecord) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")
	log.Debug("inserting session: deck_id=%d, mode=%s, reviewed=%d", s.DeckID, s.Mode, s.Reviewed)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO study_sessions (deck_id, mode, reviewed, correct, started_at, ended_at)
VALUES (?, ?, ?, ?, ?, ?)
`, s.DeckID, s.Mode, s.Reviewed, s.Correct, s.StartedAt, s.EndedAt)
	if err != nil {
		log.Error("failed to insert session: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *reviewRepository) ListSessions(ctx context.Context, deckID int64, limit int) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")

	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, deck_id, mode, reviewed, correct, started_at, ended_at
FROM study_sessions
WHERE deck_id = ?
ORDER BY started_at DESC
LIMIT ?
`, deckID, limit)
	if err != nil {
		log.Error("failed to query sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.SessionRecord
	for rows.Next() {
		var s models.SessionRecord
		if err := rows.Scan(&s.ID, &s.DeckID, &s.Mode, &s.Reviewed, &s.Correct, &s.StartedAt, &s.EndedAt); err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *reviewRepository) ReviewTotals(ctx context.Context, deckID int64, passThreshold models.Quality) (models.Statistics, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")

	var stats models.Statistics
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*), COALESCE(SUM(CASE WHEN h.quality >= ? THEN 1 ELSE 0 END), 0)
FROM review_history h
JOIN cards c ON c.id = h.card_id
WHERE c.deck_id = ?
`, int(passThreshold), deckID).Scan(&stats.ReviewedCount, &stats.CorrectCount)
	if err != nil {
		log.Error("failed to aggregate review totals: %v", err)
		return models.Statistics{}, err
	}
	if stats.ReviewedCount > 0 {
		stats.SuccessRate = float64(stats.CorrectCount) / float64(stats.ReviewedCount)
	}
	return stats, nil
}

func (r *reviewRepository) LifetimeStats(ctx context.Context, deckID int64) (models.Statistics, error) {
	log := logger.FromContext(ctx).WithPrefix("review_repo")

	var stats models.Statistics
	err := r.db.QueryRowContext(ctx, `
SELECT COALESCE(SUM(reviewed), 0), COALESCE(SUM(correct), 0)
FROM study_sessions
WHERE deck_id = ?
`, deckID).Scan(&stats.ReviewedCount, &stats.CorrectCount)
	if err != nil {
		log.Error("failed to aggregate lifetime stats: %v", err)
		return models.Statistics{}, err
	}
	if stats.ReviewedCount > 0 {
		stats.SuccessRate = float64(stats.CorrectCount) / float64(stats.ReviewedCount)
	}
	return stats, nil
}

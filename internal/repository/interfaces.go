package repository

import (
	"context"
	"time"

	"github.com/mfreitas/flashdeck/internal/models"
)

// DeckRepository handles deck data access
type DeckRepository interface {
	Insert(ctx context.Context, name string) (int64, error)
	Get(ctx context.Context, id int64) (*models.Deck, error)
	GetByName(ctx context.Context, name string) (*models.Deck, error)
	List(ctx context.Context) ([]models.Deck, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// CardRepository handles card data access
type CardRepository interface {
	Insert(ctx context.Context, card models.Card) (int64, error)
	Update(ctx context.Context, card models.Card) error
	Get(ctx context.Context, id int64) (*models.Card, error)
	List(ctx context.Context, filter models.CardFilter) ([]models.Card, error)
	Count(ctx context.Context, filter models.CardFilter) (int, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository persists review outcomes and session summaries
type ReviewRepository interface {
	InsertReview(ctx context.Context, cardID int64, quality models.Quality, reviewedAt time.Time) error
	InsertSession(ctx context.Context, session models.SessionRecord) (int64, error)
	ListSessions(ctx context.Context, deckID int64, limit int) ([]models.SessionRecord, error)
	LifetimeStats(ctx context.Context, deckID int64) (models.Statistics, error)
	ReviewTotals(ctx context.Context, deckID int64, passThreshold models.Quality) (models.Statistics, error)
}

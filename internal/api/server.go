package api

import (
	"database/sql"

	"github.com/mfreitas/flashdeck/internal/services"
)

// Server holds the HTTP layer's dependencies. Handlers talk to the service
// layer only; the raw connection is kept for the readiness probe.
type Server struct {
	DB           *sql.DB
	DeckService  services.DeckService
	CardService  services.CardService
	StudyService services.StudyService
	StatsService services.StatsService
}

package api

import (
	"net/http"
	"strconv"
)

func (s *Server) handleDeckStats(w http.ResponseWriter, r *http.Request) {
	deckID, err := urlParamID(r, "deckID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	today, err := requestDay(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	stats, err := s.StatsService.DeckStats(r.Context(), deckID, today)
	if err != nil {
		handleError(w, r, err)
		return
	}

	lifetime, err := s.StatsService.LifetimeStats(r.Context(), deckID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"deck":     stats,
		"lifetime": lifetime,
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	deckID, err := urlParamID(r, "deckID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	sessions, err := s.StatsService.RecentSessions(r.Context(), deckID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"sessions": sessions})
}

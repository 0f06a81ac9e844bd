package api

import (
	"net/http"
	"time"

	"github.com/mfreitas/flashdeck/internal/logger"
	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/study"
)

type reviewRequest struct {
	Quality int `json:"quality"`
}

type finishSessionRequest struct {
	Mode      string    `json:"mode"`
	Reviewed  int       `json:"reviewed"`
	Correct   int       `json:"correct"`
	StartedAt time.Time `json:"started_at"`
}

func (s *Server) handleStudyQueue(w http.ResponseWriter, r *http.Request) {
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

	mode := study.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = study.ModeDue
	}
	tags := r.URL.Query()["tag"]

	cards, err := s.StudyService.BuildQueue(r.Context(), deckID, mode, tags, today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"mode":  mode,
		"count": len(cards),
		"cards": cards,
	})
}

func (s *Server) handleReviewCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := urlParamID(r, "cardID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	today, err := requestDay(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.StudyService.SubmitReview(r.Context(), cardID, models.Quality(req.Quality), today)
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("card reviewed via api: id=%d, due=%s", card.ID, card.DueAt.Format("2006-01-02"))
	respondJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleFinishSession(w http.ResponseWriter, r *http.Request) {
	deckID, err := urlParamID(r, "deckID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req finishSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	startedAt := req.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}
	session := models.SessionRecord{
		DeckID:    deckID,
		Mode:      req.Mode,
		Reviewed:  req.Reviewed,
		Correct:   req.Correct,
		StartedAt: startedAt,
		EndedAt:   time.Now().UTC(),
	}

	if err := s.StudyService.FinishSession(r.Context(), session); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusAccepted, session)
}

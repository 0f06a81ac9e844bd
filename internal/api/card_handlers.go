package api

import (
	"net/http"

	"github.com/mfreitas/flashdeck/internal/models"
	"github.com/mfreitas/flashdeck/internal/services"
)

type addCardRequest struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Tags  []string `json:"tags"`
}

type editCardRequest struct {
	Front *string  `json:"front"`
	Back  *string  `json:"back"`
	Tags  []string `json:"tags"`
}

func (s *Server) handleAddCard(w http.ResponseWriter, r *http.Request) {
	deckID, err := urlParamID(r, "deckID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req addCardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	today, err := requestDay(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.AddCard(r.Context(), deckID, req.Front, req.Back, req.Tags, today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, card)
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	deckID, err := urlParamID(r, "deckID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	filter := models.CardFilter{
		DeckID: deckID,
		Tag:    r.URL.Query().Get("tag"),
	}

	cards, err := s.CardService.ListCards(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"cards": cards})
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "cardID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.GetCard(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleEditCard(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "cardID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req editCardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.EditCard(r.Context(), id, services.CardEdit{
		Front: req.Front,
		Back:  req.Back,
		Tags:  req.Tags,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "cardID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.CardService.DeleteCard(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

package api

import (
	"net/http"

	"github.com/mfreitas/flashdeck/internal/logger"
)

type createDeckRequest struct {
	Name string `json:"name"`
}

type renameDeckRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	today, err := requestDay(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	summaries, err := s.DeckService.ListDecks(r.Context(), today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"decks": summaries})
}

func (s *Server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	deck, err := s.DeckService.CreateDeck(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("deck created via api: id=%d", deck.ID)
	respondJSON(w, r, http.StatusCreated, deck)
}

func (s *Server) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "deckID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	deck, err := s.DeckService.GetDeck(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, deck)
}

func (s *Server) handleRenameDeck(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "deckID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req renameDeckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.DeckService.RenameDeck(r.Context(), id, req.Name); err != nil {
		handleError(w, r, err)
		return
	}

	deck, err := s.DeckService.GetDeck(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, deck)
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "deckID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.DeckService.DeleteDeck(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Route("/decks", func(r chi.Router) {
			r.Get("/", s.handleListDecks)
			r.Post("/", s.handleCreateDeck)
			r.Route("/{deckID}", func(r chi.Router) {
				r.Get("/", s.handleGetDeck)
				r.Patch("/", s.handleRenameDeck)
				r.Delete("/", s.handleDeleteDeck)
				r.Get("/cards", s.handleListCards)
				r.Post("/cards", s.handleAddCard)
				r.Get("/queue", s.handleStudyQueue)
				r.Get("/stats", s.handleDeckStats)
				r.Get("/sessions", s.handleListSessions)
				r.Post("/sessions", s.handleFinishSession)
			})
		})
		r.Route("/cards/{cardID}", func(r chi.Router) {
			r.Get("/", s.handleGetCard)
			r.Patch("/", s.handleEditCard)
			r.Delete("/", s.handleDeleteCard)
			r.Post("/review", s.handleReviewCard)
		})
	})

	return r
}

package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/games-api/internal/http/handlers"
)

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := chi.NewRouter()
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api/games", func(gr chi.Router) {
		gr.Get("/", handler.ListGames)         // GET /api/games
		gr.Post("/", handler.CreateGame)       // POST /api/games
		gr.Get("/{id}", handler.GetGame)       // GET /api/games/{id}
		gr.Delete("/{id}", handler.DeleteGame) // DELETE /api/games/{id}
	})

	return r
}

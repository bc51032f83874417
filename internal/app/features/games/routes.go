// internal/app/features/games/routes.go
package games

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the games API, mounted under /api/videojuegos.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}

// internal/app/features/references/routes.go
package references

import "github.com/go-chi/chi/v5"

// MountRoutes registers the reference listings on the supplied /api router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/generos", h.ServeGenres)
	r.Get("/plataformas", h.ServePlatforms)
	r.Get("/desarrolladores", h.ServeDevelopers)
}

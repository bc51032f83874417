// internal/app/features/references/handler.go
package references

import (
	"context"
	"net/http"

	errorsfeature "github.com/dalemusser/gamecatalog/internal/app/features/errors"
	"github.com/dalemusser/gamecatalog/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Lister returns every document in one collection.
// *referencestore.Store implements it.
type Lister interface {
	All(ctx context.Context) ([]bson.M, error)
}

// Handler serves the unfiltered genre, platform and developer listings.
type Handler struct {
	Genres     Lister
	Platforms  Lister
	Developers Lister
	ErrLog     *errorsfeature.ErrorLogger
	Log        *zap.Logger
}

// NewHandler constructs a references Handler.
func NewHandler(genres, platforms, developers Lister, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Genres:     genres,
		Platforms:  platforms,
		Developers: developers,
		ErrLog:     errLog,
		Log:        logger,
	}
}

// ServeGenres handles GET /api/generos.
func (h *Handler) ServeGenres(w http.ResponseWriter, r *http.Request) {
	h.serveAll(w, r, h.Genres, "genres")
}

// ServePlatforms handles GET /api/plataformas.
func (h *Handler) ServePlatforms(w http.ResponseWriter, r *http.Request) {
	h.serveAll(w, r, h.Platforms, "platforms")
}

// ServeDevelopers handles GET /api/desarrolladores.
func (h *Handler) ServeDevelopers(w http.ResponseWriter, r *http.Request) {
	h.serveAll(w, r, h.Developers, "developers")
}

func (h *Handler) serveAll(w http.ResponseWriter, r *http.Request, l Lister, kind string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list "+kind)
	defer cancel()

	docs, err := l.All(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list "+kind+" failed", err)
		return
	}
	if docs == nil {
		docs = []bson.M{}
	}
	errorsfeature.WriteJSON(w, http.StatusOK, docs)
}

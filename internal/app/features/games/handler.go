// internal/app/features/games/handler.go
package games

import (
	"context"
	"net/http"

	errorsfeature "github.com/dalemusser/gamecatalog/internal/app/features/errors"
	"github.com/dalemusser/gamecatalog/internal/app/store/queries/gamelisting"
	"github.com/dalemusser/gamecatalog/internal/app/system/timeouts"
	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"go.uber.org/zap"
)

// Lister is the listing capability the handler needs.
// *gamelisting.Service implements it.
type Lister interface {
	List(ctx context.Context, c gamelisting.Criteria) ([]models.GameView, error)
}

// Handler serves the game listing API.
type Handler struct {
	Games  Lister
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a games Handler.
func NewHandler(games Lister, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Games:  games,
		ErrLog: errLog,
		Log:    logger,
	}
}

// ServeList handles GET /api/videojuegos.
//
// Optional query parameters:
//
//	genero      genre name, exact
//	plataforma  platform name, exact
//	titulo      case-insensitive title substring
//
// Values are not trimmed. Anything else in the query string is ignored.
// Responds with a JSON array of denormalized games (possibly empty).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list games")
	defer cancel()

	// Values are used as sent: only an empty value counts as absent, so
	// " RPG" is an unknown genre and " mario" keeps its leading space.
	q := r.URL.Query()
	c := gamelisting.Criteria{
		Genre:    q.Get("genero"),
		Platform: q.Get("plataforma"),
		Title:    q.Get("titulo"),
	}

	views, err := h.Games.List(ctx, c)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list games failed", err)
		return
	}

	h.Log.Debug("games listed",
		zap.String("genero", c.Genre),
		zap.String("plataforma", c.Platform),
		zap.String("titulo", c.Title),
		zap.Int("count", len(views)))

	errorsfeature.WriteJSON(w, http.StatusOK, views)
}

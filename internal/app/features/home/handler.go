package home

import (
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Handler serves the single-page frontend entry point.
type Handler struct {
	PublicDir string
	Log       *zap.Logger
}

func NewHandler(publicDir string, logger *zap.Logger) *Handler {
	return &Handler{
		PublicDir: publicDir,
		Log:       logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – index.html                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(h.PublicDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		h.Log.Error("frontend entry point missing", zap.String("path", index), zap.Error(err))
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, index)
}

package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalemusser/gamecatalog/internal/app/store/queries/gamelisting"
	"github.com/dalemusser/gamecatalog/internal/app/system/telemetry"
	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"github.com/dalemusser/gamecatalog/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type upPinger struct{}

func (upPinger) Ping(context.Context, *readpref.ReadPref) error { return nil }

func newTestRouter(t *testing.T, metrics *telemetry.Metrics) http.Handler {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Catálogo</h1>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	genres := testutil.NewMemReferences("Action")
	platforms := testutil.NewMemReferences("PC")
	developers := testutil.NewMemReferences("id Software")
	genre, platform, dev := genres.ID("Action"), platforms.ID("PC"), developers.ID("id Software")
	games := testutil.NewMemGames(models.Game{
		Title:       "Doom",
		GenreID:     &genre,
		DeveloperID: &dev,
		PlatformIDs: []primitive.ObjectID{platform},
	})

	cfg := validConfig()
	cfg.PublicDir = dir

	return newRouter(cfg, services{
		Games: gamelisting.NewService(gamelisting.Sources{
			Games:      games,
			Genres:     genres,
			Platforms:  platforms,
			Developers: developers,
		}, gamelisting.PerRecord),
		Genres:     genres,
		Platforms:  platforms,
		Developers: developers,
		DB:         upPinger{},
	}, metrics, zap.NewNop())
}

func TestRouter_Endpoints(t *testing.T) {
	h := newTestRouter(t, telemetry.NewMetrics())

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "Catálogo"},
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/api/videojuegos", http.StatusOK, `"titulo":"Doom"`},
		{"/api/videojuegos?genero=Action&plataforma=PC&titulo=DOO", http.StatusOK, `"desarrollador":{"nombre":"id Software"}`},
		{"/api/videojuegos?genero=Puzzle", http.StatusOK, "[]"},
		{"/api/generos", http.StatusOK, `"nombre":"Action"`},
		{"/api/plataformas", http.StatusOK, `"nombre":"PC"`},
		{"/api/desarrolladores", http.StatusOK, `"nombre":"id Software"`},
		{"/metrics", http.StatusOK, "http_requests_total"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

		if rec.Code != tt.status {
			t.Errorf("%s: status got %d, want %d", tt.path, rec.Code, tt.status)
			continue
		}
		if !strings.Contains(rec.Body.String(), tt.want) {
			t.Errorf("%s: body %q does not contain %q", tt.path, rec.Body.String(), tt.want)
		}
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Error("expected /metrics not to be served when metrics are disabled")
	}
}

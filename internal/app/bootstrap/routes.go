// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/gamecatalog/internal/app/features/errors"
	gamesfeature "github.com/dalemusser/gamecatalog/internal/app/features/games"
	healthfeature "github.com/dalemusser/gamecatalog/internal/app/features/health"
	homefeature "github.com/dalemusser/gamecatalog/internal/app/features/home"
	referencesfeature "github.com/dalemusser/gamecatalog/internal/app/features/references"
	gamestore "github.com/dalemusser/gamecatalog/internal/app/store/games"
	"github.com/dalemusser/gamecatalog/internal/app/store/queries/gamelisting"
	referencestore "github.com/dalemusser/gamecatalog/internal/app/store/references"
	"github.com/dalemusser/gamecatalog/internal/app/system/telemetry"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// services is everything the router needs, as interfaces so the router can
// be built over in-memory fakes in tests.
type services struct {
	Games      gamesfeature.Lister
	Genres     referencesfeature.Lister
	Platforms  referencesfeature.Lister
	Developers referencesfeature.Lister
	DB         healthfeature.Pinger
}

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, schema setup and
// Startup. The Mongo client in deps is the single shared handle; every
// store below is a thin view over it.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	mode, err := gamelisting.ParsePopulateMode(appCfg.PopulateMode)
	if err != nil {
		return nil, err
	}

	db := deps.CatalogMongoDatabase
	genres := referencestore.NewGenres(db)
	platforms := referencestore.NewPlatforms(db)
	developers := referencestore.NewDevelopers(db)

	listing := gamelisting.NewService(gamelisting.Sources{
		Games:      gamestore.New(db),
		Genres:     genres,
		Platforms:  platforms,
		Developers: developers,
	}, mode)

	var metrics *telemetry.Metrics
	if appCfg.MetricsEnabled {
		metrics = telemetry.NewMetrics()
	}

	logger.Info("game listing configured", zap.String("populate_mode", string(listing.Mode())))

	return newRouter(appCfg, services{
		Games:      listing,
		Genres:     genres,
		Platforms:  platforms,
		Developers: developers,
		DB:         deps.CatalogMongoClient,
	}, metrics, logger), nil
}

func newRouter(appCfg AppConfig, svc services, metrics *telemetry.Metrics, logger *zap.Logger) http.Handler {
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(telemetry.Middleware(metrics, logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(svc.DB, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	if metrics != nil {
		r.Handle("/metrics", metrics.Handler())
	}

	// Frontend: index.html at / and assets under /static
	// (with pre-compressed file support). /static/js/app.js -> <public_dir>/js/app.js
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.PublicDir))

	homeHandler := homefeature.NewHandler(appCfg.PublicDir, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// JSON API
	gamesHandler := gamesfeature.NewHandler(svc.Games, errLog, logger)
	refsHandler := referencesfeature.NewHandler(svc.Genres, svc.Platforms, svc.Developers, errLog, logger)
	r.Route("/api", func(api chi.Router) {
		api.Mount("/videojuegos", gamesfeature.Routes(gamesHandler))
		referencesfeature.MountRoutes(api, refsHandler)
	})

	return r
}

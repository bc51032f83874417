// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers framework-level settings (ports, TLS, logging
// level, CORS, body limits). AppConfig is everything specific to the game
// catalog. Values come from config files, GAMECATALOG_* environment
// variables, or command-line flags (see LoadConfig).
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI            string        // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase       string        // Database holding videojuegos, generos, plataformas, desarrolladores
	MongoMaxPoolSize    uint64        // Driver pool upper bound
	MongoMinPoolSize    uint64        // Driver pool lower bound
	MongoConnectTimeout time.Duration // Connect + initial ping budget at startup

	// Listing behavior
	PopulateMode string // "per_record" (default) or "batched"

	// Startup
	EnsureIndexes bool // Create read-path indexes at startup

	// Frontend
	PublicDir string // Directory holding index.html and static/

	// Observability
	MetricsEnabled bool // Mount /metrics and record request metrics
}

// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time initialization after the DB is connected and
// before the HTTP handler is built. Timeouts are already configured by
// ConnectDB.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("catalog starting",
		zap.String("database", appCfg.MongoDatabase),
		zap.String("populate_mode", appCfg.PopulateMode),
		zap.Bool("ensure_indexes", appCfg.EnsureIndexes),
		zap.Bool("metrics_enabled", appCfg.MetricsEnabled),
		zap.String("public_dir", appCfg.PublicDir))
	return nil
}

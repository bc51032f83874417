// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/gamecatalog/internal/app/system/indexes"
	"github.com/dalemusser/gamecatalog/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB creates the long-lived Mongo client and verifies it with a
// ping. A failure here is fatal: the app does not serve in degraded mode.
//
// Timeout overrides from the environment are applied here, the first hook
// that does timed DB work, so EnsureSchema already sees TIMEOUT_LONG.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	configureTimeouts(logger)

	ctx, cancel := context.WithTimeout(ctx, appCfg.MongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize).
		SetAppName("gamecatalog").
		// listings return arbitrary documents; nested docs should encode as JSON objects
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize))

	return DBDeps{
		CatalogMongoClient:   client,
		CatalogMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

func configureTimeouts(logger *zap.Logger) {
	n := timeouts.ConfigureFromEnv()
	cur := timeouts.Current()
	logger.Info("handler timeouts",
		zap.Int("from_env", n),
		zap.Duration("ping", cur.Ping),
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium),
		zap.Duration("long", cur.Long))
}

// EnsureSchema creates read-path indexes when ensure_indexes is set.
// The catalog is seeded and managed externally, so this is off by default.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if !appCfg.EnsureIndexes {
		return nil
	}
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Long(), logger, "ensure indexes")
	defer cancel()

	if err := indexes.EnsureAll(ctx, deps.CatalogMongoDatabase, logger); err != nil {
		logger.Error("index ensure failed", zap.Error(err))
		return err
	}
	return nil
}

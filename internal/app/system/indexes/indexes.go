// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll creates the indexes that back the catalog's read paths. It is
opt-in at startup (the catalog is externally managed). Each index set is
idempotent; errors are aggregated so every problem is visible at once.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureGames(ctx, db, logger); err != nil {
		problems = append(problems, models.GamesCollection+": "+err.Error())
	}
	for _, coll := range []string{models.GenresCollection, models.PlatformsCollection, models.DevelopersCollection} {
		if err := ensureNameLookup(ctx, db.Collection(coll), logger); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

type existingIndex struct {
	Name string `bson:"name"`
	Key  bson.D `bson:"key"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

// listExisting maps key signature -> index for coll.
func listExisting(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	existing := map[string]existingIndex{}
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing, cur.Err()
}

// ensureIndexSet creates each desired index unless one with the same key
// pattern already exists (under any name). Existing indexes are never dropped.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, want []mongo.IndexModel, logger *zap.Logger) error {
	existing, err := listExisting(ctx, coll)
	if err != nil {
		// a missing collection lists as empty on modern servers; anything else is real
		return fmt.Errorf("list indexes: %w", err)
	}

	var errs []string
	for _, m := range want {
		sig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[sig]; ok {
			logger.Info("reusing existing index",
				zap.String("collection", coll.Name()),
				zap.String("name", ex.Name),
				zap.String("keys", sig))
			continue
		}

		name, err := coll.Indexes().CreateOne(ctx, m)
		if err != nil {
			logger.Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("keys", sig),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), sig, err))
			continue
		}
		logger.Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig),
			zap.Duration("took", time.Since(start)))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ensureGames(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection(models.GamesCollection), []mongo.IndexModel{
		// genero filter
		{
			Keys:    bson.D{{Key: "genero_id", Value: 1}},
			Options: options.Index().SetName("idx_videojuegos_genero"),
		},
		// plataformas filter (multikey)
		{
			Keys:    bson.D{{Key: "plataformas", Value: 1}},
			Options: options.Index().SetName("idx_videojuegos_plataformas"),
		},
	}, logger)
}

// ensureNameLookup backs the exact nombre -> _id resolution. Not unique:
// uniqueness of names is a convention the catalog does not enforce.
func ensureNameLookup(ctx context.Context, coll *mongo.Collection, logger *zap.Logger) error {
	return ensureIndexSet(ctx, coll, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "nombre", Value: 1}},
			Options: options.Index().SetName("idx_" + coll.Name() + "_nombre"),
		},
	}, logger)
}

package testutil

import (
	"context"
	"testing"

	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for seeding catalog data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateReference inserts a {_id, nombre} document into collection.
func (f *Fixtures) CreateReference(ctx context.Context, collection, name string) models.Reference {
	f.t.Helper()

	ref := models.Reference{ID: primitive.NewObjectID(), Name: name}
	if _, err := f.db.Collection(collection).InsertOne(ctx, ref); err != nil {
		f.t.Fatalf("failed to create %s %q: %v", collection, name, err)
	}
	return ref
}

func (f *Fixtures) CreateGenre(ctx context.Context, name string) models.Reference {
	f.t.Helper()
	return f.CreateReference(ctx, models.GenresCollection, name)
}

func (f *Fixtures) CreatePlatform(ctx context.Context, name string) models.Reference {
	f.t.Helper()
	return f.CreateReference(ctx, models.PlatformsCollection, name)
}

func (f *Fixtures) CreateDeveloper(ctx context.Context, name string) models.Reference {
	f.t.Helper()
	return f.CreateReference(ctx, models.DevelopersCollection, name)
}

// CreateGame inserts g, assigning an ID if it has none.
func (f *Fixtures) CreateGame(ctx context.Context, g models.Game) models.Game {
	f.t.Helper()

	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	if _, err := f.db.Collection(models.GamesCollection).InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create game %q: %v", g.Title, err)
	}
	return g
}

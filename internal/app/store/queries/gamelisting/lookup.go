// Package gamelisting turns human-readable listing criteria into a game
// filter, runs it, and denormalizes the matching games' weak references
// into display names.
package gamelisting

import (
	"context"

	gamestore "github.com/dalemusser/gamecatalog/internal/app/store/games"
	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReferenceLookup resolves names and ids within one reference collection.
// *referencestore.Store implements it.
type ReferenceLookup interface {
	IDByName(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	NameByID(ctx context.Context, id primitive.ObjectID) (models.NameRef, bool, error)
	NamesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Reference, error)
}

// GameFinder runs a filter against the games collection.
// *gamestore.Store implements it.
type GameFinder interface {
	Find(ctx context.Context, f gamestore.Filter) ([]models.Game, error)
}

// Sources bundles the collections a listing reads from.
type Sources struct {
	Games      GameFinder
	Genres     ReferenceLookup
	Platforms  ReferenceLookup
	Developers ReferenceLookup
}

// internal/app/store/games/gamestore.go
package gamestore

import (
	"context"

	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(models.GamesCollection)}
}

// Find returns every game matching f in natural order. No limit is applied.
// When nothing matches the result is an empty, non-nil slice.
func (s *Store) Find(ctx context.Context, f Filter) ([]models.Game, error) {
	cur, err := s.c.Find(ctx, f.BSON())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	games := []models.Game{}
	if err := cur.All(ctx, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// internal/app/store/references/referencestore.go
package referencestore

import (
	"context"
	"errors"

	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads one reference collection (generos, plataformas or desarrolladores).
type Store struct {
	c *mongo.Collection
}

// New returns a Store over the named collection.
func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

func NewGenres(db *mongo.Database) *Store     { return New(db, models.GenresCollection) }
func NewPlatforms(db *mongo.Database) *Store  { return New(db, models.PlatformsCollection) }
func NewDevelopers(db *mongo.Database) *Store { return New(db, models.DevelopersCollection) }

// Name returns the collection this store reads.
func (s *Store) Name() string {
	return s.c.Name()
}

var nameOnly = bson.M{"nombre": 1}

// IDByName returns the _id of the document whose nombre equals name exactly.
// A miss is reported with found=false and a nil error.
func (s *Store) IDByName(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	var doc struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := s.c.FindOne(ctx, bson.M{"nombre": name}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, false, nil
	}
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	return doc.ID, true, nil
}

// NameByID loads only the nombre field of the document with the given id.
func (s *Store) NameByID(ctx context.Context, id primitive.ObjectID) (models.NameRef, bool, error) {
	var ref models.NameRef
	opts := options.FindOne().SetProjection(nameOnly)
	err := s.c.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&ref)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NameRef{}, false, nil
	}
	if err != nil {
		return models.NameRef{}, false, err
	}
	return ref, true, nil
}

// NamesByIDs resolves a set of ids in a single $in query. Ids with no
// matching document are absent from the result; order is the storage order.
func (s *Store) NamesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Reference, error) {
	if len(ids) == 0 {
		return []models.Reference{}, nil
	}
	opts := options.Find().SetProjection(nameOnly)
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	refs := []models.Reference{}
	if err := cur.All(ctx, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// All returns every document in the collection with whatever fields it has.
// An empty collection yields an empty, non-nil slice.
func (s *Store) All(ctx context.Context) ([]bson.M, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

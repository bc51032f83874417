// internal/domain/models/game.go
package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Game is a document in the videojuegos collection.
//
// Genre, developer and platform links are weak references: bare ObjectIDs
// that may point at documents which no longer exist. Fields not modeled
// here are kept in Extra and passed through to the API unchanged.
type Game struct {
	ID          primitive.ObjectID   `bson:"_id"`
	Title       string               `bson:"titulo"`
	ReleaseYear *int                 `bson:"anio_lanzamiento,omitempty"`
	MinAge      *int                 `bson:"edad_minima,omitempty"`
	Available   bool                 `bson:"disponible"`
	GenreID     *primitive.ObjectID  `bson:"genero_id,omitempty"`
	DeveloperID *primitive.ObjectID  `bson:"desarrollador_id,omitempty"`
	PlatformIDs []primitive.ObjectID `bson:"plataformas,omitempty"`

	Extra bson.M `bson:",inline"`
}

// GameView is the denormalized form of a Game returned by the API.
//
// Genre and Developer are nil when the reference is missing or dangling.
// Platforms is nil only when the stored game has no plataformas field; a
// stored list whose ids all dangle becomes an empty list.
type GameView struct {
	ID          primitive.ObjectID
	Title       string
	ReleaseYear *int
	MinAge      *int
	Available   bool
	GenreID     *primitive.ObjectID
	DeveloperID *primitive.ObjectID
	Genre       *NameRef
	Developer   *NameRef
	Platforms   []NameRef
	Extra       bson.M
}

// NewGameView copies the stored fields of g. Relations are left unresolved.
func NewGameView(g Game) GameView {
	v := GameView{
		ID:          g.ID,
		Title:       g.Title,
		ReleaseYear: g.ReleaseYear,
		MinAge:      g.MinAge,
		Available:   g.Available,
		GenreID:     g.GenreID,
		DeveloperID: g.DeveloperID,
		Extra:       g.Extra,
	}
	if g.PlatformIDs != nil {
		v.Platforms = []NameRef{}
	}
	return v
}

// MarshalJSON writes the stored document with its references resolved:
// unmodeled fields first, then the known fields over them.
func (v GameView) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(v.Extra)+10)
	for k, x := range v.Extra {
		doc[k] = x
	}

	doc["_id"] = v.ID
	doc["titulo"] = v.Title
	doc["disponible"] = v.Available
	if v.ReleaseYear != nil {
		doc["anio_lanzamiento"] = *v.ReleaseYear
	}
	if v.MinAge != nil {
		doc["edad_minima"] = *v.MinAge
	}
	if v.GenreID != nil {
		doc["genero_id"] = *v.GenreID
	}
	if v.DeveloperID != nil {
		doc["desarrollador_id"] = *v.DeveloperID
	}
	if v.Genre != nil {
		doc["genero"] = v.Genre
	}
	if v.Developer != nil {
		doc["desarrollador"] = v.Developer
	}
	if v.Platforms != nil {
		doc["plataformas"] = v.Platforms
	}
	return json.Marshal(doc)
}

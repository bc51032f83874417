// internal/domain/models/reference.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Collection names for the catalog.
const (
	GamesCollection      = "videojuegos"
	GenresCollection     = "generos"
	PlatformsCollection  = "plataformas"
	DevelopersCollection = "desarrolladores"
)

// Reference is a genre, platform or developer document. All three share
// the same shape: an ID and a display name.
type Reference struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"nombre" json:"nombre"`
}

// NameRef is the display-only projection of a Reference.
type NameRef struct {
	Name string `bson:"nombre" json:"nombre"`
}

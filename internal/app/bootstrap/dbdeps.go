// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app. The client is
// created once at startup and shared by every request.
type DBDeps struct {
	CatalogMongoClient   *mongo.Client
	CatalogMongoDatabase *mongo.Database
}

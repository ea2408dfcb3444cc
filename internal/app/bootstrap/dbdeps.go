// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app. A single
// long-lived client is established at startup and shared by all handlers;
// the driver is safe for concurrent use.
type DBDeps struct {
	CampHubMongoClient   *mongo.Client
	CampHubMongoDatabase *mongo.Database
}

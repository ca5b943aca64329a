package schema

import (
	"context"
	"fmt"

	"github.com/ribgsilva/noteful-api/persistence/v1/lookupdb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// uniqueName lists the collections whose name field must be unique.
var uniqueName = []string{lookupdb.Folders, lookupdb.Tags}

// Create builds the indexes the stores rely on. It is safe to run more than once.
func Create(ctx context.Context, db *mongo.Database) error {
	for _, coll := range uniqueName {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("name_unique"),
		})
		if err != nil {
			return fmt.Errorf("create schema: %s: %w", coll, err)
		}
	}

	return nil
}

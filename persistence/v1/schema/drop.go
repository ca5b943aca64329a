package schema

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Drop removes the whole database, data and indexes.
func Drop(ctx context.Context, db *mongo.Database) error {
	if err := db.Drop(ctx); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}

	return nil
}

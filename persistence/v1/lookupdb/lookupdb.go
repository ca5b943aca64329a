// Package lookupdb stores unique-name lookup items (folders, tags) in MongoDB.
// The unique index on name is created by the schema package.
package lookupdb

import (
	"fmt"
	"time"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ lookup.Store = Store{}

type Store struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewStore binds a Store to the named collection of db.
func NewStore(db *mongo.Database, collection string, timeout time.Duration) Store {
	return Store{coll: db.Collection(collection), timeout: timeout}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, lookup.ErrNotFound
	}
	return oid, nil
}

// writeErr translates a unique index violation into lookup.ErrDuplicateName.
func (s Store) writeErr(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to %s %s: %w", op, s.coll.Name(), lookup.ErrDuplicateName)
	}
	return fmt.Errorf("failed to %s %s: %w", op, s.coll.Name(), err)
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

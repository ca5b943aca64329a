// Package notedb stores notes in a MongoDB collection.
package notedb

import (
	"regexp"
	"time"

	"github.com/ribgsilva/noteful-api/business/v1/note"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ note.Store = Store{}

type Store struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewStore binds a Store to the notes collection of db. Every operation is
// bounded by timeout.
func NewStore(db *mongo.Database, timeout time.Duration) Store {
	return Store{coll: db.Collection(Collection), timeout: timeout}
}

func filter(f note.Filter) bson.M {
	if f.SearchTerm != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.SearchTerm), Options: "i"}
		return bson.M{"$or": bson.A{
			bson.M{"title": re},
			bson.M{"content": re},
		}}
	}

	m := bson.M{}
	if f.Title != "" {
		m["title"] = f.Title
	}
	if f.Content != "" {
		m["content"] = f.Content
	}
	return m
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, note.ErrNotFound
	}
	return oid, nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

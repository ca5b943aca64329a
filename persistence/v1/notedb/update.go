package notedb

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/noteful-api/business/v1/note"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByIDAndUpdate runs as a pipeline update so updatedAt can be pushed past its
// stored value when two writes land in the same millisecond.
func (s Store) FindByIDAndUpdate(ctx context.Context, id string, u note.UpdateNote) (note.Note, error) {
	oid, err := objectID(id)
	if err != nil {
		return note.Note{}, err
	}

	set := bson.D{{Key: "updatedAt", Value: bson.D{{Key: "$max", Value: bson.A{
		now(),
		bson.D{{Key: "$add", Value: bson.A{"$updatedAt", 1}}},
	}}}}}
	if u.Title != nil {
		set = append(set, bson.E{Key: "title", Value: bson.D{{Key: "$literal", Value: *u.Title}}})
	}
	if u.Content != nil {
		set = append(set, bson.E{Key: "content", Value: bson.D{{Key: "$literal", Value: *u.Content}}})
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	var doc document
	err = s.coll.FindOneAndUpdate(dbCtx,
		bson.M{"_id": oid},
		mongo.Pipeline{{{Key: "$set", Value: set}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return note.Note{}, note.ErrNotFound
	case err != nil:
		return note.Note{}, fmt.Errorf("failed to update note: %w", err)
	}
	return doc.toNote(), nil
}

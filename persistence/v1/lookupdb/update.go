package lookupdb

import (
	"context"
	"errors"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s Store) FindByIDAndUpdate(ctx context.Context, id string, u lookup.UpdateItem) (lookup.Item, error) {
	oid, err := objectID(id)
	if err != nil {
		return lookup.Item{}, err
	}

	// updatedAt never moves backwards or stays put, even within one millisecond.
	set := bson.D{
		{Key: "name", Value: bson.D{{Key: "$literal", Value: u.Name}}},
		{Key: "updatedAt", Value: bson.D{{Key: "$max", Value: bson.A{
			now(),
			bson.D{{Key: "$add", Value: bson.A{"$updatedAt", 1}}},
		}}}},
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
		return lookup.Item{}, lookup.ErrNotFound
	case err != nil:
		return lookup.Item{}, s.writeErr("update", err)
	}
	return doc.toItem(), nil
}

package lookupdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s Store) Find(ctx context.Context) ([]lookup.Item, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	cur, err := s.coll.Find(dbCtx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.coll.Name(), err)
	}
	var docs []document
	if err := cur.All(dbCtx, &docs); err != nil {
		return nil, fmt.Errorf("error parsing db data: %w", err)
	}
	return toItems(docs), nil
}

func (s Store) FindByID(ctx context.Context, id string) (lookup.Item, error) {
	oid, err := objectID(id)
	if err != nil {
		return lookup.Item{}, err
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	var doc document
	err = s.coll.FindOne(dbCtx, bson.M{"_id": oid}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return lookup.Item{}, lookup.ErrNotFound
	case err != nil:
		return lookup.Item{}, fmt.Errorf("failed to find in %s: %w", s.coll.Name(), err)
	}
	return doc.toItem(), nil
}

func (s Store) Count(ctx context.Context) (int64, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	count, err := s.coll.CountDocuments(dbCtx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.coll.Name(), err)
	}
	return count, nil
}

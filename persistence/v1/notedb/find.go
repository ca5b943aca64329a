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

func (s Store) Find(ctx context.Context, f note.Filter) ([]note.Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	cur, err := s.coll.Find(dbCtx, filter(f), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	var docs []document
	if err := cur.All(dbCtx, &docs); err != nil {
		return nil, fmt.Errorf("error parsing db data: %w", err)
	}
	return toNotes(docs), nil
}

func (s Store) FindByID(ctx context.Context, id string) (note.Note, error) {
	oid, err := objectID(id)
	if err != nil {
		return note.Note{}, err
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	var doc document
	err = s.coll.FindOne(dbCtx, bson.M{"_id": oid}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return note.Note{}, note.ErrNotFound
	case err != nil:
		return note.Note{}, fmt.Errorf("failed to find note: %w", err)
	}
	return doc.toNote(), nil
}

func (s Store) Count(ctx context.Context, f note.Filter) (int64, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	count, err := s.coll.CountDocuments(dbCtx, filter(f))
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}

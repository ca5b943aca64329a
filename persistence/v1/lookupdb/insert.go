package lookupdb

import (
	"context"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s Store) Create(ctx context.Context, newI lookup.NewItem) (lookup.Item, error) {
	n := now()
	doc := document{
		ID:        primitive.NewObjectID(),
		Name:      newI.Name,
		CreatedAt: n,
		UpdatedAt: n,
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	if _, err := s.coll.InsertOne(dbCtx, doc); err != nil {
		return lookup.Item{}, s.writeErr("insert into", err)
	}
	return doc.toItem(), nil
}

// InsertMany stops at the first failing document.
func (s Store) InsertMany(ctx context.Context, batch []lookup.NewItem) ([]lookup.Item, error) {
	if len(batch) == 0 {
		return []lookup.Item{}, nil
	}

	n := now()
	docs := make([]document, 0, len(batch))
	insert := make([]interface{}, 0, len(batch))
	for _, newI := range batch {
		doc := document{
			ID:        primitive.NewObjectID(),
			Name:      newI.Name,
			CreatedAt: n,
			UpdatedAt: n,
		}
		docs = append(docs, doc)
		insert = append(insert, doc)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	if _, err := s.coll.InsertMany(dbCtx, insert, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, s.writeErr("insert into", err)
	}
	return toItems(docs), nil
}

package notedb

import (
	"context"
	"fmt"

	"github.com/ribgsilva/noteful-api/business/v1/note"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s Store) Create(ctx context.Context, newN note.NewNote) (note.Note, error) {
	n := now()
	doc := document{
		ID:        primitive.NewObjectID(),
		Title:     newN.Title,
		Content:   newN.Content,
		CreatedAt: n,
		UpdatedAt: n,
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	if _, err := s.coll.InsertOne(dbCtx, doc); err != nil {
		return note.Note{}, fmt.Errorf("failed to insert note: %w", err)
	}
	return doc.toNote(), nil
}

func (s Store) InsertMany(ctx context.Context, batch []note.NewNote) ([]note.Note, error) {
	if len(batch) == 0 {
		return []note.Note{}, nil
	}

	n := now()
	docs := make([]document, 0, len(batch))
	insert := make([]interface{}, 0, len(batch))
	for _, newN := range batch {
		doc := document{
			ID:        primitive.NewObjectID(),
			Title:     newN.Title,
			Content:   newN.Content,
			CreatedAt: n,
			UpdatedAt: n,
		}
		docs = append(docs, doc)
		insert = append(insert, doc)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	if _, err := s.coll.InsertMany(dbCtx, insert); err != nil {
		return nil, fmt.Errorf("failed to insert notes: %w", err)
	}
	return toNotes(docs), nil
}

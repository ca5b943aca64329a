// Package note holds the note resource: its records, the store contract and the
// operations the transports call.
package note

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store when no note has the given id.
var ErrNotFound = errors.New("note not found")

// Store is the persistence contract for notes. Implementations maintain
// createdAt/updatedAt on every write.
type Store interface {
	Find(ctx context.Context, f Filter) ([]Note, error)
	FindByID(ctx context.Context, id string) (Note, error)
	Create(ctx context.Context, n NewNote) (Note, error)
	FindByIDAndUpdate(ctx context.Context, id string, u UpdateNote) (Note, error)
	FindByIDAndRemove(ctx context.Context, id string) error
	InsertMany(ctx context.Context, ns []NewNote) ([]Note, error)
	Count(ctx context.Context, f Filter) (int64, error)
}

// Core runs note operations against a Store.
type Core struct {
	store Store
}

func NewCore(store Store) Core {
	return Core{store: store}
}

// Package lookup holds the resources that are plain unique-name lists: folders and tags.
package lookup

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a Store when no item has the given id.
	ErrNotFound = errors.New("item not found")
	// ErrDuplicateName is returned by a Store when a write would repeat an existing name.
	ErrDuplicateName = errors.New("duplicate name")
)

// Store is the persistence contract for one lookup collection. Find returns
// items ordered by name descending. Names are unique within the collection.
type Store interface {
	Find(ctx context.Context) ([]Item, error)
	FindByID(ctx context.Context, id string) (Item, error)
	Create(ctx context.Context, n NewItem) (Item, error)
	FindByIDAndUpdate(ctx context.Context, id string, u UpdateItem) (Item, error)
	FindByIDAndRemove(ctx context.Context, id string) error
	InsertMany(ctx context.Context, ns []NewItem) ([]Item, error)
	Count(ctx context.Context) (int64, error)
}

// Core runs the operations of one lookup resource, e.g. "folder".
type Core struct {
	resource string
	store    Store
}

func NewCore(resource string, store Store) Core {
	return Core{resource: resource, store: store}
}

// Resource is the singular name used in messages.
func (c Core) Resource() string {
	return c.resource
}

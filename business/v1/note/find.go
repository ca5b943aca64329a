package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/validate"
)

// List returns every note matching f, never nil.
func (c Core) List(ctx context.Context, f Filter) ([]Note, error) {
	notes, err := c.store.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

func (c Core) Find(ctx context.Context, id string) (Note, error) {
	if !validate.IsValidID(id) {
		return Note{}, errs.Validation(validate.MsgInvalidID)
	}

	n, err := c.store.FindByID(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		return Note{}, errs.NotFound("note not found")
	case err != nil:
		return Note{}, fmt.Errorf("find note %s: %w", id, err)
	}
	return n, nil
}

func (c Core) Count(ctx context.Context, f Filter) (int64, error) {
	count, err := c.store.Count(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}

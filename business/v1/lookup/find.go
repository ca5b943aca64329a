package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/validate"
)

func (c Core) List(ctx context.Context) ([]Item, error) {
	items, err := c.store.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", c.resource, err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (c Core) Find(ctx context.Context, id string) (Item, error) {
	if !validate.IsValidID(id) {
		return Item{}, errs.Validation(validate.MsgInvalidID)
	}

	item, err := c.store.FindByID(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		return Item{}, errs.NotFound(c.resource + " not found")
	case err != nil:
		return Item{}, fmt.Errorf("find %s %s: %w", c.resource, id, err)
	}
	return item, nil
}

func (c Core) Count(ctx context.Context) (int64, error) {
	count, err := c.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %ss: %w", c.resource, err)
	}
	return count, nil
}

package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/validate"
)

func (c Core) Create(ctx context.Context, newI NewItem) (Item, error) {
	if strings.TrimSpace(newI.Name) == "" {
		return Item{}, errs.Validation(validate.MissingField("name"))
	}

	item, err := c.store.Create(ctx, newI)
	switch {
	case errors.Is(err, ErrDuplicateName):
		return Item{}, c.duplicate()
	case err != nil:
		return Item{}, fmt.Errorf("create %s: %w", c.resource, err)
	}
	return item, nil
}

// Seed inserts a batch of items in one store call.
func (c Core) Seed(ctx context.Context, batch []NewItem) ([]Item, error) {
	for i, n := range batch {
		if strings.TrimSpace(n.Name) == "" {
			return nil, errs.Validationf("%s %d: %s", c.resource, i, validate.MissingField("name"))
		}
	}

	items, err := c.store.InsertMany(ctx, batch)
	switch {
	case errors.Is(err, ErrDuplicateName):
		return nil, c.duplicate()
	case err != nil:
		return nil, fmt.Errorf("insert %ss: %w", c.resource, err)
	}
	return items, nil
}

func (c Core) duplicate() error {
	return errs.Validationf("The %s name already exists", c.resource)
}

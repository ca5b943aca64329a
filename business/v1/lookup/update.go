package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/validate"
)

func (c Core) Update(ctx context.Context, id string, u UpdateItem) (Item, error) {
	if !validate.IsValidID(id) {
		return Item{}, errs.Validation(validate.MsgInvalidID)
	}
	if strings.TrimSpace(u.Name) == "" {
		return Item{}, errs.Validation(validate.MissingField("name"))
	}

	item, err := c.store.FindByIDAndUpdate(ctx, id, u)
	switch {
	case errors.Is(err, ErrNotFound):
		return Item{}, errs.NotFound(c.resource + " not found")
	case errors.Is(err, ErrDuplicateName):
		return Item{}, c.duplicate()
	case err != nil:
		return Item{}, fmt.Errorf("update %s %s: %w", c.resource, id, err)
	}
	return item, nil
}

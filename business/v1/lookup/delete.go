package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/validate"
)

// Delete removes an item. Deleting a missing item is not an error.
func (c Core) Delete(ctx context.Context, id string) error {
	if !validate.IsValidID(id) {
		return errs.Validation(validate.MsgInvalidID)
	}

	if err := c.store.FindByIDAndRemove(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete %s %s: %w", c.resource, id, err)
	}
	return nil
}

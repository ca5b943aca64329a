package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/validate"
)

// Delete removes a note. Deleting a missing note is not an error.
func (c Core) Delete(ctx context.Context, id string) error {
	if !validate.IsValidID(id) {
		return errs.Validation(validate.MsgInvalidID)
	}

	if err := c.store.FindByIDAndRemove(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}

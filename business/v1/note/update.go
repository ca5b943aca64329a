package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/validate"
)

// MsgIDMismatch is returned when the body of an update names another note.
const MsgIDMismatch = "Request path `id` and request body `id` must match"

// Update applies the non-nil fields of u to the note with the given id.
func (c Core) Update(ctx context.Context, id string, u UpdateNote) (Note, error) {
	if !validate.IsValidID(id) {
		return Note{}, errs.Validation(validate.MsgInvalidID)
	}
	// hex ids compare case-insensitively, the store accepts both cases
	if !strings.EqualFold(u.ID, id) {
		return Note{}, errs.Validation(MsgIDMismatch)
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return Note{}, errs.Validation(validate.MissingField("title"))
	}

	n, err := c.store.FindByIDAndUpdate(ctx, id, u)
	switch {
	case errors.Is(err, ErrNotFound):
		return Note{}, errs.NotFound("note not found")
	case err != nil:
		return Note{}, fmt.Errorf("update note %s: %w", id, err)
	}
	return n, nil
}

package note

import (
	"context"
	"fmt"
	"strings"

	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/validate"
)

func (c Core) Create(ctx context.Context, newN NewNote) (Note, error) {
	if strings.TrimSpace(newN.Title) == "" {
		return Note{}, errs.Validation(validate.MissingField("title"))
	}

	n, err := c.store.Create(ctx, newN)
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

// Seed inserts a batch of notes in one store call.
func (c Core) Seed(ctx context.Context, batch []NewNote) ([]Note, error) {
	for i, n := range batch {
		if strings.TrimSpace(n.Title) == "" {
			return nil, errs.Validationf("note %d: %s", i, validate.MissingField("title"))
		}
	}

	notes, err := c.store.InsertMany(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("insert notes: %w", err)
	}
	return notes, nil
}

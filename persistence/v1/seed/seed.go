// Package seed holds the fixture data used to populate an empty database.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/business/v1/note"
)

//go:embed data.json
var raw []byte

type Data struct {
	Folders []lookup.NewItem `json:"folders"`
	Tags    []lookup.NewItem `json:"tags"`
	Notes   []note.NewNote   `json:"notes"`
}

// Counts is how many records of each resource were inserted.
type Counts struct {
	Folders int
	Tags    int
	Notes   int
}

// Load parses the bundled fixtures.
func Load() (Data, error) {
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("parse seed data: %w", err)
	}
	return d, nil
}

// Run inserts d through the business cores, one insertMany per resource.
func Run(ctx context.Context, d Data, notes note.Core, folders, tags lookup.Core) (Counts, error) {
	var c Counts

	f, err := folders.Seed(ctx, d.Folders)
	if err != nil {
		return c, err
	}
	c.Folders = len(f)

	t, err := tags.Seed(ctx, d.Tags)
	if err != nil {
		return c, err
	}
	c.Tags = len(t)

	n, err := notes.Seed(ctx, d.Notes)
	if err != nil {
		return c, err
	}
	c.Notes = len(n)

	return c, nil
}

package seed

import (
	"context"
	"testing"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/persistence/v1/memory"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, d.Folders)
	require.NotEmpty(t, d.Tags)
	require.NotEmpty(t, d.Notes)

	notes := note.NewCore(memory.NewNoteStore())
	folders := lookup.NewCore("folder", memory.NewLookupStore())
	tags := lookup.NewCore("tag", memory.NewLookupStore())

	counts, err := Run(context.Background(), d, notes, folders, tags)
	require.NoError(t, err)
	require.Equal(t, Counts{Folders: len(d.Folders), Tags: len(d.Tags), Notes: len(d.Notes)}, counts)

	// a second run repeats every name
	_, err = Run(context.Background(), d, notes, folders, tags)
	require.EqualError(t, err, "validation: The folder name already exists")
}

package note_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/persistence/v1/memory"
	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/stretchr/testify/require"
)

// failingStore fails every operation with err.
type failingStore struct {
	note.Store
	err error
}

func (s failingStore) FindByIDAndRemove(context.Context, string) error { return s.err }

func (s failingStore) Find(context.Context, note.Filter) ([]note.Note, error) { return nil, s.err }

func TestCore(t *testing.T) {
	ctx := context.Background()
	core := note.NewCore(memory.NewNoteStore())

	_, err := core.Create(ctx, note.NewNote{Content: "no title"})
	require.Equal(t, errs.KindValidation, errs.KindOf(err))
	require.EqualError(t, err, "validation: Missing `title` in request body")

	created, err := core.Create(ctx, note.NewNote{Title: "Cats"})
	require.NoError(t, err)

	_, err = core.Find(ctx, "NOT-A-VALID-ID")
	require.EqualError(t, err, "validation: The `id` is not valid")

	_, err = core.Find(ctx, "5b0c6f5e7c9a1e3f2d4b6a8c")
	require.Equal(t, errs.KindNotFound, errs.KindOf(err))

	title := "Dogs"
	_, err = core.Update(ctx, created.ID, note.UpdateNote{ID: "5b0c6f5e7c9a1e3f2d4b6a8c", Title: &title})
	require.EqualError(t, err, "validation: "+note.MsgIDMismatch)

	empty := ""
	_, err = core.Update(ctx, created.ID, note.UpdateNote{ID: created.ID, Title: &empty})
	require.Equal(t, errs.KindValidation, errs.KindOf(err))

	_, err = core.Update(ctx, "5b0c6f5e7c9a1e3f2d4b6a8c", note.UpdateNote{ID: "5b0c6f5e7c9a1e3f2d4b6a8c", Title: &title})
	require.Equal(t, errs.KindNotFound, errs.KindOf(err))

	updated, err := core.Update(ctx, created.ID, note.UpdateNote{ID: created.ID, Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Dogs", updated.Title)

	// the same id in another case names the same note
	birds := "Birds"
	updated, err = core.Update(ctx, strings.ToUpper(created.ID), note.UpdateNote{ID: created.ID, Title: &birds})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Birds", updated.Title)

	require.NoError(t, core.Delete(ctx, created.ID))
	require.NoError(t, core.Delete(ctx, created.ID))
	require.Equal(t, errs.KindValidation, errs.KindOf(core.Delete(ctx, "nope")))

	list, err := core.List(ctx, note.Filter{})
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestCoreStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	core := note.NewCore(failingStore{err: boom})

	_, err := core.List(context.Background(), note.Filter{})
	require.ErrorIs(t, err, boom)
	require.Zero(t, errs.KindOf(err))

	err = core.Delete(context.Background(), "5b0c6f5e7c9a1e3f2d4b6a8c")
	require.ErrorIs(t, err, boom)
}

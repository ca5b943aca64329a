package notedb_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/persistence/v1/notedb"
	"github.com/ribgsilva/noteful-api/persistence/v1/schema"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_CONNECTION_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_CONNECTION_URL not set")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	require.NoError(t, err)
	db := client.Database("noteful-notedb-test")
	require.NoError(t, schema.Drop(ctx, db))

	t.Cleanup(func() {
		_ = schema.Drop(ctx, db)
		_ = client.Disconnect(ctx)
	})
	return db
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := notedb.NewStore(testDB(t), 5*time.Second)

	seeded, err := s.InsertMany(ctx, []note.NewNote{
		{Title: "Cats (and more)", Content: "about felines"},
		{Title: "Dogs", Content: "nothing about CATS here"},
		{Title: "Birds", Content: "tweet"},
	})
	require.NoError(t, err)

	found, err := s.Find(ctx, note.Filter{SearchTerm: "cats"})
	require.NoError(t, err)
	require.Len(t, found, 2)

	// regex metacharacters match literally
	found, err = s.Find(ctx, note.Filter{SearchTerm: "(and"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, seeded[0].ID, found[0].ID)

	found, err = s.Find(ctx, note.Filter{Title: "Birds"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	created, err := s.Create(ctx, note.NewNote{Title: "Fish"})
	require.NoError(t, err)
	got, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	content := "blub"
	updated, err := s.FindByIDAndUpdate(ctx, created.ID, note.UpdateNote{ID: created.ID, Content: &content})
	require.NoError(t, err)
	require.Equal(t, "Fish", updated.Title)
	require.Equal(t, "blub", updated.Content)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	require.NoError(t, s.FindByIDAndRemove(ctx, created.ID))
	_, err = s.FindByID(ctx, created.ID)
	require.ErrorIs(t, err, note.ErrNotFound)

	count, err := s.Count(ctx, note.Filter{})
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

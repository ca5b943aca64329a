package notedb

import (
	"context"
	"fmt"

	"github.com/ribgsilva/noteful-api/business/v1/note"
	"go.mongodb.org/mongo-driver/bson"
)

func (s Store) FindByIDAndRemove(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	res, err := s.coll.DeleteOne(dbCtx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return note.ErrNotFound
	}
	return nil
}

package lookupdb

import (
	"context"
	"fmt"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
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
		return fmt.Errorf("failed to delete from %s: %w", s.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return lookup.ErrNotFound
	}
	return nil
}

package lookupdb

import (
	"time"

	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names of the lookup resources.
const (
	Folders = "folders"
	Tags    = "tags"
)

type document struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d document) toItem() lookup.Item {
	return lookup.Item{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func toItems(docs []document) []lookup.Item {
	items := make([]lookup.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toItem())
	}
	return items
}

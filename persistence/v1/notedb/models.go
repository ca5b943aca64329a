package notedb

import (
	"time"

	"github.com/ribgsilva/noteful-api/business/v1/note"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the name of the notes collection.
const Collection = "notes"

type document struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d document) toNote() note.Note {
	return note.Note{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func toNotes(docs []document) []note.Note {
	notes := make([]note.Note, 0, len(docs))
	for _, d := range docs {
		notes = append(notes, d.toNote())
	}
	return notes
}

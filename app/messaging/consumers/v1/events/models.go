package events

import "encoding/json"

// Event types accepted by the consumer, "<resource>.<action>".
const (
	NoteCreate   = "note.create"
	NoteDelete   = "note.delete"
	FolderCreate = "folder.create"
	FolderDelete = "folder.delete"
	TagCreate    = "tag.create"
	TagDelete    = "tag.delete"
)

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type ref struct {
	ID string `json:"id"`
}

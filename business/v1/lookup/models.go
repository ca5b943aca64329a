package lookup

import "time"

// Item is a named entry of a flat lookup list, such as a folder or a tag.
type Item struct {
	ID        string    `json:"id" example:"5b0c6f5e7c9a1e3f2d4b6a8c"`
	Name      string    `json:"name" example:"Archive"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
}

type NewItem struct {
	Name string `json:"name" example:"Archive"`
}

type UpdateItem struct {
	Name string `json:"name" example:"Archive"`
}

package note

import "time"

type Note struct {
	ID        string    `json:"id" example:"5b0c6f5e7c9a1e3f2d4b6a8c"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note content"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
}

type NewNote struct {
	Title   string `json:"title" example:"my note"`
	Content string `json:"content" example:"my note content"`
}

// UpdateNote carries a partial update, nil fields are left untouched.
type UpdateNote struct {
	ID      string  `json:"id" example:"5b0c6f5e7c9a1e3f2d4b6a8c"`
	Title   *string `json:"title,omitempty" example:"my note"`
	Content *string `json:"content,omitempty" example:"my note content"`
}

// Filter selects notes. SearchTerm wins over the exact-match fields.
type Filter struct {
	SearchTerm string
	Title      string
	Content    string
}

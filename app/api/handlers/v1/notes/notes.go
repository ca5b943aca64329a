package notes

import (
	"github.com/ribgsilva/noteful-api/business/v1/note"
)

// Handlers serves the /api/notes routes.
type Handlers struct {
	core note.Core
}

func New(core note.Core) Handlers {
	return Handlers{core: core}
}

// Package lookups serves the unique-name list resources. One Handlers value is
// mounted per resource, /api/folders and /api/tags.
package lookups

import (
	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/platform/validate"
)

type Handlers struct {
	core lookup.Core
}

func New(core lookup.Core) Handlers {
	return Handlers{core: core}
}

// name extracts the required name field, reporting whether it is usable.
func name(body map[string]any) (string, bool) {
	if _, ok := validate.RequireFields(body, "name"); !ok {
		return "", false
	}
	s, ok := body["name"].(string)
	return s, ok
}

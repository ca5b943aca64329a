// Package validate holds the request checks shared by every resource handler.
package validate

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MsgInvalidID is returned whenever a path id is not a well-formed identifier.
	MsgInvalidID = "The `id` is not valid"
)

// IsValidID reports whether id is a well-formed store identifier (24 hex characters).
func IsValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// RequireFields returns the first of names that is absent from body, null, or a blank string.
func RequireFields(body map[string]any, names ...string) (string, bool) {
	for _, name := range names {
		v, ok := body[name]
		if !ok || v == nil {
			return name, false
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			return name, false
		}
	}
	return "", true
}

// MissingField formats the message for a required field absent from a request body.
func MissingField(name string) string {
	return "Missing `" + name + "` in request body"
}

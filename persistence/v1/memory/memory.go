// Package memory implements the resource stores in process memory. It backs the
// test suites and the DATABASE_DRIVER=memory mode.
package memory

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newID mints ids in the same format as the document store.
func newID() string {
	return primitive.NewObjectID().Hex()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// touch returns a write time strictly after prev.
func touch(prev time.Time) time.Time {
	n := now()
	if !n.After(prev) {
		n = prev.Add(time.Millisecond)
	}
	return n
}

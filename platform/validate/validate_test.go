package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"5b0c6f5e7c9a1e3f2d4b6a8c", true},
		{"5B0C6F5E7C9A1E3F2D4B6A8C", true},
		{"NOT-A-VALID-ID", false},
		{"DOESNOTEXIST", false},
		{"", false},
		{"5b0c6f5e7c9a1e3f2d4b6a8", false},
		{"5b0c6f5e7c9a1e3f2d4b6a8z", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.valid, IsValidID(tt.id), tt.id)
	}
}

func TestRequireFields(t *testing.T) {
	missing, ok := RequireFields(map[string]any{"name": "cats"}, "name")
	require.True(t, ok)
	require.Empty(t, missing)

	missing, ok = RequireFields(map[string]any{}, "name")
	require.False(t, ok)
	require.Equal(t, "name", missing)

	missing, ok = RequireFields(map[string]any{"title": "a", "content": "  "}, "title", "content")
	require.False(t, ok)
	require.Equal(t, "content", missing)

	missing, ok = RequireFields(map[string]any{"name": nil}, "name")
	require.False(t, ok)
	require.Equal(t, "name", missing)

	require.Equal(t, "Missing `name` in request body", MissingField("name"))
}

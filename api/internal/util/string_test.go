package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", "SELECT 1;", "SELECT 1;"},
		{"plain fence", "```\nSELECT 1;\n```", "SELECT 1;"},
		{"sql tag", "```sql\nSELECT 1;\n```", "SELECT 1;"},
		{"postgresql tag", "```postgresql\nSELECT 1;\n```", "SELECT 1;"},
		{"uppercase tag", "```SQL\nSELECT 1;\n```", "SELECT 1;"},
		{"surrounding whitespace", "  ```sql\nSELECT 1;\n```  \n", "SELECT 1;"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestChunkText(t *testing.T) {
	require.Equal(t, []string{"abc"}, ChunkText("abc", 10))

	long := strings.Repeat("line one\n", 100)
	parts := ChunkText(long, 50)
	require.Greater(t, len(parts), 1)
	for _, p := range parts {
		require.LessOrEqual(t, len(p), 50)
	}
	// Cuts happen at newlines, so joining with "\n" restores the input.
	require.Equal(t, long, strings.Join(parts, "\n"))
}

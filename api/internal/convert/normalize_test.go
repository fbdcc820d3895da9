package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips export preamble",
			in: "USE [Northwind]\nGO\nSET ANSI_NULLS ON\nGO\n" +
				"CREATE PROCEDURE dbo.GetUsers\nAS\nBEGIN\n    SELECT 1\nEND\nGO",
			want: "CREATE PROCEDURE dbo.GetUsers\nAS\nBEGIN\n    SELECT 1\nEND",
		},
		{
			name: "no declaration yields empty",
			in:   "SELECT 1\nGO\n-- just a script",
			want: "",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "alter proc is a declaration",
			in:   "ALTER PROC [dbo].[Upd]\nAS SELECT 2",
			want: "ALTER PROC [dbo].[Upd]\nAS SELECT 2",
		},
		{
			name: "declaration match is case-insensitive and trimmed",
			in:   "  create Procedure Foo\nAS BEGIN END",
			want: "  create Procedure Foo\nAS BEGIN END",
		},
		{
			name: "go and blank lines dropped inside body only",
			in:   "CREATE PROC P\nAS\n\ngo\nBEGIN\n  GO \nEND",
			want: "CREATE PROC P\nAS\nBEGIN\nEND",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeKeepsRelativeOrder(t *testing.T) {
	in := "CREATE PROCEDURE P\nline a\nGO\nline b\n\nline c"
	out := Normalize(in)
	for _, line := range strings.Split(out, "\n") {
		s := strings.ToLower(strings.TrimSpace(line))
		require.NotEqual(t, "go", s)
		require.NotEqual(t, "", s)
	}
	require.Equal(t, "CREATE PROCEDURE P\nline a\nline b\nline c", out)
}

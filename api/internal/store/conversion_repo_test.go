package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashInput(t *testing.T) {
	a := HashInput("CREATE PROCEDURE dbo.Foo AS SELECT 1")
	b := HashInput("CREATE PROCEDURE dbo.Foo AS SELECT 1")
	c := HashInput("CREATE PROCEDURE dbo.Bar AS SELECT 2")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 64) // hex sha256
}

package share

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectionURL(t *testing.T) {
	t.Parallel()
	require.Equal(t, "https://giftwiz.ai/share/p1", CollectionURL("p1"))
}

func TestMessage(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Check out these gifts for my Parent!", Message("Parent"))
}

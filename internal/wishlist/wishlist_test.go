package wishlist

import (
	"testing"

	"freshmart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string) model.Product {
	return model.Product{ID: id, Name: "Product " + id, Price: 1.99}
}

func TestStore_AddAndRemove(t *testing.T) {
	s := NewStore(zerolog.Nop())

	assert.True(t, s.Add(product("1")))
	assert.True(t, s.Add(product("2")))
	// Duplicate add is a no-op.
	assert.False(t, s.Add(product("1")))

	assert.True(t, s.Contains("1"))
	assert.False(t, s.Contains("3"))

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].Product.ID)
	assert.Equal(t, "2", entries[1].Product.ID)
	assert.False(t, entries[0].AddedAt.IsZero())

	assert.True(t, s.Remove("1"))
	// Removing an absent product is a no-op.
	assert.False(t, s.Remove("1"))

	entries = s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "2", entries[0].Product.ID)
}

func TestStore_OrderPreserved(t *testing.T) {
	s := NewStore(zerolog.Nop())

	s.Add(product("3"))
	s.Add(product("1"))
	s.Add(product("2"))
	s.Remove("1")
	s.Add(product("1"))

	var ids []string
	for _, e := range s.Entries() {
		ids = append(ids, e.Product.ID)
	}
	assert.Equal(t, []string{"3", "2", "1"}, ids)
}

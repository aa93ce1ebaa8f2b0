package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalog_GetAll(t *testing.T) {
	ctx := context.Background()
	c := NewSeededCatalog()

	all, err := c.GetAll(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 12)
	assert.Equal(t, "Organic Bananas", all[0].Name)

	page, err := c.GetAll(ctx, 5, 10)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	empty, err := c.GetAll(ctx, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStaticCatalog_GetByID(t *testing.T) {
	ctx := context.Background()
	c := NewSeededCatalog()

	p, err := c.GetByID(ctx, "7")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Greek Yogurt", p.Name)
	require.NotNil(t, p.OriginalPrice)
	assert.InDelta(t, 7.99, *p.OriginalPrice, 1e-9)

	missing, err := c.GetByID(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStaticCatalog_GetByCategory(t *testing.T) {
	ctx := context.Background()
	c := NewSeededCatalog()

	produce, err := c.GetByCategory(ctx, "produce")
	require.NoError(t, err)
	require.Len(t, produce, 4)
	for _, p := range produce {
		assert.Equal(t, "produce", p.Category)
	}

	frozen, err := c.GetByCategory(ctx, "frozen")
	require.NoError(t, err)
	assert.Empty(t, frozen)
}

func TestStaticCatalog_Search(t *testing.T) {
	ctx := context.Background()
	c := NewSeededCatalog()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "matches name", query: "banana", wantIDs: []string{"1"}},
		{name: "case insensitive", query: "SALMON", wantIDs: []string{"9"}},
		{name: "matches description", query: "probiotics", wantIDs: []string{"7"}},
		{name: "matches tag", query: "gluten-free", wantIDs: []string{"10"}},
		{name: "no match", query: "chocolate", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Search(ctx, tt.query)
			require.NoError(t, err)

			var ids []string
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestStaticCatalog_Categories(t *testing.T) {
	c := NewSeededCatalog()

	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 6)
	assert.Equal(t, "produce", cats[0].ID)
	assert.Equal(t, "Fresh Produce", cats[0].Name)
}

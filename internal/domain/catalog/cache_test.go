// internal/domain/catalog/cache_test.go
package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/api"
)

type stubLister struct {
	products []api.Product
	err      error
	calls    int
}

func (s *stubLister) Products(ctx context.Context) ([]api.Product, error) {
	s.calls++
	return s.products, s.err
}

func TestLoadFetchesOnce(t *testing.T) {
	lister := &stubLister{products: []api.Product{{ID: 1, Name: "Headphones", Price: 299.99}}}
	cache := NewCache(lister)

	require.NoError(t, cache.Load(context.Background()))
	require.NoError(t, cache.Load(context.Background()))
	assert.Equal(t, 1, lister.calls)

	product, ok := cache.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Headphones", product.Name)
}

func TestLoadFailureLeavesCacheEmpty(t *testing.T) {
	lister := &stubLister{err: errors.New("connection refused")}
	cache := NewCache(lister)

	require.Error(t, cache.Load(context.Background()))
	assert.Empty(t, cache.Products())

	// A later retry can still succeed.
	lister.err = nil
	lister.products = []api.Product{{ID: 2}}
	require.NoError(t, cache.Load(context.Background()))
	assert.Len(t, cache.Products(), 1)
}

func TestSubtotal(t *testing.T) {
	lister := &stubLister{products: []api.Product{
		{ID: 5, Name: "Water Bottle", Price: 35.00},
		{ID: 8, Name: "Keyboard", Price: 129.99},
	}}
	cache := NewCache(lister)
	require.NoError(t, cache.Load(context.Background()))

	tests := []struct {
		name     string
		cart     *api.Cart
		expected float64
	}{
		{"nil cart", nil, 0},
		{"empty cart", &api.Cart{}, 0},
		{
			"single line",
			&api.Cart{Items: []api.CartItem{{ItemID: 5, Quantity: 2}}},
			70.00,
		},
		{
			"multiple lines",
			&api.Cart{Items: []api.CartItem{
				{ItemID: 5, Quantity: 2},
				{ItemID: 8, Quantity: 1},
			}},
			199.99,
		},
		{
			"uncached items are skipped, not zero-cost errors",
			&api.Cart{Items: []api.CartItem{
				{ItemID: 5, Quantity: 2},
				{ItemID: 999, Quantity: 4},
			}},
			70.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cache.Subtotal(tt.cart), 1e-9)
		})
	}
}

func TestItemCount(t *testing.T) {
	cache := NewCache(&stubLister{})

	assert.Equal(t, 0, cache.ItemCount(nil))
	assert.Equal(t, 5, cache.ItemCount(&api.Cart{Items: []api.CartItem{
		{ItemID: 1, Quantity: 2},
		{ItemID: 2, Quantity: 3},
	}}))
}

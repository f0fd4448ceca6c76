// internal/backend/storefront_flow_test.go
package backend

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/discount"
)

// Exercises the whole client-side stack against the reference backend: the
// shopper wins a code on the Nth order, applies it, and redeems it on the
// next one.
func TestStorefrontDiscountLifecycle(t *testing.T) {
	_, ts := newTestServer(t, 3)
	client := clientFor(ts, "demo_user")
	ctx := context.Background()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cache := catalog.NewCache(client)
	require.NoError(t, cache.Load(ctx))

	sequencer := checkout.NewSequencer(client, logger)
	store := cart.NewStore(client, sequencer, logger)
	flow := discount.NewFlow(client, logger)

	store.Refresh(ctx)
	require.NotNil(t, store.Cart())
	assert.Empty(t, store.Cart().Items)

	// Not eligible before any orders.
	_, granted, err := flow.CheckEligibility(ctx)
	require.NoError(t, err)
	assert.False(t, granted)

	// Two plain orders.
	for i := 0; i < 2; i++ {
		require.NoError(t, store.AddItem(ctx, 4, 1))
		_, err := store.Checkout(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, store.Cart().Items)
	}

	// The third order trips the Nth-order rule; the sequencer's probe picks
	// the won code up right after the order resolves.
	require.NoError(t, store.AddItem(ctx, 4, 1))
	_, err = store.Checkout(ctx, "")
	require.NoError(t, err)
	require.Equal(t, checkout.Success, sequencer.State())
	wonCode := sequencer.WonCode()
	require.Equal(t, "DISCOUNT10-3", wonCode)

	// Two bottles at $35.00: subtotal $70.00, checkout total $70.00 undiscounted.
	require.NoError(t, store.AddItem(ctx, 5, 2))
	subtotal := cache.Subtotal(store.Cart())
	assert.InDelta(t, 70.00, subtotal, 1e-9)
	assert.Zero(t, flow.Amount(subtotal))

	// The same cart with the won code validated shows -$7.00, total $63.00.
	require.NoError(t, flow.Apply(ctx, wonCode))
	assert.InDelta(t, 7.00, flow.Amount(subtotal), 1e-9)
	assert.InDelta(t, 63.00, subtotal-flow.Amount(subtotal), 1e-9)

	order, err := store.Checkout(ctx, flow.Code())
	require.NoError(t, err)
	assert.InDelta(t, 70.00, order.TotalAmount, 1e-9)
	assert.InDelta(t, 7.00, order.DiscountAmount, 1e-9)
	assert.InDelta(t, 63.00, order.FinalAmount, 1e-9)
	assert.Equal(t, wonCode, order.DiscountCode)

	// The spent code no longer validates.
	err = flow.Apply(ctx, wonCode)
	assert.ErrorIs(t, err, discount.ErrCodeRejected)
	assert.False(t, flow.Valid())
}

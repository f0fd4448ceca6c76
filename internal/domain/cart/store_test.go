// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/api"
	"github.com/your-org/storefront/internal/domain/checkout"
)

// stubBackend implements both the cart and checkout backend interfaces.
type stubBackend struct {
	cart       *api.Cart
	cartErr    error
	mutation   *api.CartMutation
	mutErr     error
	order      *api.Order
	orderErr   error
	wonCode    string
	cartCalls  int
	probeCalls int
}

func (s *stubBackend) Cart(ctx context.Context) (*api.Cart, error) {
	s.cartCalls++
	return s.cart, s.cartErr
}

func (s *stubBackend) AddToCart(ctx context.Context, itemID, quantity int) (*api.CartMutation, error) {
	return s.mutation, s.mutErr
}

func (s *stubBackend) RemoveFromCart(ctx context.Context, itemID int) (*api.CartMutation, error) {
	return s.mutation, s.mutErr
}

func (s *stubBackend) Checkout(ctx context.Context, discountCode string) (*api.Order, error) {
	return s.order, s.orderErr
}

func (s *stubBackend) CheckForDiscount(ctx context.Context) (string, error) {
	s.probeCalls++
	return s.wonCode, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestStore(backend *stubBackend) *Store {
	return NewStore(backend, checkout.NewSequencer(backend, quietLogger()), quietLogger())
}

func TestRefreshReplacesState(t *testing.T) {
	backend := &stubBackend{cart: &api.Cart{
		UserID: "demo_user",
		Items:  []api.CartItem{{ItemID: 5, Quantity: 2}},
	}}
	store := newTestStore(backend)

	assert.True(t, store.Loading())
	assert.Nil(t, store.Cart())

	store.Refresh(context.Background())

	assert.False(t, store.Loading())
	require.NotNil(t, store.Cart())
	assert.Equal(t, backend.cart, store.Cart())
}

func TestRefreshFailureLeavesPriorState(t *testing.T) {
	backend := &stubBackend{cart: &api.Cart{Items: []api.CartItem{{ItemID: 5, Quantity: 2}}}}
	store := newTestStore(backend)
	store.Refresh(context.Background())
	before := store.Cart()

	backend.cartErr = errors.New("connection refused")
	store.Refresh(context.Background())

	// Best-effort sync: failure is swallowed and prior state kept.
	assert.Equal(t, before, store.Cart())
	assert.False(t, store.Loading())
}

func TestAddItemAdoptsServerCart(t *testing.T) {
	backend := &stubBackend{mutation: &api.CartMutation{
		Message: "Item added to cart",
		Cart:    api.Cart{Items: []api.CartItem{{ItemID: 5, Quantity: 3}}},
	}}
	store := newTestStore(backend)

	require.NoError(t, store.AddItem(context.Background(), 5, 3))

	// State is the server's cart verbatim, never locally computed.
	require.NotNil(t, store.Cart())
	assert.Equal(t, []api.CartItem{{ItemID: 5, Quantity: 3}}, store.Cart().Items)
}

func TestAddItemFailurePropagatesAndLeavesState(t *testing.T) {
	backend := &stubBackend{mutation: &api.CartMutation{
		Cart: api.Cart{Items: []api.CartItem{{ItemID: 5, Quantity: 2}}},
	}}
	store := newTestStore(backend)
	require.NoError(t, store.AddItem(context.Background(), 5, 2))
	before := *store.Cart()

	backend.mutErr = errors.New("Insufficient stock for item 5")
	err := store.AddItem(context.Background(), 5, 100)

	require.Error(t, err)
	assert.Equal(t, before, *store.Cart())
}

func TestRemoveItemAdoptsServerCart(t *testing.T) {
	backend := &stubBackend{mutation: &api.CartMutation{
		Message: "Item removed from cart",
		Cart:    api.Cart{Items: []api.CartItem{}},
	}}
	store := newTestStore(backend)

	require.NoError(t, store.RemoveItem(context.Background(), 5))
	assert.Empty(t, store.Cart().Items)
}

func TestCheckoutRefreshesAfterSuccess(t *testing.T) {
	backend := &stubBackend{
		cart:  &api.Cart{Items: []api.CartItem{}},
		order: &api.Order{ID: 1, TotalAmount: 70, FinalAmount: 70},
	}
	store := newTestStore(backend)

	order, err := store.Checkout(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, 1, backend.cartCalls, "checkout must re-sync the cart")
	assert.Empty(t, store.Cart().Items)
}

func TestCheckoutFailureLeavesCartUntouched(t *testing.T) {
	full := &api.Cart{Items: []api.CartItem{{ItemID: 5, Quantity: 2}}}
	backend := &stubBackend{cart: full}
	store := newTestStore(backend)
	store.Refresh(context.Background())
	before := *store.Cart()

	backend.orderErr = errors.New("Invalid discount code")
	_, err := store.Checkout(context.Background(), "FAKE")

	require.Error(t, err)
	// The post-failure refresh re-confirms the server's cart, which still
	// holds the same items and quantities.
	assert.Equal(t, before, *store.Cart())
	assert.Equal(t, 0, backend.probeCalls, "no eligibility probe after a failed order")
}

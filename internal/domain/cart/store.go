// internal/domain/cart/store.go
package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/api"
	"github.com/your-org/storefront/internal/domain/checkout"
)

// Backend covers the cart calls the store issues.
type Backend interface {
	Cart(ctx context.Context) (*api.Cart, error)
	AddToCart(ctx context.Context, itemID, quantity int) (*api.CartMutation, error)
	RemoveFromCart(ctx context.Context, itemID int) (*api.CartMutation, error)
}

// Store holds the authoritative cart as last fetched from the backend. Local
// state is always a direct copy of the last successful server response; the
// store never increments or decrements quantities itself.
type Store struct {
	mu        sync.Mutex
	backend   Backend
	sequencer *checkout.Sequencer
	log       logrus.FieldLogger

	cart    *api.Cart
	loading bool
}

// NewStore creates a cart store. The cart is absent until the first refresh.
func NewStore(backend Backend, sequencer *checkout.Sequencer, log logrus.FieldLogger) *Store {
	return &Store{
		backend:   backend,
		sequencer: sequencer,
		log:       log,
		loading:   true,
	}
}

// Cart returns the last server-confirmed cart, or nil before the first load.
func (s *Store) Cart() *api.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Loading reports whether the initial cart load is still pending.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Refresh fetches the cart and replaces local state. Treated as best-effort
// background sync: on failure the prior state is left untouched and only a
// warning is logged.
func (s *Store) Refresh(ctx context.Context) {
	cart, err := s.backend.Cart(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.WithError(err).Warn("Failed to fetch cart")
		return
	}
	s.cart = cart
}

// AddItem adds quantity of an item, then replaces local state with the
// server-returned cart. On failure the error propagates and prior state is
// untouched.
func (s *Store) AddItem(ctx context.Context, itemID, quantity int) error {
	result, err := s.backend.AddToCart(ctx, itemID, quantity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = &result.Cart
	return nil
}

// RemoveItem removes the entire line for an item regardless of quantity,
// then replaces local state with the server-returned cart.
func (s *Store) RemoveItem(ctx context.Context, itemID int) error {
	result, err := s.backend.RemoveFromCart(ctx, itemID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = &result.Cart
	return nil
}

// Checkout delegates to the sequencer, then unconditionally refreshes the
// cart afterward; checkout is expected to empty it server-side, and on
// failure the refresh re-confirms whatever the backend still holds.
func (s *Store) Checkout(ctx context.Context, discountCode string) (*api.Order, error) {
	order, err := s.sequencer.Run(ctx, discountCode)
	s.Refresh(ctx)
	return order, err
}

// internal/backend/store.go
package backend

import (
	"fmt"
	"sync"

	"github.com/your-org/storefront/internal/api"
)

// discountCode tracks whether a minted code is still usable.
type discountCode struct {
	Code string
	Used bool
}

// Store is the backend's in-memory state: catalog, per-user carts, orders and
// discount codes. Everything lives in the process; there is no persistence.
type Store struct {
	mu       sync.Mutex
	nthOrder int

	items   map[int]api.Product
	itemIDs []int
	carts   map[string]*api.Cart
	orders  []api.Order
	codes   map[string]*discountCode

	orderCount      int
	lastMintedCount int
}

// NewStore creates a seeded store. A new discount code is minted once per
// nthOrder completed orders.
func NewStore(nthOrder int) *Store {
	s := &Store{nthOrder: nthOrder}
	s.Reset()
	return s
}

// Reset wipes carts, orders and codes, and re-seeds the catalog.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int]api.Product)
	s.itemIDs = nil
	s.carts = make(map[string]*api.Cart)
	s.orders = nil
	s.codes = make(map[string]*discountCode)
	s.orderCount = 0
	s.lastMintedCount = 0

	for _, product := range seedProducts() {
		s.items[product.ID] = product
		s.itemIDs = append(s.itemIDs, product.ID)
	}
}

// Products returns the catalog in seed order.
func (s *Store) Products() []api.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]api.Product, 0, len(s.itemIDs))
	for _, id := range s.itemIDs {
		products = append(products, s.items[id])
	}
	return products
}

// Product looks up a single catalog entry.
func (s *Store) Product(id int) (api.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.items[id]
	return product, ok
}

// Cart returns a copy of the user's cart, empty if none exists yet.
func (s *Store) Cart(userID string) api.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartCopy(userID)
}

// AddToCart adds quantity of an item, merging into an existing line, and
// returns the resulting cart.
func (s *Store) AddToCart(userID string, itemID, quantity int) (api.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return api.Cart{}, fmt.Errorf("Quantity must be at least 1")
	}
	product, ok := s.items[itemID]
	if !ok {
		return api.Cart{}, fmt.Errorf("Item %d not found", itemID)
	}

	cart := s.carts[userID]
	if cart == nil {
		cart = &api.Cart{UserID: userID}
		s.carts[userID] = cart
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ItemID == itemID {
			if cart.Items[i].Quantity+quantity > product.Stock {
				return api.Cart{}, fmt.Errorf("Insufficient stock for item %d", itemID)
			}
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		if quantity > product.Stock {
			return api.Cart{}, fmt.Errorf("Insufficient stock for item %d", itemID)
		}
		cart.Items = append(cart.Items, api.CartItem{ItemID: itemID, Quantity: quantity})
	}

	return s.cartCopy(userID), nil
}

// RemoveFromCart drops an item's line entirely and returns the resulting cart.
func (s *Store) RemoveFromCart(userID string, itemID int) (api.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	if cart != nil {
		for i := range cart.Items {
			if cart.Items[i].ItemID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return s.cartCopy(userID), nil
			}
		}
	}
	return api.Cart{}, fmt.Errorf("Item %d not in cart", itemID)
}

// Checkout converts the user's cart into an order, applying the 10% discount
// when a valid code is supplied, and empties the cart.
func (s *Store) Checkout(userID, code string) (api.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	if cart == nil || len(cart.Items) == 0 {
		return api.Order{}, fmt.Errorf("Cart is empty")
	}

	var minted *discountCode
	if code != "" {
		minted = s.codes[code]
		if minted == nil || minted.Used {
			return api.Order{}, fmt.Errorf("Invalid discount code")
		}
	}

	var total float64
	for _, item := range cart.Items {
		total += s.items[item.ItemID].Price * float64(item.Quantity)
	}

	var discount float64
	if minted != nil {
		discount = total * 0.10
		minted.Used = true
	}

	items := make([]api.CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := api.Order{
		ID:             len(s.orders) + 1,
		UserID:         userID,
		Items:          items,
		TotalAmount:    total,
		DiscountCode:   code,
		DiscountAmount: discount,
		FinalAmount:    total - discount,
	}
	s.orders = append(s.orders, order)
	s.orderCount++
	cart.Items = nil

	return order, nil
}

// GenerateDiscount mints a new single-use code when the order count has
// reached a fresh multiple of the Nth-order threshold. Returns the empty
// string when the condition is not met, including when a code for the
// current count was already handed out.
func (s *Store) GenerateDiscount() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orderCount == 0 || s.orderCount%s.nthOrder != 0 || s.lastMintedCount == s.orderCount {
		return ""
	}

	code := fmt.Sprintf("DISCOUNT10-%d", s.orderCount)
	s.codes[code] = &discountCode{Code: code}
	s.lastMintedCount = s.orderCount
	return code
}

// ValidateCode reports whether a code exists and has not been used.
func (s *Store) ValidateCode(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	minted, ok := s.codes[code]
	return ok && !minted.Used
}

// InjectCode registers a usable code directly, bypassing the Nth-order rule.
// Test hook, mirrors seeding a code straight into the store.
func (s *Store) InjectCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[code] = &discountCode{Code: code}
}

// Stats aggregates the admin dashboard numbers from recorded orders.
func (s *Store) Stats() api.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := api.Stats{
		TotalOrders:   len(s.orders),
		DiscountCodes: []string{},
	}
	for _, order := range s.orders {
		for _, item := range order.Items {
			stats.TotalItemsPurchased += item.Quantity
		}
		stats.TotalPurchaseAmount += order.TotalAmount
		stats.TotalDiscountAmount += order.DiscountAmount
		if order.DiscountCode != "" {
			stats.DiscountCodes = append(stats.DiscountCodes, order.DiscountCode)
		}
	}
	return stats
}

// cartCopy returns a detached copy; callers must hold s.mu.
func (s *Store) cartCopy(userID string) api.Cart {
	cart := s.carts[userID]
	if cart == nil {
		return api.Cart{UserID: userID, Items: []api.CartItem{}}
	}

	items := make([]api.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return api.Cart{UserID: userID, Items: items}
}

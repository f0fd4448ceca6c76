// internal/domain/catalog/cache.go
package catalog

import (
	"context"
	"sync"

	"github.com/your-org/storefront/internal/api"
)

// Lister retrieves the product catalog.
type Lister interface {
	Products(ctx context.Context) ([]api.Product, error)
}

// Cache holds the product list for the lifetime of a session. The catalog is
// fetched once on first use, like the cart drawer fetching products when it
// opens.
type Cache struct {
	mu       sync.Mutex
	lister   Lister
	products []api.Product
	loaded   bool
}

// NewCache creates a product cache backed by the given lister.
func NewCache(lister Lister) *Cache {
	return &Cache{lister: lister}
}

// Load fetches the catalog if it has not been fetched yet.
func (c *Cache) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return nil
	}
	products, err := c.lister.Products(ctx)
	if err != nil {
		return err
	}
	c.products = products
	c.loaded = true
	return nil
}

// Products returns the cached catalog. Empty until Load succeeds.
func (c *Cache) Products() []api.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products
}

// Lookup finds a cached product by id.
func (c *Cache) Lookup(id int) (*api.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i], true
		}
	}
	return nil, false
}

// Subtotal computes the cart subtotal from cached product prices. Items
// missing from the cache are skipped, not treated as zero-cost errors.
func (c *Cache) Subtotal(cart *api.Cart) float64 {
	if cart == nil {
		return 0
	}

	var total float64
	for _, item := range cart.Items {
		if product, ok := c.Lookup(item.ItemID); ok {
			total += product.Price * float64(item.Quantity)
		}
	}
	return total
}

// ItemCount sums the quantities of all cart lines.
func (c *Cache) ItemCount(cart *api.Cart) int {
	if cart == nil {
		return 0
	}

	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count
}

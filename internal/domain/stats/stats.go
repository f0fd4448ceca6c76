// internal/domain/stats/stats.go
package stats

import (
	"context"

	"github.com/your-org/storefront/internal/api"
)

// Backend retrieves the admin stats snapshot.
type Backend interface {
	Stats(ctx context.Context) (*api.Stats, error)
}

// View wraps a server-computed stats snapshot with the one value derived
// client-side.
type View struct {
	api.Stats
}

// Fetch retrieves the current snapshot.
func Fetch(ctx context.Context, backend Backend) (*View, error) {
	snapshot, err := backend.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &View{Stats: *snapshot}, nil
}

// AverageOrderValue is total purchase amount over total orders, defined as 0
// when there are no orders.
func (v *View) AverageOrderValue() float64 {
	if v.TotalOrders == 0 {
		return 0
	}
	return v.TotalPurchaseAmount / float64(v.TotalOrders)
}

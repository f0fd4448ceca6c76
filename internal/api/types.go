// internal/api/types.go
package api

// Product is a catalog entry as returned by the backend. The client never
// mutates product data, it only reads it.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Stock         int      `json:"stock"`
	Sale          bool     `json:"sale"`
}

// CartItem links a product to how many of it the user wants.
// At most one CartItem per item_id exists within a cart.
type CartItem struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// Cart is the user's cart as last confirmed by the backend.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// Order is a snapshot of a completed order. Immutable once returned.
type Order struct {
	ID             int        `json:"id"`
	UserID         string     `json:"user_id"`
	Items          []CartItem `json:"items"`
	TotalAmount    float64    `json:"total_amount"`
	DiscountCode   string     `json:"discount_code,omitempty"`
	DiscountAmount float64    `json:"discount_amount"`
	FinalAmount    float64    `json:"final_amount"`
}

// CartMutation is the response shape of the add and remove endpoints.
type CartMutation struct {
	Message string `json:"message"`
	Cart    Cart   `json:"cart"`
}

// EligibilityResult is the response shape of the discount generation endpoint.
// Code is empty when the Nth-order condition was not met.
type EligibilityResult struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// DiscountStatus is the response shape of the discount validation endpoint.
type DiscountStatus struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// Stats is the aggregate snapshot shown on the admin dashboard.
type Stats struct {
	TotalOrders         int      `json:"total_orders"`
	TotalItemsPurchased int      `json:"total_items_purchased"`
	TotalPurchaseAmount float64  `json:"total_purchase_amount"`
	DiscountCodes       []string `json:"discount_codes"`
	TotalDiscountAmount float64  `json:"total_discount_amount"`
}

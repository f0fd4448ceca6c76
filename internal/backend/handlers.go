// internal/backend/handlers.go
package backend

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler exposes the store over the REST surface the storefront consumes.
type Handler struct {
	store *Store
}

// NewHandler creates a backend handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Root handles GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Storefront API",
	})
}

// GetProducts handles GET /products
func (h *Handler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Products())
}

// GetProduct handles GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
		return
	}

	product, ok := h.store.Product(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetCart handles GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	userID := c.DefaultQuery("user_id", "demo_user")
	c.JSON(http.StatusOK, h.store.Cart(userID))
}

// AddToCart handles POST /cart/add
func (h *Handler) AddToCart(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Query("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "item_id must be an integer"})
		return
	}
	quantity := 1
	if raw := c.Query("quantity"); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "quantity must be an integer"})
			return
		}
	}
	userID := c.DefaultQuery("user_id", "demo_user")

	cart, err := h.store.AddToCart(userID, itemID, quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"cart":    cart,
	})
}

// RemoveFromCart handles DELETE /cart/remove
func (h *Handler) RemoveFromCart(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Query("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "item_id must be an integer"})
		return
	}
	userID := c.DefaultQuery("user_id", "demo_user")

	cart, err := h.store.RemoveFromCart(userID, itemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"cart":    cart,
	})
}

// Checkout handles POST /checkout
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.DefaultQuery("user_id", "demo_user")
	code := c.Query("discount_code")

	order, err := h.store.Checkout(userID, code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GenerateDiscount handles POST /admin/generate-discount
func (h *Handler) GenerateDiscount(c *gin.Context) {
	code := h.store.GenerateDiscount()
	if code == "" {
		c.JSON(http.StatusOK, gin.H{
			"message": "No discount code generated. Condition not met.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Discount code generated",
		"code":    code,
	})
}

// ValidateDiscount handles GET /discount/validate
func (h *Handler) ValidateDiscount(c *gin.Context) {
	code := c.Query("code")
	c.JSON(http.StatusOK, gin.H{
		"code":  code,
		"valid": h.store.ValidateCode(code),
	})
}

// GetStats handles GET /admin/stats
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

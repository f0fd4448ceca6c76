// internal/api/client.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// defaultFailureMessage is used when an error response carries no parsable body.
const defaultFailureMessage = "Request failed"

// RequestError represents a non-success HTTP outcome. Message is taken from
// the response body's detail field when present.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Client is a typed wrapper around the backend REST surface. It holds no
// state beyond its connection settings.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

// NewClient creates a new backend client. All requests are issued on behalf
// of the given user id.
func NewClient(baseURL, userID string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userID:     userID,
		httpClient: httpClient,
	}
}

// UserID returns the user id this client acts for.
func (c *Client) UserID() string {
	return c.userID
}

// ImageURL joins a relative image path onto the backend origin.
func (c *Client) ImageURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Products retrieves all products.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID retrieves a single product.
func (c *Client) ProductByID(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Cart retrieves the current cart.
func (c *Client) Cart(ctx context.Context) (*Cart, error) {
	query := url.Values{"user_id": {c.userID}}
	var cart Cart
	if err := c.do(ctx, http.MethodGet, "/cart", query, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds quantity of an item and returns the server's cart.
func (c *Client) AddToCart(ctx context.Context, itemID, quantity int) (*CartMutation, error) {
	query := url.Values{
		"item_id":  {strconv.Itoa(itemID)},
		"quantity": {strconv.Itoa(quantity)},
		"user_id":  {c.userID},
	}
	var result CartMutation
	if err := c.do(ctx, http.MethodPost, "/cart/add", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveFromCart removes an item line entirely and returns the server's cart.
func (c *Client) RemoveFromCart(ctx context.Context, itemID int) (*CartMutation, error) {
	query := url.Values{
		"item_id": {strconv.Itoa(itemID)},
		"user_id": {c.userID},
	}
	var result CartMutation
	if err := c.do(ctx, http.MethodDelete, "/cart/remove", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Checkout converts the cart into an order. An empty discountCode is omitted
// from the request.
func (c *Client) Checkout(ctx context.Context, discountCode string) (*Order, error) {
	query := url.Values{"user_id": {c.userID}}
	if discountCode != "" {
		query.Set("discount_code", discountCode)
	}
	var order Order
	if err := c.do(ctx, http.MethodPost, "/checkout", query, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CheckForDiscount asks whether the Nth-order condition minted a new code.
// Returns the empty string when no code was granted.
func (c *Client) CheckForDiscount(ctx context.Context) (string, error) {
	var result EligibilityResult
	if err := c.do(ctx, http.MethodPost, "/admin/generate-discount", nil, &result); err != nil {
		return "", err
	}
	return result.Code, nil
}

// ValidateDiscount checks whether a discount code exists and is still usable.
func (c *Client) ValidateDiscount(ctx context.Context, code string) (bool, error) {
	query := url.Values{"code": {code}}
	var status DiscountStatus
	if err := c.do(ctx, http.MethodGet, "/discount/validate", query, &status); err != nil {
		return false, err
	}
	return status.Valid, nil
}

// Stats retrieves the admin sales statistics.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// do issues a request and decodes the response into out. Non-success
// responses become a RequestError with the message from the detail field.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.failure(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) failure(resp *http.Response) error {
	message := defaultFailureMessage
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		message = body.Detail
	}
	return &RequestError{StatusCode: resp.StatusCode, Message: message}
}

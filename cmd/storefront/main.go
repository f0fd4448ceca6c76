// cmd/storefront/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/your-org/storefront/internal/api"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/discount"
	"github.com/your-org/storefront/internal/domain/stats"
	"github.com/your-org/storefront/internal/pkg/logging"
)

// app wires the client-side state: one cart, one discount-edit session, one
// checkout sequencer, all talking to the same backend client.
type app struct {
	client    *api.Client
	catalog   *catalog.Cache
	cart      *cart.Store
	discount  *discount.Flow
	sequencer *checkout.Sequencer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg)
	logger.Infof("Starting %s v%s (backend %s, user %s)",
		cfg.App.Name, cfg.App.Version, cfg.Client.BaseURL, cfg.Client.UserID)

	client := api.NewClient(cfg.Client.BaseURL, cfg.Client.UserID, &http.Client{
		Timeout: cfg.Client.HTTPTimeout,
	})

	sequencer := checkout.NewSequencer(client, logger)
	a := &app{
		client:    client,
		catalog:   catalog.NewCache(client),
		cart:      cart.NewStore(client, sequencer, logger),
		discount:  discount.NewFlow(client, logger),
		sequencer: sequencer,
	}

	ctx := context.Background()

	// Initial loads are best-effort: the user sees a stale-or-empty view
	// rather than a hard error.
	if err := a.catalog.Load(ctx); err != nil {
		logger.WithError(err).Warn("Failed to load products")
	}
	a.cart.Refresh(ctx)

	a.run(ctx)
}

func (a *app) run(ctx context.Context) {
	fmt.Println("Storefront ready. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp()
		case "list":
			a.showCatalog()
		case "show":
			a.showProduct(ctx, fields[1:])
		case "add":
			a.addItem(ctx, fields[1:])
		case "remove":
			a.removeItem(ctx, fields[1:])
		case "cart":
			a.showCart()
		case "code":
			a.discount.Edit(strings.Join(fields[1:], " "))
			fmt.Println("Discount code updated. Use 'apply' to validate it.")
		case "apply":
			a.applyCode(ctx)
		case "lucky":
			a.checkEligibility(ctx)
		case "checkout":
			a.checkout(ctx)
		case "stats":
			a.showStats(ctx)
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q. Type 'help' for commands.\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  list              show the product catalog
  show <id>         show product details
  add <id> [qty]    add an item to the cart
  remove <id>       remove an item line from the cart
  cart              show the cart with discounts and total
  code <text>       set the discount code text
  apply             validate the entered discount code
  lucky             check whether you qualify for a new discount code
  checkout          place the order
  stats             show the admin sales statistics
  quit              leave the store`)
}

func (a *app) showCatalog() {
	products := a.catalog.Products()
	if len(products) == 0 {
		fmt.Println("No products available.")
		return
	}
	for _, p := range products {
		marker := ""
		if p.Sale {
			marker = " [SALE]"
		}
		fmt.Printf("%3d  %-40s $%8.2f  %s (%d in stock)%s\n",
			p.ID, p.Name, p.Price, p.Category, p.Stock, marker)
	}
}

func (a *app) showProduct(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: show <id>")
		return
	}

	product, err := a.client.ProductByID(ctx, id)
	if err != nil {
		fmt.Printf("Could not load product: %v\n", err)
		return
	}

	fmt.Printf("%s — $%.2f", product.Name, product.Price)
	if product.OriginalPrice != nil {
		fmt.Printf(" (was $%.2f)", *product.OriginalPrice)
	}
	fmt.Printf("\n%.1f stars, %d reviews, %d in stock\n", product.Rating, product.ReviewCount, product.Stock)
	fmt.Println(product.Description)
	for _, feature := range product.Features {
		fmt.Printf("  - %s\n", feature)
	}
	fmt.Printf("Image: %s\n", a.client.ImageURL(product.Image))
}

func (a *app) addItem(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: add <id> [qty]")
		return
	}
	quantity := 1
	if len(args) > 1 {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("Usage: add <id> [qty]")
			return
		}
		quantity = q
	}

	if err := a.cart.AddItem(ctx, id, quantity); err != nil {
		fmt.Printf("Failed to add to cart: %v\n", err)
		return
	}
	fmt.Println("Added to cart.")
}

func (a *app) removeItem(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		fmt.Println("Usage: remove <id>")
		return
	}

	if err := a.cart.RemoveItem(ctx, id); err != nil {
		fmt.Printf("Failed to remove item: %v\n", err)
		return
	}
	fmt.Println("Removed from cart.")
}

func (a *app) showCart() {
	current := a.cart.Cart()
	if current == nil || len(current.Items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	for _, item := range current.Items {
		product, ok := a.catalog.Lookup(item.ItemID)
		if !ok {
			continue
		}
		fmt.Printf("  %-40s x%-3d $%8.2f\n",
			product.Name, item.Quantity, product.Price*float64(item.Quantity))
	}

	subtotal := a.catalog.Subtotal(current)
	fmt.Printf("Subtotal (%d items): $%.2f\n", a.catalog.ItemCount(current), subtotal)
	if amount := a.discount.Amount(subtotal); amount > 0 {
		fmt.Printf("Discount (%s):      -$%.2f\n", a.discount.Code(), amount)
		fmt.Printf("Total:               $%.2f\n", subtotal-amount)
	} else {
		fmt.Printf("Total:               $%.2f\n", subtotal)
	}
}

func (a *app) applyCode(ctx context.Context) {
	err := a.discount.Apply(ctx, a.discount.Code())
	switch {
	case err == discount.ErrEmptyCode:
		fmt.Println("Please enter a discount code first ('code <text>').")
	case err == discount.ErrCodeRejected:
		fmt.Println("Invalid discount code. It doesn't exist or has been used.")
	case err != nil:
		fmt.Printf("Failed to validate code: %v\n", err)
	default:
		fmt.Println("Discount code applied! 10% off at checkout.")
	}
}

func (a *app) checkEligibility(ctx context.Context) {
	code, granted, err := a.discount.CheckEligibility(ctx)
	if err != nil {
		fmt.Printf("Failed to check eligibility: %v\n", err)
		return
	}
	if !granted {
		fmt.Println("Not eligible yet. Complete more orders to unlock discounts.")
		return
	}
	fmt.Printf("You're eligible! Code %s has been applied.\n", code)
}

func (a *app) checkout(ctx context.Context) {
	code := ""
	if a.discount.Valid() {
		code = a.discount.Code()
	}

	order, err := a.cart.Checkout(ctx, code)
	if err != nil {
		fmt.Printf("Checkout failed: %s\n", a.sequencer.ErrorMessage())
		return
	}

	fmt.Printf("Order #%d placed!\n", order.ID)
	fmt.Printf("  Subtotal: $%.2f\n", order.TotalAmount)
	if order.DiscountAmount > 0 {
		fmt.Printf("  Discount: -$%.2f\n", order.DiscountAmount)
	}
	fmt.Printf("  Total paid: $%.2f\n", order.FinalAmount)

	if won := a.sequencer.WonCode(); won != "" {
		fmt.Printf("You're a lucky customer! Here's a 10%% code for your next order: %s\n", won)
	}

	// The spent code is no longer usable; start the next session clean.
	a.discount.Clear()
	a.sequencer.Reset()
}

func (a *app) showStats(ctx context.Context) {
	view, err := stats.Fetch(ctx, a.client)
	if err != nil {
		fmt.Printf("Failed to load statistics: %v\n", err)
		return
	}

	fmt.Printf("Orders:            %d\n", view.TotalOrders)
	fmt.Printf("Items purchased:   %d\n", view.TotalItemsPurchased)
	fmt.Printf("Revenue:           $%.2f\n", view.TotalPurchaseAmount)
	fmt.Printf("Average order:     $%.2f\n", view.AverageOrderValue())
	fmt.Printf("Discounts given:   $%.2f\n", view.TotalDiscountAmount)
	if len(view.DiscountCodes) > 0 {
		fmt.Printf("Redeemed codes:    %s\n", strings.Join(view.DiscountCodes, ", "))
	}
}

func parseID(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return id, true
}

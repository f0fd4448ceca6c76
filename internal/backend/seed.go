// internal/backend/seed.go
package backend

import "github.com/your-org/storefront/internal/api"

func floatPtr(v float64) *float64 {
	return &v
}

// seedProducts returns the demo catalog.
func seedProducts() []api.Product {
	return []api.Product{
		{
			ID:            1,
			Name:          "Wireless Noise-Canceling Headphones",
			Price:         299.99,
			OriginalPrice: floatPtr(349.99),
			Image:         "/image.png",
			Category:      "Electronics",
			Rating:        4.8,
			ReviewCount:   2847,
			Description:   "Experience immersive sound with our premium wireless headphones featuring advanced noise-canceling technology. Perfect for music lovers, travelers, and remote workers who demand crystal-clear audio.",
			Features: []string{
				"Active Noise Cancellation",
				"40-hour battery life",
				"Bluetooth 5.2",
				"Premium memory foam ear cushions",
				"Foldable design for travel",
			},
			Stock: 45,
			Sale:  true,
		},
		{
			ID:          2,
			Name:        "Smart Fitness Watch Pro",
			Price:       199.50,
			Image:       "/image.png",
			Category:    "Electronics",
			Rating:      4.5,
			ReviewCount: 1523,
			Description: "Track your health and fitness goals with precision. This advanced smartwatch monitors heart rate, sleep patterns, and over 100 workout modes.",
			Features: []string{
				"Heart rate monitoring",
				"GPS tracking",
				"Water resistant to 50m",
				"7-day battery life",
				"Compatible with iOS and Android",
			},
			Stock: 78,
		},
		{
			ID:          3,
			Name:        "Ergonomic Office Chair",
			Price:       450.00,
			Image:       "/image.png",
			Category:    "Furniture",
			Rating:      4.9,
			ReviewCount: 892,
			Description: "Designed for all-day comfort, this ergonomic chair features adjustable lumbar support, breathable mesh back, and customizable armrests.",
			Features: []string{
				"Adjustable lumbar support",
				"Breathable mesh back",
				"4D armrests",
				"Recline up to 135 degrees",
				"Supports up to 300 lbs",
			},
			Stock: 23,
		},
		{
			ID:          4,
			Name:        "Premium Cotton T-Shirt",
			Price:       25.00,
			Image:       "/image.png",
			Category:    "Clothing",
			Rating:      4.2,
			ReviewCount: 3421,
			Description: "Ultra-soft 100% organic cotton t-shirt with a modern fit. Pre-shrunk and machine washable for easy care.",
			Features: []string{
				"100% organic cotton",
				"Pre-shrunk fabric",
				"Reinforced seams",
				"Available in 12 colors",
				"Sizes XS-3XL",
			},
			Stock: 156,
		},
		{
			ID:          5,
			Name:        "Stainless Steel Water Bottle",
			Price:       35.00,
			Image:       "/image.png",
			Category:    "Accessories",
			Rating:      4.7,
			ReviewCount: 2156,
			Description: "Double-walled vacuum insulated water bottle keeps drinks cold for 24 hours or hot for 12 hours. BPA-free and eco-friendly.",
			Features: []string{
				"24-hour cold / 12-hour hot",
				"Double-wall insulation",
				"BPA-free",
				"Leak-proof lid",
				"32 oz capacity",
			},
			Stock: 234,
		},
		{
			ID:            6,
			Name:          "Leather Weekend Bag",
			Price:         150.00,
			OriginalPrice: floatPtr(199.00),
			Image:         "/image.png",
			Category:      "Accessories",
			Rating:        4.6,
			ReviewCount:   678,
			Description:   "Handcrafted genuine leather weekend bag with spacious interior and multiple compartments. Perfect for short trips and gym sessions.",
			Features: []string{
				"Genuine full-grain leather",
				"Padded laptop sleeve",
				"Multiple pockets",
				"Detachable shoulder strap",
				"Brass hardware",
			},
			Stock: 34,
			Sale:  true,
		},
		{
			ID:          7,
			Name:        "4K Ultra HD Monitor",
			Price:       399.99,
			Image:       "/image.png",
			Category:    "Electronics",
			Rating:      4.4,
			ReviewCount: 1892,
			Description: "27-inch 4K UHD monitor with HDR support, perfect for content creators, gamers, and professionals who demand accurate colors.",
			Features: []string{
				"27-inch 4K UHD display",
				"HDR10 support",
				"99% sRGB color accuracy",
				"USB-C with 65W charging",
				"Height adjustable stand",
			},
			Stock: 56,
		},
		{
			ID:          8,
			Name:        "Mechanical Gaming Keyboard",
			Price:       129.99,
			Image:       "/image.png",
			Category:    "Electronics",
			Rating:      4.8,
			ReviewCount: 3567,
			Description: "Premium mechanical keyboard with hot-swappable switches, per-key RGB lighting, and aircraft-grade aluminum frame.",
			Features: []string{
				"Hot-swappable switches",
				"Per-key RGB lighting",
				"Aluminum frame",
				"N-key rollover",
				"Detachable USB-C cable",
			},
			Stock: 89,
		},
		{
			ID:          9,
			Name:        "Organic Face Serum",
			Price:       45.00,
			Image:       "/image.png",
			Category:    "Beauty",
			Rating:      4.9,
			ReviewCount: 4521,
			Description: "Luxurious organic face serum with vitamin C and hyaluronic acid. Brightens skin, reduces fine lines, and provides deep hydration.",
			Features: []string{
				"Vitamin C and hyaluronic acid",
				"100% organic ingredients",
				"Cruelty-free",
				"Suitable for all skin types",
				"1 oz bottle",
			},
			Stock: 167,
		},
		{
			ID:          10,
			Name:        "Running Shoes Gen 2",
			Price:       89.95,
			Image:       "/image.png",
			Category:    "Footwear",
			Rating:      4.3,
			ReviewCount: 2789,
			Description: "Lightweight running shoes with responsive cushioning and breathable mesh upper. Designed for comfort on long runs.",
			Features: []string{
				"Responsive foam cushioning",
				"Breathable mesh upper",
				"Rubber outsole for grip",
				"Reflective details",
				"Available in 8 colors",
			},
			Stock: 145,
		},
	}
}

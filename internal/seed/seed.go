// Package seed holds the demo data set the in-memory backend starts from:
// catalog, demo account, a pre-filled cart, order history, and offers.
package seed

import (
	"time"

	"rimss/internal/domain/cart"
	"rimss/internal/domain/offer"
	"rimss/internal/domain/order"
	"rimss/internal/domain/product"
	"rimss/internal/domain/user"
)

const (
	DemoUserID   = "user-1"
	DemoEmail    = "john.doe@example.com"
	DemoPassword = "password123"
)

func ts(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func DemoUser() user.User {
	return user.User{
		ID:        DemoUserID,
		FirstName: "John",
		LastName:  "Doe",
		Email:     DemoEmail,
		Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150",
		Role:      user.RoleUser,
		Phone:     "+1 (555) 123-4567",
		Address: &user.Address{
			Street:  "123 Main St",
			City:    "Anytown",
			State:   "CA",
			ZipCode: "12345",
			Country: "United States",
		},
		EmailVerified: true,
		IsActive:      true,
		CreatedAt:     ts("2024-01-01T00:00:00Z"),
	}
}

func Products() []product.Product {
	return []product.Product{
		{
			ID:                 "1",
			Name:               "Classic Merino Wool Sweater",
			Description:        "Luxuriously soft merino wool sweater with traditional cable knit pattern.",
			Price:              299.99,
			OriginalPrice:      399.99,
			Category:           "Clothing",
			Brand:              "RIMSS Heritage",
			Images:             []string{"https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=500"},
			Colors:             []string{"Navy", "Forest Green", "Burgundy", "Camel"},
			Sizes:              []string{"XS", "S", "M", "L", "XL", "XXL"},
			Stock:              50,
			Rating:             4.8,
			Reviews:            247,
			IsDiscounted:       true,
			DiscountPercentage: 25,
			IsFeatured:         true,
			CreatedAt:          ts("2024-01-15T10:00:00Z"),
			UpdatedAt:          ts("2024-01-15T10:00:00Z"),
		},
		{
			ID:          "2",
			Name:        "Premium Moleskin Trousers",
			Description: "Classic moleskin trousers crafted from the finest cotton.",
			Price:       189.99,
			Category:    "Clothing",
			Brand:       "RIMSS Country",
			Images:      []string{"https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=500"},
			Colors:      []string{"Olive", "Khaki", "Brown", "Navy"},
			Sizes:       []string{"28/30", "30/30", "32/30", "34/30", "36/30"},
			Stock:       75,
			Rating:      4.7,
			Reviews:     182,
			IsFeatured:  true,
			CreatedAt:   ts("2024-01-10T10:00:00Z"),
			UpdatedAt:   ts("2024-01-10T10:00:00Z"),
		},
		{
			ID:                 "3",
			Name:               "Signature Tattersall Shirt",
			Description:        "Iconic tattersall check shirt made from premium cotton.",
			Price:              149.99,
			OriginalPrice:      189.99,
			Category:           "Clothing",
			Brand:              "RIMSS Classic",
			Images:             []string{"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=500"},
			Colors:             []string{"Red/Navy Check", "Green/Brown Check", "Blue/White Check"},
			Sizes:              []string{"XS", "S", "M", "L", "XL", "XXL"},
			Stock:              100,
			Rating:             4.9,
			Reviews:            367,
			IsDiscounted:       true,
			DiscountPercentage: 20,
			IsFeatured:         true,
			CreatedAt:          ts("2024-01-05T10:00:00Z"),
			UpdatedAt:          ts("2024-01-05T10:00:00Z"),
		},
		{
			ID:          "4",
			Name:        "Fine Corduroy Blazer",
			Description: "Sophisticated corduroy blazer with modern cut and elbow patches.",
			Price:       449.99,
			Category:    "Clothing",
			Brand:       "RIMSS Luxury",
			Images:      []string{"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=500"},
			Colors:      []string{"Russet Brown", "Forest Green", "Navy"},
			Sizes:       []string{"36R", "38R", "40R", "42R", "44R"},
			Stock:       40,
			Rating:      4.8,
			Reviews:     134,
			IsFeatured:  true,
			CreatedAt:   ts("2024-01-12T10:00:00Z"),
			UpdatedAt:   ts("2024-01-12T10:00:00Z"),
		},
		{
			ID:                 "5",
			Name:               "Modern Cashmere Blend Sweater",
			Description:        "Contemporary slim-fit sweater made from luxurious cashmere blend.",
			Price:              279.99,
			OriginalPrice:      349.99,
			Category:           "Clothing",
			Brand:              "RIMSS Modern",
			Images:             []string{"https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=500"},
			Colors:             []string{"Charcoal", "Cream", "Light Grey", "Black"},
			Sizes:              []string{"XS", "S", "M", "L", "XL"},
			Stock:              60,
			Rating:             4.7,
			Reviews:            218,
			IsDiscounted:       true,
			DiscountPercentage: 20,
			IsFeatured:         true,
			CreatedAt:          ts("2024-01-08T10:00:00Z"),
			UpdatedAt:          ts("2024-01-08T10:00:00Z"),
		},
		{
			ID:          "6",
			Name:        "Heritage Leather Field Boots",
			Description: "Handcrafted waterproof field boots in full-grain leather.",
			Price:       389.99,
			Category:    "Footwear",
			Brand:       "RIMSS Heritage",
			Images:      []string{"https://images.unsplash.com/photo-1608256246200-53e635b5b65f?w=500"},
			Colors:      []string{"Cognac", "Dark Brown", "Black"},
			Sizes:       []string{"UK 6", "UK 7", "UK 8", "UK 9", "UK 10", "UK 11"},
			Stock:       45,
			Rating:      4.9,
			Reviews:     156,
			IsFeatured:  true,
			CreatedAt:   ts("2024-01-20T10:00:00Z"),
			UpdatedAt:   ts("2024-01-20T10:00:00Z"),
		},
		{
			ID:                 "7",
			Name:               "Children's Quilted Jacket",
			Description:        "Classic quilted jacket designed for children and outdoor activities.",
			Price:              129.99,
			OriginalPrice:      159.99,
			Category:           "Children",
			Brand:              "RIMSS Junior",
			Images:             []string{"https://images.unsplash.com/photo-1606791422814-b32c705fa100?w=500"},
			Colors:             []string{"Navy", "Olive", "Red"},
			Sizes:              []string{"2-3Y", "4-5Y", "6-7Y", "8-9Y", "10-11Y"},
			Stock:              80,
			Rating:             4.8,
			Reviews:            92,
			IsDiscounted:       true,
			DiscountPercentage: 18,
			CreatedAt:          ts("2024-01-18T10:00:00Z"),
			UpdatedAt:          ts("2024-01-18T10:00:00Z"),
		},
		{
			ID:          "8",
			Name:        "Leather and Canvas Weekend Bag",
			Description: "Luxurious weekend bag combining traditional canvas with leather trim.",
			Price:       299.99,
			Category:    "Accessories",
			Brand:       "RIMSS Accessories",
			Images:      []string{"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=500"},
			Colors:      []string{"Tan/Olive", "Brown/Khaki", "Black/Grey"},
			Sizes:       []string{"One Size"},
			Stock:       35,
			Rating:      4.7,
			Reviews:     78,
			IsFeatured:  true,
			CreatedAt:   ts("2024-01-14T10:00:00Z"),
			UpdatedAt:   ts("2024-01-14T10:00:00Z"),
		},
	}
}

// CartItems pre-fills the demo cart with two lines from the catalog.
func CartItems(catalog []product.Product) []cart.Item {
	return []cart.Item{
		{
			ID:            "cart-1",
			Product:       catalog[0],
			Quantity:      1,
			SelectedColor: "Navy",
			SelectedSize:  "M",
		},
		{
			ID:            "cart-2",
			Product:       catalog[2],
			Quantity:      2,
			SelectedColor: "Red/Navy Check",
			SelectedSize:  "M",
		},
	}
}

func Orders(u user.User, catalog []product.Product) []order.Order {
	ship := user.Address{
		Street:  "123 Main St",
		City:    "New York",
		State:   "NY",
		ZipCode: "10001",
		Country: "USA",
	}
	return []order.Order{
		{
			ID:   "order-1",
			User: u,
			Items: []cart.Item{
				{ID: "order-item-1", Product: catalog[1], Quantity: 1, SelectedColor: "Brown", SelectedSize: "32/30"},
			},
			TotalAmount:     189.99,
			Status:          order.StatusDelivered,
			ShippingAddress: ship,
			PaymentMethod:   "Credit Card",
			PaymentStatus:   order.PaymentCompleted,
			CreatedAt:       ts("2024-01-15T10:00:00Z"),
			UpdatedAt:       ts("2024-01-18T10:00:00Z"),
		},
		{
			ID:   "order-2",
			User: u,
			Items: []cart.Item{
				{ID: "order-item-2", Product: catalog[4], Quantity: 1, SelectedColor: "Black", SelectedSize: "M"},
				{ID: "order-item-3", Product: catalog[6], Quantity: 1, SelectedColor: "Red", SelectedSize: "6-7Y"},
			},
			TotalAmount:     509.98,
			Status:          order.StatusProcessing,
			ShippingAddress: ship,
			PaymentMethod:   "PayPal",
			PaymentStatus:   order.PaymentCompleted,
			CreatedAt:       ts("2024-01-20T10:00:00Z"),
			UpdatedAt:       ts("2024-01-20T10:00:00Z"),
		},
	}
}

func Offers() []offer.Offer {
	return []offer.Offer{
		{
			ID:                   "offer-1",
			Title:                "Winter Sale",
			Description:          "Get up to 40% off selected clothing",
			DiscountPercentage:   40,
			ValidFrom:            ts("2024-01-01T00:00:00Z"),
			ValidTo:              ts("2024-01-31T23:59:59Z"),
			IsActive:             true,
			ApplicableCategories: []string{"Clothing"},
			MinimumPurchase:      50,
			Image:                "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=500",
		},
		{
			ID:                   "offer-2",
			Title:                "Free Shipping",
			Description:          "Free shipping on orders over $100",
			ValidFrom:            ts("2024-01-01T00:00:00Z"),
			ValidTo:              ts("2024-12-31T23:59:59Z"),
			IsActive:             true,
			ApplicableCategories: []string{"All"},
			MinimumPurchase:      100,
			Image:                "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=500",
		},
		{
			ID:                   "offer-3",
			Title:                "New Customer Discount",
			Description:          "20% off your first purchase",
			DiscountPercentage:   20,
			ValidFrom:            ts("2024-01-01T00:00:00Z"),
			ValidTo:              ts("2024-12-31T23:59:59Z"),
			IsActive:             true,
			ApplicableCategories: []string{"All"},
			MinimumPurchase:      25,
			Image:                "https://images.unsplash.com/photo-1607082349566-187342175e2f?w=500",
		},
	}
}

package offer

import "time"

type Offer struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	DiscountPercentage   int       `json:"discount_percentage"`
	ValidFrom            time.Time `json:"valid_from"`
	ValidTo              time.Time `json:"valid_to"`
	IsActive             bool      `json:"is_active"`
	ApplicableCategories []string  `json:"applicable_categories"`
	MinimumPurchase      float64   `json:"minimum_purchase"`
	Image                string    `json:"image"`
}

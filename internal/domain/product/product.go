package product

import "time"

type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Price              float64   `json:"price"`
	OriginalPrice      float64   `json:"original_price,omitempty"`
	Category           string    `json:"category"`
	Brand              string    `json:"brand"`
	Images             []string  `json:"images,omitempty"`
	Colors             []string  `json:"colors,omitempty"`
	Sizes              []string  `json:"sizes,omitempty"`
	Stock              int       `json:"stock"`
	Rating             float64   `json:"rating"`
	Reviews            int       `json:"reviews"`
	IsDiscounted       bool      `json:"is_discounted"`
	DiscountPercentage int       `json:"discount_percentage,omitempty"`
	IsFeatured         bool      `json:"is_featured"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Filters narrows a catalog listing. Zero values mean "no constraint".
type Filters struct {
	Category     string
	IsDiscounted bool
	MinPrice     float64
	MaxPrice     float64
	Search       string
	Color        string
}

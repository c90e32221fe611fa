package cart

import "rimss/internal/domain/product"

// Item is one cart line: a product plus the chosen options and quantity.
// Line identity is the item ID, not the product ID; the same product with
// different color/size selections occupies distinct lines.
type Item struct {
	ID            string          `json:"id"`
	Product       product.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedColor string          `json:"selected_color,omitempty"`
	SelectedSize  string          `json:"selected_size,omitempty"`
}

package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResult is one search hit offered by a retailer. It is never mutated after the resolver builds it.
type ProductResult struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal
	Source      string
	ImageURL    *string
}

// NewProduct builds a ProductResult with no image. The identifier is derived
// from source and title, so the same catalog entry always has the same ID.
func NewProduct(title, description, price, source string) ProductResult {
	return ProductResult{
		ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte(source+"/"+title)),
		Title:       title,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Source:      source,
	}
}

// FormatPrice renders an amount the way the cart and checkout screens show it.
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

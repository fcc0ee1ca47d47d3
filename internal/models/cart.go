package models

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a line in the cart. Quantity is always at least 1.
type CartItem struct {
	ID       uuid.UUID
	Product  ProductResult
	Quantity int
}

// NewCartItem wraps a product into a single-quantity cart line.
func NewCartItem(product ProductResult) CartItem {
	return CartItem{ID: uuid.New(), Product: product, Quantity: 1}
}

// Subtotal is price times quantity.
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// Total sums every line subtotal.
func Total(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// SourceGroup is the set of lines bought from one retailer.
type SourceGroup struct {
	Source string
	Items  []CartItem
}

// GroupBySource groups lines by retailer, sources sorted alphabetically,
// lines kept in cart order.
func GroupBySource(items []CartItem) []SourceGroup {
	index := make(map[string]int)
	var groups []SourceGroup
	for _, item := range items {
		idx, ok := index[item.Product.Source]
		if !ok {
			idx = len(groups)
			index[item.Product.Source] = idx
			groups = append(groups, SourceGroup{Source: item.Product.Source})
		}
		groups[idx].Items = append(groups[idx].Items, item)
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Source < groups[j].Source })

	return groups
}

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPlaced OrderStatus = "placed"
)

// Order is a historical purchase record. Orders are append-only.
type Order struct {
	ID       uuid.UUID
	Platform string
	Summary  string
	Total    decimal.Decimal
	Date     time.Time
	Status   OrderStatus
}

// OrdersFromCheckout builds one placed order per retailer in the checked-out lines.
func OrdersFromCheckout(items []CartItem, now time.Time) []Order {
	groups := GroupBySource(items)
	orders := make([]Order, 0, len(groups))
	for _, group := range groups {
		titles := make([]string, 0, len(group.Items))
		for _, item := range group.Items {
			titles = append(titles, item.Product.Title)
		}
		orders = append(orders, Order{
			ID:       uuid.New(),
			Platform: group.Source,
			Summary:  strings.Join(titles, ", "),
			Total:    Total(group.Items),
			Date:     now,
			Status:   OrderStatusPlaced,
		})
	}
	return orders
}

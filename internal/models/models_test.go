package models_test

import (
	"testing"
	"time"

	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Parallel()

	a := models.NewProduct("Cortado", "Pickup at nearest store", "4.75", "La Colombe")
	b := models.NewProduct("Cortado", "Another description", "5", "La Colombe")
	c := models.NewProduct("Cortado", "Pickup at nearest store", "4.75", "Starbucks")

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.True(t, a.Price.Equal(decimal.RequireFromString("4.75")))
	assert.Nil(t, a.ImageURL)
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$799.00", models.FormatPrice(decimal.NewFromInt(799)))
	assert.Equal(t, "$4.75", models.FormatPrice(decimal.RequireFromString("4.75")))
	assert.Equal(t, "$0.00", models.FormatPrice(decimal.Zero))
}

func TestTotal(t *testing.T) {
	t.Parallel()

	latte := models.NewCartItem(models.NewProduct("Large Oat Latte", "Pickup at nearest store", "6.50", "La Colombe"))
	latte.Quantity = 3
	cortado := models.NewCartItem(models.NewProduct("Cortado", "Pickup at nearest store", "4.75", "La Colombe"))

	assert.Equal(t, 1, cortado.Quantity)
	assert.Equal(t, "19.50", latte.Subtotal().StringFixed(2))
	assert.Equal(t, "24.25", models.Total([]models.CartItem{latte, cortado}).StringFixed(2))
	assert.True(t, models.Total(nil).IsZero())
}

func TestGroupBySource(t *testing.T) {
	t.Parallel()

	shoe := models.NewCartItem(models.NewProduct("Nike Revolution 7", "Men's running shoes", "69.97", "Nike"))
	sofa := models.NewCartItem(models.NewProduct("Apartment Sofa", "Small space design", "379", "Amazon"))
	runner := models.NewCartItem(models.NewProduct("Nike Downshifter 13", "Everyday runner", "64.99", "Nike"))

	groups := models.GroupBySource([]models.CartItem{shoe, sofa, runner})

	require.Len(t, groups, 2)
	assert.Equal(t, "Amazon", groups[0].Source)
	assert.Equal(t, []models.CartItem{sofa}, groups[0].Items)
	assert.Equal(t, "Nike", groups[1].Source)
	assert.Equal(t, []models.CartItem{shoe, runner}, groups[1].Items)
}

func TestOrdersFromCheckout(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	shoe := models.NewCartItem(models.NewProduct("Nike Revolution 7", "Men's running shoes", "69.97", "Nike"))
	runner := models.NewCartItem(models.NewProduct("Nike Downshifter 13", "Everyday runner", "64.99", "Nike"))
	runner.Quantity = 2

	orders := models.OrdersFromCheckout([]models.CartItem{shoe, runner}, now)

	require.Len(t, orders, 1)
	assert.Equal(t, "Nike", orders[0].Platform)
	assert.Equal(t, "Nike Revolution 7, Nike Downshifter 13", orders[0].Summary)
	assert.Equal(t, "199.95", orders[0].Total.StringFixed(2))
	assert.Equal(t, now, orders[0].Date)
	assert.Equal(t, models.OrderStatusPlaced, orders[0].Status)
	assert.Empty(t, models.OrdersFromCheckout(nil, now))
}

func TestLookupPlatform(t *testing.T) {
	t.Parallel()

	p, ok := models.LookupPlatform(models.PlatformBestBuy)
	require.True(t, ok)
	assert.Equal(t, "Best Buy", p.Name)

	_, ok = models.LookupPlatform("Amazon")
	assert.False(t, ok)
	assert.Len(t, models.Platforms(), 7)
}

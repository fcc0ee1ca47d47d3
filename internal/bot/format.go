package bot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/Houeta/browser-commerce/internal/search"
	"github.com/Houeta/browser-commerce/internal/state"
)

const savedCard = "•••• •••• •••• 4242"

func formatProducts(products []models.ProductResult) string {
	var sb strings.Builder
	for i, p := range products {
		fmt.Fprintf(&sb, "%d. %s (%s) %s\n   %s\n", i+1, p.Title, p.Source, models.FormatPrice(p.Price), p.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatResults(res search.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Results for %q\n", res.Term)
	sb.WriteString(formatProducts(res.Products))
	fmt.Fprintf(&sb, "\n\nBrowser: %s\nSay /add <number> to add to cart.", res.URL)
	return sb.String()
}

func formatComparison(pair state.Comparison) string {
	var sb strings.Builder
	sb.WriteString("Side-by-side comparison\n")
	for _, p := range []models.ProductResult{pair.Left, pair.Right} {
		fmt.Fprintf(&sb, "%s (%s) %s\n   %s\n", p.Title, p.Source, models.FormatPrice(p.Price), p.Description)
	}
	sb.WriteString("Say /add iphone or /add pixel.")
	return sb.String()
}

func formatCart(cart []models.CartItem) string {
	if len(cart) == 0 {
		return "Your cart is empty."
	}

	var sb strings.Builder
	sb.WriteString("Your cart\n")
	for i, item := range cart {
		fmt.Fprintf(&sb, "%d. %s x%d (%s) %s\n", i+1, item.Product.Title, item.Quantity, item.Product.Source,
			models.FormatPrice(item.Subtotal()))
	}
	fmt.Fprintf(&sb, "Total %s\n/checkout to pay.", models.FormatPrice(models.Total(cart)))
	return sb.String()
}

func formatCheckout(checkout state.Checkout) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Step %d of 3: %s\n", checkout.Step, checkout.Step)

	switch checkout.Step {
	case state.StepReview:
		for _, group := range checkout.ItemsBySource() {
			sb.WriteString(group.Source + "\n")
			for _, item := range group.Items {
				fmt.Fprintf(&sb, "  %s %s\n", item.Product.Title, models.FormatPrice(item.Product.Price))
			}
		}
	case state.StepPayment:
		sb.WriteString("Payment method " + savedCard + "\n")
	case state.StepConfirm:
		fmt.Fprintf(&sb, "Total: %s\n", models.FormatPrice(checkout.Total()))
	}

	if checkout.IsFinalStep() {
		sb.WriteString("/next to place order, /cancel to stop.")
	} else {
		sb.WriteString("/next to continue, /cancel to stop.")
	}
	return sb.String()
}

func formatOrders(orders []models.Order) string {
	if len(orders) == 0 {
		return "No orders yet."
	}

	var sb strings.Builder
	sb.WriteString("Orders\n")
	for _, o := range slices.Backward(orders) {
		fmt.Fprintf(&sb, "%s %s: %s %s [%s]\n", o.Date.Format("2006-01-02"), o.Platform, o.Summary,
			models.FormatPrice(o.Total), o.Status)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatPlatforms(platforms []models.PlatformConnection) string {
	var sb strings.Builder
	sb.WriteString("Platform logins\n")
	for _, p := range platforms {
		status := "Not connected"
		if p.Connected {
			status = "Connected"
		}
		fmt.Fprintf(&sb, "%s (%s): %s\n", p.Name, p.ID, status)
	}
	sb.WriteString("/connect <id> or /disconnect <id>")
	return sb.String()
}

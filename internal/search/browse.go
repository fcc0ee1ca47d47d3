package search

import (
	"net/url"
	"strings"

	"github.com/Houeta/browser-commerce/internal/models"
)

const (
	laColombeLocator = "https://www.lacolombe.com/pages/store-locator"
	starbucksLocator = "https://www.starbucks.com/store-locator"
)

// DiningOrder builds a pickup order for a coffee venue. Unknown venues fall back to La Colombe.
func DiningOrder(venue string) Result {
	locator := laColombeLocator
	if strings.ToLower(venue) == "starbucks" {
		locator = starbucksLocator
	}

	return Result{
		Query: venue,
		Term:  venue,
		URL:   locator,
		Products: []models.ProductResult{
			models.NewProduct("Large Oat Latte", "Pickup at nearest store", "6.50", venue),
			models.NewProduct("Cortado", "Pickup at nearest store", "4.75", venue),
		},
	}
}

// BrowseURL is the page opened when the user browses a connected retailer.
// The stripped query becomes a retailer search when it is non-empty.
func BrowseURL(platformID, query string) string {
	term := ExtractSearchTerm(query)

	switch platformID {
	case models.PlatformAmazon:
		if term != "" {
			return "https://www.amazon.com/s?k=" + url.PathEscape(term)
		}
		return "https://www.amazon.com"
	case models.PlatformNike:
		if term != "" {
			return nikeSearchURL + url.PathEscape(term)
		}
		return "https://www.nike.com"
	case models.PlatformLaColombe:
		return "https://www.lacolombe.com"
	case models.PlatformStarbucks:
		return starbucksLocator
	default:
		return "https://www.amazon.com"
	}
}

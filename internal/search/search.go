package search

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/Houeta/browser-commerce/internal/models"
)

// DefaultTerm is searched when the utterance carries no product words.
const DefaultTerm = "running shoes"

const (
	furnitureURL  = "https://www.wayfair.com/furniture/sb0/sofas-c413892.html"
	nikeSearchURL = "https://www.nike.com/w?q="
)

// fillerPhrases are removed from utterances in this order.
var fillerPhrases = []string{
	"help me",
	"find",
	"search for",
	"compare",
	"add",
	"to cart",
	"under $",
	"cheaper alternative",
	"search what I see",
	"what I'm looking at",
	"options for",
	"that fits my",
	"fits my",
}

var fillerPatterns = compileFillers(fillerPhrases)

var furnitureKeywords = []string{"sofa", "living room", "furniture"}

func compileFillers(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(phrases))
	for _, phrase := range phrases {
		patterns = append(patterns, regexp.MustCompile("(?i)"+regexp.QuoteMeta(phrase)))
	}
	return patterns
}

// Connections reports which retailers the user is signed in to.
type Connections map[string]bool

// NewConnections builds a Connections set from platform identifiers.
func NewConnections(ids ...string) Connections {
	c := make(Connections, len(ids))
	for _, id := range ids {
		c[id] = true
	}
	return c
}

// IsConnected is safe on a nil set.
func (c Connections) IsConnected(platformID string) bool {
	return c[platformID]
}

// Result is what a voice query resolves to.
type Result struct {
	Query    string
	Term     string
	URL      string
	Products []models.ProductResult
}

// ExtractSearchTerm strips filler phrases from a voice query, case-insensitively, and trims the rest.
func ExtractSearchTerm(query string) string {
	clean := query
	for _, pattern := range fillerPatterns {
		clean = pattern.ReplaceAllLiteralString(clean, " ")
	}
	return strings.TrimSpace(clean)
}

// NormalizeTerm is ExtractSearchTerm with the default term substituted for an empty result.
func NormalizeTerm(query string) string {
	term := ExtractSearchTerm(query)
	if term == "" {
		return DefaultTerm
	}
	return term
}

// IsFurnitureQuery reports whether the raw utterance names furniture.
func IsFurnitureQuery(query string) bool {
	lower := strings.ToLower(query)
	for _, keyword := range furnitureKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Resolve maps a voice query to a search term and the matching catalog. Amazon
// items are appended only when Amazon is connected.
func Resolve(query string, connected Connections) Result {
	term := NormalizeTerm(query)

	if IsFurnitureQuery(query) {
		products := furnitureCatalog()
		if connected.IsConnected(models.PlatformAmazon) {
			products = append(products, amazonFurniture()...)
		}
		return Result{Query: query, Term: term, URL: furnitureURL, Products: products}
	}

	products := footwearCatalog()
	if connected.IsConnected(models.PlatformAmazon) {
		products = append(products, amazonFootwear()...)
	}

	return Result{
		Query:    query,
		Term:     term,
		URL:      nikeSearchURL + url.PathEscape(term),
		Products: products,
	}
}

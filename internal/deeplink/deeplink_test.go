package deeplink_test

import (
	"testing"

	"github.com/Houeta/browser-commerce/internal/deeplink"
	"github.com/stretchr/testify/assert"
)

func TestParseSearch(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		wantQuery string
		wantOK    bool
	}{
		{name: "encoded spaces", raw: "metabrowser://search?q=find%20running%20shoes", wantQuery: "find running shoes", wantOK: true},
		{name: "plus spaces", raw: "metabrowser://search?q=living+room+sofa", wantQuery: "living room sofa", wantOK: true},
		{name: "scheme is case insensitive", raw: "MetaBrowser://Search?q=boots", wantQuery: "boots", wantOK: true},
		{name: "missing query", raw: "metabrowser://search", wantQuery: "", wantOK: true},
		{name: "other host", raw: "metabrowser://cart?q=boots", wantOK: false},
		{name: "other scheme", raw: "https://search?q=boots", wantOK: false},
		{name: "garbage", raw: "::not a url", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, ok := deeplink.ParseSearch(tc.raw, "metabrowser")

			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantQuery, query)
		})
	}
}

func TestSearchLink_RoundTrip(t *testing.T) {
	link := deeplink.SearchLink("metabrowser", "sofa & chairs")

	query, ok := deeplink.ParseSearch(link, "metabrowser")

	assert.True(t, ok)
	assert.Equal(t, "sofa & chairs", query)
}

package deeplink

import (
	"net/url"
	"strings"
)

const searchHost = "search"

// ParseSearch extracts the query from a <scheme>://search?q=<query> link.
// ok is false for any other link. A link without q yields an empty query.
func ParseSearch(raw, scheme string) (string, bool) {
	link, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	if !strings.EqualFold(link.Scheme, scheme) || !strings.EqualFold(link.Host, searchHost) {
		return "", false
	}

	return link.Query().Get("q"), true
}

// SearchLink builds the link ParseSearch accepts.
func SearchLink(scheme, query string) string {
	link := url.URL{Scheme: scheme, Host: searchHost, RawQuery: url.Values{"q": {query}}.Encode()}
	return link.String()
}

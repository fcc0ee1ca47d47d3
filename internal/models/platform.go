package models

// Platform is a third-party retailer the user can sign in to.
type Platform struct {
	ID         string
	Name       string
	LogoDomain string
}

// PlatformConnection is a platform together with its persisted login flag.
type PlatformConnection struct {
	Platform
	Connected bool
}

// Platform identifiers.
const (
	PlatformAmazon    = "amazon"
	PlatformNike      = "nike"
	PlatformTarget    = "target"
	PlatformWalmart   = "walmart"
	PlatformBestBuy   = "bestbuy"
	PlatformLaColombe = "lacolombe"
	PlatformStarbucks = "starbucks"
)

// Platforms lists every retailer offered on the logins screen, in display order.
func Platforms() []Platform {
	return []Platform{
		{ID: PlatformAmazon, Name: "Amazon", LogoDomain: "amazon.com"},
		{ID: PlatformNike, Name: "Nike", LogoDomain: "nike.com"},
		{ID: PlatformTarget, Name: "Target", LogoDomain: "target.com"},
		{ID: PlatformWalmart, Name: "Walmart", LogoDomain: "walmart.com"},
		{ID: PlatformBestBuy, Name: "Best Buy", LogoDomain: "bestbuy.com"},
		{ID: PlatformLaColombe, Name: "La Colombe", LogoDomain: "lacolombe.com"},
		{ID: PlatformStarbucks, Name: "Starbucks", LogoDomain: "starbucks.com"},
	}
}

// LookupPlatform finds a platform by identifier.
func LookupPlatform(id string) (Platform, bool) {
	for _, p := range Platforms() {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

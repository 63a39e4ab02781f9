package config

import "time"

// Market points at the Rolimons endpoints the fetcher polls.
type Market struct {
	ActivityURL    string        `env:"MARKET_ACTIVITY_URL" envDefault:"https://api.rolimons.com/market/v1/dealactivity" validate:"url"`
	ItemDetailsURL string        `env:"MARKET_ITEM_DETAILS_URL" envDefault:"https://api.rolimons.com/items/v1/itemdetails" validate:"url"`
	Timeout        time.Duration `env:"MARKET_TIMEOUT" envDefault:"15s"`
}

// Enrich configures the per-deal side lookups: thumbnail resolution and the
// storefront sold-status scrape.
type Enrich struct {
	ThumbnailURL  string        `env:"ENRICH_THUMBNAIL_URL" envDefault:"https://images.adurite.com/images" validate:"url"`
	StorefrontURL string        `env:"ENRICH_STOREFRONT_URL" envDefault:"https://www.roblox.com/catalog" validate:"url"`
	Timeout       time.Duration `env:"ENRICH_TIMEOUT" envDefault:"15s"`
	// ReferencePrice is the fixed threshold the scraped price is compared
	// against: above it the item counts as still available.
	ReferencePrice int64 `env:"ENRICH_REFERENCE_PRICE" envDefault:"3600" validate:"gt=0"`
}

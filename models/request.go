package models

// ScrapeRequest is the payload for POST /api/v1/scrape.
type ScrapeRequest struct {
	// URL is the vendor product page to scrape. Required, http/https only,
	// and the host must belong to the configured vendor allow-list.
	URL string `json:"url" binding:"required,url"`

	// KnownPlantTypes is an optional list of plant-type names already in the
	// caller's catalog. Used to disambiguate plant vs. variety when splitting
	// the page title.
	KnownPlantTypes []string `json:"knownPlantTypes,omitempty"`

	// SkipAiFallback suppresses the web-search fallback stage even when the
	// heuristic extraction leaves canonical fields incomplete.
	SkipAiFallback bool `json:"skipAiFallback,omitempty"`

	// MaxAge opts into the outcome cache: a cached outcome younger than
	// MaxAge milliseconds is returned without re-scraping. 0 disables caching.
	MaxAge int `json:"maxAge,omitempty" binding:"omitempty,min=0"`
}

// PageMeta is the social metadata pulled from any HTML page. It is the
// guaranteed minimum payload when every later extraction stage fails.
type PageMeta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
}

// PageSnapshot is the fetched page plus its derived origin and metadata.
type PageSnapshot struct {
	HTML   string
	Origin string // scheme + host, e.g. "https://www.johnnyseeds.com"
	Meta   PageMeta
}

// Identity names a catalog entry: the plant, its variety, and the vendor.
type Identity struct {
	PlantName   string `json:"plant_name"`
	VarietyName string `json:"variety_name"`
	VendorName  string `json:"vendor_name"`
}

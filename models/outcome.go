package models

// ScrapeStatus classifies how complete a scrape outcome is.
type ScrapeStatus string

const (
	// StatusSuccess: all four canonical fields present, none of
	// sun/spacing/germination backfilled from defaults.
	StatusSuccess ScrapeStatus = "Success"

	// StatusPartial: at least one canonical field missing or default-derived.
	StatusPartial ScrapeStatus = "Partial"

	// StatusAISearch: the web-search fallback ran and contributed at least
	// one usable field.
	StatusAISearch ScrapeStatus = "AI_SEARCH"

	// StatusFailed: neither extraction, identity-from-URL, nor metadata
	// produced anything useful.
	StatusFailed ScrapeStatus = "Failed"
)

// ScrapeOutcome is the response body for POST /api/v1/scrape: the finalized
// extraction merged with identity and status. One request produces exactly
// one outcome; nothing is persisted here.
type ScrapeOutcome struct {
	PlantName   string `json:"plant_name"`
	VarietyName string `json:"variety_name"`
	VendorName  string `json:"vendor_name"`

	Sun                     string     `json:"sun,omitempty"`
	SunSource               Provenance `json:"sunSource,omitempty"`
	Water                   string     `json:"water,omitempty"`
	WaterSource             Provenance `json:"waterSource,omitempty"`
	PlantSpacing            string     `json:"plant_spacing,omitempty"`
	PlantSpacingSource      Provenance `json:"plant_spacingSource,omitempty"`
	DaysToGermination       string     `json:"days_to_germination,omitempty"`
	DaysToGerminationSource Provenance `json:"days_to_germinationSource,omitempty"`
	HarvestDays             string     `json:"harvest_days,omitempty"`
	HarvestDaysSource       Provenance `json:"harvest_daysSource,omitempty"`

	PlantDescription string `json:"plant_description,omitempty"`
	GrowingNotes     string `json:"growing_notes,omitempty"`
	LatinName        string `json:"latin_name,omitempty"`
	LifeCycle        string `json:"life_cycle,omitempty"`
	HybridStatus     string `json:"hybrid_status,omitempty"`
	VendorNotes      string `json:"vendor_notes,omitempty"`

	ImageURL   string `json:"imageUrl,omitempty"`
	ImageError bool   `json:"image_error,omitempty"`

	ScrapeStatus   ScrapeStatus `json:"scrape_status"`
	ScrapeErrorLog string       `json:"scrape_error_log,omitempty"`

	// CacheStatus is "hit" or "miss" when the caller opted into caching.
	CacheStatus string `json:"cache_status,omitempty"`

	// Error is populated only on request-level failures (bad input, auth).
	Error *ErrorDetail `json:"error,omitempty"`
}

// ApplyExtraction copies an Extraction's fields into the outcome.
func (o *ScrapeOutcome) ApplyExtraction(e *Extraction) {
	o.Sun, o.SunSource = e.Sun.Value, e.Sun.Source
	o.Water, o.WaterSource = e.Water.Value, e.Water.Source
	o.PlantSpacing, o.PlantSpacingSource = e.PlantSpacing.Value, e.PlantSpacing.Source
	o.DaysToGermination, o.DaysToGerminationSource = e.DaysToGermination.Value, e.DaysToGermination.Source
	o.HarvestDays, o.HarvestDaysSource = e.HarvestDays.Value, e.HarvestDays.Source

	o.PlantDescription = e.PlantDescription
	o.GrowingNotes = e.GrowingNotes
	o.LatinName = e.LatinName
	o.LifeCycle = e.LifeCycle
	o.HybridStatus = e.HybridStatus
	o.VendorNotes = e.VendorNotes
	o.ImageURL = e.ImageURL
}

// ApplyIdentity copies the identity triple into the outcome.
func (o *ScrapeOutcome) ApplyIdentity(id Identity) {
	o.PlantName = id.PlantName
	o.VarietyName = id.VarietyName
	o.VendorName = id.VendorName
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Vendors int    `json:"vendors"`
	Version string `json:"version"`
}

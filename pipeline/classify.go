package pipeline

import "github.com/sowtrack/seedscrape/models"

// scrapedBigThree reports whether sun, spacing, and germination are all
// present with scraped provenance. Harvest days may come from the defaults
// table without costing Success.
func scrapedBigThree(e *models.Extraction) bool {
	scraped := func(f models.Field) bool {
		return !f.Empty() && f.Source == models.SourceScraped
	}
	return scraped(e.Sun) && scraped(e.PlantSpacing) && scraped(e.DaysToGermination)
}

// NeedsSearch reports whether the web-search fallback should run: any
// canonical field still missing or default-derived.
func NeedsSearch(e *models.Extraction) bool {
	incomplete := func(f models.Field) bool {
		return f.Empty() || f.Source == models.SourceDefault
	}
	return incomplete(e.Sun) || incomplete(e.PlantSpacing) ||
		incomplete(e.DaysToGermination) || incomplete(e.HarvestDays)
}

// Classify computes the outcome status. A search stage that contributed data
// wins regardless of completeness; otherwise Success requires all four
// canonical fields present with sun/spacing/germination scraped.
func Classify(e *models.Extraction, searchProvided bool) models.ScrapeStatus {
	if searchProvided {
		return models.StatusAISearch
	}
	if e.BigFourComplete() && scrapedBigThree(e) {
		return models.StatusSuccess
	}
	return models.StatusPartial
}

package llm

import (
	"strings"

	"github.com/sowtrack/seedscrape/models"
)

// scheduleEntry is the regional growing baseline consulted after a
// successful structured extraction, to backfill canonical fields the model
// did not return.
type scheduleEntry struct {
	Sun         string
	Spacing     string
	Germination string
	HarvestDays string
}

// plantingSchedules maps region → category → baseline. Regions shift the
// germination window (cool springs germinate slower) but share most values.
var plantingSchedules = map[string]map[string]scheduleEntry{
	"northeast": {
		"tomato":   {"Full Sun", "24-36 inches", "6-12 days", "65-85 days"},
		"pepper":   {"Full Sun", "18-24 inches", "8-14 days", "65-90 days"},
		"bean":     {"Full Sun", "4-6 inches", "8-10 days", "50-60 days"},
		"pea":      {"Full Sun to Part Shade", "2-3 inches", "9-14 days", "55-70 days"},
		"lettuce":  {"Part Shade", "6-12 inches", "2-10 days", "45-60 days"},
		"squash":   {"Full Sun", "24-36 inches", "7-10 days", "45-60 days"},
		"cucumber": {"Full Sun", "12-18 inches", "4-10 days", "50-70 days"},
		"carrot":   {"Full Sun", "2-3 inches", "12-21 days", "60-80 days"},
		"kale":     {"Full Sun to Part Shade", "12-18 inches", "5-10 days", "50-65 days"},
		"basil":    {"Full Sun", "10-12 inches", "5-10 days", "60-70 days"},
	},
	"southeast": {
		"tomato":   {"Full Sun", "24-36 inches", "5-9 days", "60-80 days"},
		"pepper":   {"Full Sun", "18-24 inches", "7-12 days", "60-85 days"},
		"bean":     {"Full Sun", "4-6 inches", "6-9 days", "48-58 days"},
		"pea":      {"Full Sun", "2-3 inches", "7-12 days", "55-65 days"},
		"lettuce":  {"Part Shade", "6-12 inches", "2-8 days", "45-55 days"},
		"squash":   {"Full Sun", "24-36 inches", "6-9 days", "42-55 days"},
		"cucumber": {"Full Sun", "12-18 inches", "3-8 days", "48-65 days"},
		"okra":     {"Full Sun", "12-18 inches", "6-12 days", "55-65 days"},
	},
	"midwest": {
		"tomato": {"Full Sun", "24-36 inches", "6-12 days", "65-85 days"},
		"pepper": {"Full Sun", "18-24 inches", "8-14 days", "65-90 days"},
		"bean":   {"Full Sun", "4-6 inches", "7-10 days", "50-60 days"},
		"corn":   {"Full Sun", "8-12 inches", "7-10 days", "65-95 days"},
		"squash": {"Full Sun", "24-36 inches", "7-10 days", "45-60 days"},
	},
	"west": {
		"tomato":  {"Full Sun", "24-36 inches", "5-10 days", "60-85 days"},
		"pepper":  {"Full Sun", "18-24 inches", "7-14 days", "60-90 days"},
		"lettuce": {"Full Sun to Part Shade", "6-12 inches", "2-8 days", "45-60 days"},
		"carrot":  {"Full Sun", "2-3 inches", "10-18 days", "60-75 days"},
	},
}

// ScheduleBackfill fills canonical fields still missing after structured
// extraction from the region's schedule table. Values are tagged scraped
// since they complete the AI stage's answer, not the defaults stage.
func ScheduleBackfill(ext *models.Extraction, region, category string) {
	byCategory, ok := plantingSchedules[strings.ToLower(region)]
	if !ok {
		byCategory = plantingSchedules["northeast"]
	}
	entry, ok := byCategory[strings.ToLower(category)]
	if !ok {
		return
	}
	ext.Sun.Set(ifEmpty(ext.Sun, entry.Sun))
	ext.PlantSpacing.Set(ifEmpty(ext.PlantSpacing, entry.Spacing))
	ext.DaysToGermination.Set(ifEmpty(ext.DaysToGermination, entry.Germination))
	ext.HarvestDays.Set(ifEmpty(ext.HarvestDays, entry.HarvestDays))
}

func ifEmpty(f models.Field, v string) string {
	if f.Empty() {
		return v
	}
	return ""
}

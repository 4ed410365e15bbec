// Package defaults backfills missing growing-spec fields from a static
// per-category table, tagging each backfilled field's provenance.
package defaults

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sowtrack/seedscrape/models"
)

// Entry is the default growing spec for one plant category.
type Entry struct {
	Sun         string
	Water       string
	Spacing     string
	Germination string
	HarvestDays string
	LifeCycle   string
}

// table maps a lowercase category key to its defaults. Multi-word keys are
// matched before their shorter substrings at resolution time.
var table = map[string]Entry{
	"tomato":      {"Full Sun", "1-2 inches per week", "24-36 inches", "5-10 days", "60-85 days", "Annual"},
	"pepper":      {"Full Sun", "1-2 inches per week", "18-24 inches", "7-14 days", "60-90 days", "Annual"},
	"bean":        {"Full Sun", "1 inch per week", "4-6 inches", "7-10 days", "50-60 days", "Annual"},
	"bush beans":  {"Full Sun", "1 inch per week", "4-6 inches", "7-10 days", "50-55 days", "Annual"},
	"pole beans":  {"Full Sun", "1 inch per week", "6-9 inches", "7-10 days", "60-70 days", "Annual"},
	"pea":         {"Full Sun to Part Shade", "1 inch per week", "2-3 inches", "7-14 days", "55-70 days", "Annual"},
	"sweet pea":   {"Full Sun to Part Shade", "1 inch per week", "6 inches", "10-21 days", "75-85 days", "Annual"},
	"corn":        {"Full Sun", "1-1.5 inches per week", "8-12 inches", "7-10 days", "60-100 days", "Annual"},
	"squash":      {"Full Sun", "1-1.5 inches per week", "24-36 inches", "7-10 days", "45-60 days", "Annual"},
	"zucchini":    {"Full Sun", "1-1.5 inches per week", "24-36 inches", "7-10 days", "45-55 days", "Annual"},
	"pumpkin":     {"Full Sun", "1-1.5 inches per week", "36-60 inches", "7-10 days", "90-120 days", "Annual"},
	"cucumber":    {"Full Sun", "1-2 inches per week", "12-18 inches", "3-10 days", "50-70 days", "Annual"},
	"melon":       {"Full Sun", "1-2 inches per week", "24-36 inches", "5-10 days", "70-100 days", "Annual"},
	"watermelon":  {"Full Sun", "1-2 inches per week", "36-60 inches", "5-10 days", "70-100 days", "Annual"},
	"lettuce":     {"Part Shade", "1 inch per week", "6-12 inches", "2-10 days", "45-60 days", "Annual"},
	"spinach":     {"Full Sun to Part Shade", "1 inch per week", "3-6 inches", "5-14 days", "35-50 days", "Annual"},
	"kale":        {"Full Sun to Part Shade", "1-1.5 inches per week", "12-18 inches", "5-10 days", "50-65 days", "Biennial"},
	"chard":       {"Full Sun to Part Shade", "1 inch per week", "6-12 inches", "5-10 days", "50-60 days", "Biennial"},
	"arugula":     {"Full Sun to Part Shade", "1 inch per week", "3-6 inches", "5-7 days", "30-40 days", "Annual"},
	"radish":      {"Full Sun", "1 inch per week", "1-2 inches", "3-7 days", "22-30 days", "Annual"},
	"carrot":      {"Full Sun", "1 inch per week", "2-3 inches", "10-21 days", "60-80 days", "Biennial"},
	"beet":        {"Full Sun to Part Shade", "1 inch per week", "3-4 inches", "5-10 days", "50-70 days", "Biennial"},
	"turnip":      {"Full Sun", "1 inch per week", "3-4 inches", "5-10 days", "40-60 days", "Biennial"},
	"onion":       {"Full Sun", "1 inch per week", "3-4 inches", "7-14 days", "90-120 days", "Biennial"},
	"leek":        {"Full Sun", "1 inch per week", "4-6 inches", "10-14 days", "100-120 days", "Biennial"},
	"garlic":      {"Full Sun", "0.5-1 inch per week", "4-6 inches", "14-21 days", "240-270 days", "Perennial"},
	"broccoli":    {"Full Sun", "1-1.5 inches per week", "18-24 inches", "5-10 days", "60-90 days", "Annual"},
	"cauliflower": {"Full Sun", "1-1.5 inches per week", "18-24 inches", "5-10 days", "60-85 days", "Annual"},
	"cabbage":     {"Full Sun", "1-1.5 inches per week", "12-24 inches", "5-10 days", "65-95 days", "Biennial"},
	"eggplant":    {"Full Sun", "1-1.5 inches per week", "18-24 inches", "7-14 days", "65-85 days", "Annual"},
	"okra":        {"Full Sun", "1 inch per week", "12-18 inches", "7-14 days", "55-65 days", "Annual"},
	"basil":       {"Full Sun", "1 inch per week", "10-12 inches", "5-10 days", "60-70 days", "Annual"},
	"cilantro":    {"Full Sun to Part Shade", "1 inch per week", "6-8 inches", "7-10 days", "45-70 days", "Annual"},
	"dill":        {"Full Sun", "1 inch per week", "10-12 inches", "10-14 days", "40-60 days", "Annual"},
	"parsley":     {"Full Sun to Part Shade", "1 inch per week", "6-8 inches", "14-28 days", "70-90 days", "Biennial"},
	"sage":        {"Full Sun", "0.5-1 inch per week", "18-24 inches", "10-21 days", "75-80 days", "Perennial"},
	"thyme":       {"Full Sun", "0.5 inch per week", "12-18 inches", "14-28 days", "90-180 days", "Perennial"},
	"oregano":     {"Full Sun", "0.5 inch per week", "8-12 inches", "7-14 days", "80-90 days", "Perennial"},
	"chives":      {"Full Sun to Part Shade", "1 inch per week", "8-12 inches", "10-14 days", "75-85 days", "Perennial"},
	"lavender":    {"Full Sun", "0.5 inch per week", "18-24 inches", "14-28 days", "90-200 days", "Perennial"},
	"zinnia":      {"Full Sun", "1 inch per week", "6-18 inches", "5-7 days", "60-70 days", "Annual"},
	"sunflower":   {"Full Sun", "1 inch per week", "6-24 inches", "7-10 days", "70-100 days", "Annual"},
	"marigold":    {"Full Sun", "1 inch per week", "8-12 inches", "5-7 days", "50-60 days", "Annual"},
	"cosmos":      {"Full Sun", "0.5-1 inch per week", "12-18 inches", "7-10 days", "60-90 days", "Annual"},
	"nasturtium":  {"Full Sun to Part Shade", "1 inch per week", "8-12 inches", "7-12 days", "55-65 days", "Annual"},
	"poppy":       {"Full Sun", "0.5-1 inch per week", "6-10 inches", "10-20 days", "60-90 days", "Annual"},
	"snapdragon":  {"Full Sun to Part Shade", "1 inch per week", "6-12 inches", "8-14 days", "80-100 days", "Annual"},
	"calendula":   {"Full Sun to Part Shade", "1 inch per week", "8-12 inches", "5-14 days", "50-60 days", "Annual"},
	"echinacea":   {"Full Sun to Part Shade", "1 inch per week", "18-24 inches", "10-20 days", "90-120 days", "Perennial"},

	"morning glory": {"Full Sun", "1 inch per week", "6-12 inches", "5-21 days", "60-120 days", "Annual"},
	"sweet corn":    {"Full Sun", "1-1.5 inches per week", "8-12 inches", "7-10 days", "70-95 days", "Annual"},
}

var reDayCount = regexp.MustCompile(`\d+`)

// ResolveCategory finds the category key for a plant. The type hint wins when
// it matches a key; otherwise the identity plant name is searched for the
// longest key appearing as a word substring. Returns "" when nothing matches.
func ResolveCategory(typeHint, plantName string) string {
	if key := longestKey(typeHint); key != "" {
		return key
	}
	return longestKey(plantName)
}

func longestKey(text string) string {
	lower := " " + strings.ToLower(strings.TrimSpace(text)) + " "
	if lower == "  " {
		return ""
	}
	best := ""
	for key := range table {
		if len(key) <= len(best) {
			continue
		}
		if strings.Contains(lower, " "+key+" ") ||
			strings.Contains(lower, " "+key+"s ") ||
			strings.Contains(lower, " "+key+"es ") {
			best = key
		}
	}
	return best
}

// Lookup returns the defaults entry for a category key.
func Lookup(category string) (Entry, bool) {
	e, ok := table[strings.ToLower(category)]
	return e, ok
}

// Apply backfills empty growing-spec fields of ext from the category's
// defaults, tagging each backfilled field SourceDefault. Fields that already
// hold a value keep their scraped provenance. The harvest-days default is
// applied only when its numeric day count parses strictly between 0 and 365.
func Apply(ext *models.Extraction, category string) {
	entry, ok := Lookup(category)
	if !ok {
		return
	}
	backfill := func(f *models.Field, def string) {
		if f.Empty() && def != "" {
			f.Value = def
			f.Source = models.SourceDefault
		}
	}
	backfill(&ext.Sun, entry.Sun)
	backfill(&ext.Water, entry.Water)
	backfill(&ext.PlantSpacing, entry.Spacing)
	backfill(&ext.DaysToGermination, entry.Germination)
	if days, ok := parseDayCount(entry.HarvestDays); ok && days > 0 && days < 365 {
		backfill(&ext.HarvestDays, entry.HarvestDays)
	}
	if ext.LifeCycle == "" {
		ext.LifeCycle = entry.LifeCycle
	}
}

// parseDayCount pulls the first integer out of a "60-85 days" style string.
func parseDayCount(s string) (int, bool) {
	m := reDayCount.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

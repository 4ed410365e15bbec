package vendors

import (
	"regexp"
	"strings"

	"github.com/sowtrack/seedscrape/models"
	"github.com/sowtrack/seedscrape/sanitize"
)

// Field length caps shared by all parsers.
const (
	maxSpecLen  = 60
	maxLatinLen = 80
)

// anchors is one vendor family's extraction strategy: CSS anchors for each
// block, with the fuzzy keyword extractor as the universal fallback. Most
// vendor parsers are an anchors value; a handful wrap it with extra rules.
type anchors struct {
	name string

	image       []string
	description []string
	growing     []string

	sun         []string
	spacing     []string
	germination []string
	maturity    []string
	latin       []string
	lifeCycle   []string
}

func (a *anchors) Name() string { return a.name }

func (a *anchors) Parse(p *Page) *models.Extraction {
	ex := &models.Extraction{}

	ex.ImageURL = imageURL(p, a.image...)
	ex.PlantDescription = description(p, a.description...)
	ex.GrowingNotes = growingNotes(p, a.growing...)

	ex.Sun.Set(anchorSpec(p, a.sun, sanitize.SunKeywords, maxSpecLen))
	ex.PlantSpacing.Set(anchorSpec(p, a.spacing, sanitize.SpacingKeywords, maxSpecLen))
	ex.DaysToGermination.Set(anchorSpec(p, a.germination, sanitize.GerminationKeywords, maxSpecLen))
	ex.HarvestDays.Set(anchorSpec(p, a.maturity, sanitize.MaturityKeywords, maxSpecLen))

	ex.LatinName = latinName(p, a.latin)
	ex.LifeCycle = lifeCycle(p, a.lifeCycle)
	ex.HybridStatus = hybridStatus(p)

	return ex
}

// latinName prefers anchored botanical-name elements, then the fuzzy
// extractor, and validates the result against binomial shape.
func latinName(p *Page, selectors []string) string {
	v := anchorText(p, selectors, maxLatinLen)
	if v == "" {
		v = sanitize.Keyword(p.HTML, sanitize.LatinKeywords, maxLatinLen)
	}
	v = strings.TrimSpace(v)
	if v == "" || !reBinomial.MatchString(v) {
		return ""
	}
	return v
}

// reBinomial accepts "Genus species" with optional subspecies/variety parts.
var reBinomial = regexp.MustCompile(`^[A-Z][a-z-]+ [a-z][a-z-]+( (var\.|subsp\.|ssp\.|x) ?[a-z-]+)?$`)

var reLifeCycleWord = regexp.MustCompile(`(?i)\b(annual|perennial|biennial|tender perennial|hardy annual|half-hardy annual)\b`)

// lifeCycle tries anchored elements first, then scans the visible page text
// for a life-cycle word.
func lifeCycle(p *Page, selectors []string) string {
	if v := anchorText(p, selectors, maxSpecLen); v != "" {
		if m := reLifeCycleWord.FindString(v); m != "" {
			return titleWord(m)
		}
	}
	if v := sanitize.Keyword(p.HTML, sanitize.LifeCycleKeywords, maxSpecLen); v != "" {
		if m := reLifeCycleWord.FindString(v); m != "" {
			return titleWord(m)
		}
	}
	return ""
}

var reHybrid = regexp.MustCompile(`(?i)\b(f1(?:\s+hybrid)?|hybrid|open[- ]pollinated|heirloom|op)\b`)

// hybridStatus classifies the listing from page text markers. F1 beats the
// bare "hybrid" marker; heirloom and open-pollinated are synonyms for the
// catalog's purposes.
func hybridStatus(p *Page) string {
	text := p.Meta.Title + " " + p.Meta.Description
	matches := reHybrid.FindAllString(text, -1)
	if len(matches) == 0 {
		matches = reHybrid.FindAllString(p.HTML, 20)
	}

	var sawHybrid, sawOP bool
	for _, m := range matches {
		switch strings.ToLower(strings.ReplaceAll(m, "-", " ")) {
		case "f1", "f1 hybrid":
			return "F1 Hybrid"
		case "hybrid":
			sawHybrid = true
		case "open pollinated", "op", "heirloom":
			sawOP = true
		}
	}
	switch {
	case sawHybrid:
		return "Hybrid"
	case sawOP:
		return "Open-Pollinated"
	default:
		return ""
	}
}

func titleWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	parts := strings.Fields(s)
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

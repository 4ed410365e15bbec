package vendors

import (
	"regexp"

	"github.com/sowtrack/seedscrape/models"
	"github.com/sowtrack/seedscrape/sanitize"
)

// reSunLiteral recovers a sun requirement when no keyword label exists at
// all — pages that just say "Full Sun" somewhere near the top.
var reSunLiteral = regexp.MustCompile(`(?i)\b(full sun to part(?:ial)? shade|full sun|part(?:ial)? sun|part(?:ial)? shade|full shade|dappled shade)\b`)

// generic is the parser for hosts with no vendor entry: the fuzzy keyword
// extractor against every canonical field, plus the literal-phrase sun
// fallback. Any field with no keyword match stays empty.
type generic struct{}

func newGeneric() Parser { return &generic{} }

func (g *generic) Name() string { return "generic" }

func (g *generic) Parse(p *Page) *models.Extraction {
	ex := &models.Extraction{}

	ex.ImageURL = imageURL(p)
	ex.PlantDescription = description(p)
	ex.GrowingNotes = growingNotes(p, ".growing-instructions", "#growing", ".planting-guide")

	ex.Sun.Set(sanitize.Keyword(p.HTML, sanitize.SunKeywords, maxSpecLen))
	if ex.Sun.Empty() {
		if m := reSunLiteral.FindString(p.HTML); m != "" {
			ex.Sun.Set(titleWord(m))
		}
	}
	ex.PlantSpacing.Set(sanitize.Keyword(p.HTML, sanitize.SpacingKeywords, maxSpecLen))
	ex.DaysToGermination.Set(sanitize.Keyword(p.HTML, sanitize.GerminationKeywords, maxSpecLen))
	ex.HarvestDays.Set(sanitize.Keyword(p.HTML, sanitize.MaturityKeywords, maxSpecLen))

	ex.LatinName = latinName(p, nil)
	ex.LifeCycle = lifeCycle(p, nil)
	ex.HybridStatus = hybridStatus(p)

	return ex
}

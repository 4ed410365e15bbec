// Package vendors holds the per-vendor extraction strategies. A parser is a
// pure function over a fetched page; vendor selection happens once, by host,
// and never leaks into the orchestrator.
package vendors

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sowtrack/seedscrape/models"
)

// Parser extracts a partial record from a vendor product page.
type Parser interface {
	// Name identifies the parser in logs.
	Name() string

	// Parse reads the page and returns whatever fields it could extract.
	// It must not panic on arbitrary HTML; missing anchors simply leave
	// fields empty.
	Parse(p *Page) *models.Extraction
}

// Page is a fetched product page handed to a parser. The goquery document is
// parsed lazily and at most once.
type Page struct {
	HTML   string
	Origin string
	Meta   models.PageMeta

	doc    *goquery.Document
	docErr error
	parsed bool
}

// NewPage wraps a fetched page for parsing.
func NewPage(html, origin string, meta models.PageMeta) *Page {
	return &Page{HTML: html, Origin: origin, Meta: meta}
}

// Doc returns the parsed document, or nil when the HTML is unparseable.
func (p *Page) Doc() *goquery.Document {
	if !p.parsed {
		p.parsed = true
		p.doc, p.docErr = goquery.NewDocumentFromReader(strings.NewReader(p.HTML))
	}
	if p.docErr != nil {
		return nil
	}
	return p.doc
}

// registration binds a host substring to a parser. First match wins.
type registration struct {
	hostPart string
	parser   Parser
}

// Registry maps request hosts to vendor parsers, falling back to the generic
// parser when no host matches.
type Registry struct {
	entries []registration
	generic Parser
}

// NewRegistry builds the static vendor table.
func NewRegistry() *Registry {
	johnnys := newJohnnySeeds()
	rareseeds := newRareSeeds()
	burpee := newBurpee()
	eden := newEdenBrothers()
	territorial := newTerritorial()
	botanical := newBotanicalInterests()
	parkFamily := newParkSeedFamily()
	swallowtail := newSwallowtail()
	selectSeeds := newSelectSeeds()
	highMowing := newHighMowing()
	fedco := newFedco()
	southern := newSouthernExposure()
	seedSavers := newSeedSavers()
	kitchenGarden := newKitchenGarden()
	renees := newReneesGarden()
	hudsonValley := newHudsonValley()
	trueLeaf := newTrueLeaf()
	outsidePride := newOutsidePride()
	sowRight := newSowRight()
	marys := newMarysHeirloom()
	pinetree := newPinetree()
	harris := newHarrisSeeds()
	gurneys := newGurneys()

	return &Registry{
		entries: []registration{
			{"johnnyseeds", johnnys},
			{"rareseeds", rareseeds},
			{"burpee", burpee},
			{"edenbrothers", eden},
			{"territorialseed", territorial},
			{"botanicalinterests", botanical},
			{"parkseed", parkFamily},
			{"waysidegardens", parkFamily},
			{"jacksonandperkins", parkFamily},
			{"swallowtailgardenseeds", swallowtail},
			{"selectseeds", selectSeeds},
			{"highmowingseeds", highMowing},
			{"fedcoseeds", fedco},
			{"southernexposure", southern},
			{"seedsavers", seedSavers},
			{"kitchengardenseeds", kitchenGarden},
			{"reneesgarden", renees},
			{"hudsonvalleyseed", hudsonValley},
			{"trueleafmarket", trueLeaf},
			{"outsidepride", outsidePride},
			{"sowrightseeds", sowRight},
			{"marysheirloomseeds", marys},
			{"superseeds", pinetree},
			{"pinetreegardenseeds", pinetree},
			{"harrisseeds", harris},
			{"gurneys", gurneys},
		},
		generic: newGeneric(),
	}
}

// For selects the parser for a request host by case-insensitive substring
// match against the static table. No match falls through to the generic
// parser.
func (r *Registry) For(host string) Parser {
	h := strings.ToLower(host)
	for _, e := range r.entries {
		if strings.Contains(h, e.hostPart) {
			return e.parser
		}
	}
	return r.generic
}

// Generic returns the fallback parser.
func (r *Registry) Generic() Parser { return r.generic }

// Len reports how many vendor hosts are registered.
func (r *Registry) Len() int { return len(r.entries) }

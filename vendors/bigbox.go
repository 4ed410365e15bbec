package vendors

import (
	"strings"

	"github.com/sowtrack/seedscrape/models"
)

// Parsers for the large mail-order houses. These sites are template-heavy:
// Burpee leaks %%-delimited template tokens into visible text, and the Park
// family shares one platform across three storefronts.

// burpee covers burpee.com.
type burpee struct {
	anchors
}

func newBurpee() Parser {
	return &burpee{anchors: anchors{
		name:        "burpee",
		image:       []string{".product-gallery__main", ".pdp-main-image"},
		description: []string{".product-details__description", "#product-details .description"},
		growing:     []string{".how-to-grow", "#how-to-grow"},
		sun:         []string{".attribute-sun .attribute-value", ".icon-attr--sun + span"},
		spacing:     []string{".attribute-spacing .attribute-value"},
		germination: []string{".attribute-germination .attribute-value", ".attribute-sprouts .attribute-value"},
		maturity:    []string{".attribute-days-to-maturity .attribute-value"},
		lifeCycle:   []string{".attribute-lifecycle .attribute-value"},
	}}
}

func (b *burpee) Parse(p *Page) *models.Extraction {
	ex := b.anchors.Parse(p)
	// Burpee labels maturity "days to emergence" on some templates, which
	// the germination keywords swallow; a value over 200 there is really a
	// template artifact and gets dropped.
	if strings.Contains(strings.ToLower(ex.DaysToGermination.Value), "emerge") &&
		strings.Contains(strings.ToLower(p.HTML), "days to emergence") {
		ex.DaysToGermination = models.Field{}
	}
	return ex
}

// parkSeedFamily covers parkseed.com, waysidegardens.com, and
// jacksonandperkins.com, which share a storefront platform.
func newParkSeedFamily() Parser {
	return &anchors{
		name:        "parkseed-family",
		image:       []string{"#product-image-main", ".pdp-figure", ".product-image"},
		description: []string{"#tab-description", ".pdp-short-description", ".product-blurb"},
		growing:     []string{"#tab-growing", ".culture-notes"},
		sun:         []string{".ps-attribute--sun dd", ".spec-sun .spec-value"},
		spacing:     []string{".ps-attribute--spacing dd", ".spec-spacing .spec-value"},
		germination: []string{".ps-attribute--germination dd"},
		maturity:    []string{".ps-attribute--maturity dd", ".spec-days .spec-value"},
		latin:       []string{".ps-attribute--botanical dd", ".botanical"},
		lifeCycle:   []string{".ps-attribute--type dd"},
	}
}

func newGurneys() Parser {
	return &anchors{
		name:        "gurneys",
		image:       []string{".product-image-gallery", ".gallery-image"},
		description: []string{".product.attribute.overview .value", ".product.attribute.description .value"},
		growing:     []string{"#product.info.growing", ".growing-calendar"},
		sun:         []string{".gr-attr-sun .col.data"},
		spacing:     []string{".gr-attr-spacing .col.data"},
		maturity:    []string{".gr-attr-maturity .col.data"},
	}
}

func newHarrisSeeds() Parser {
	return &anchors{
		name:        "harrisseeds",
		image:       []string{".product-single__photo-wrapper", ".product__main-photos"},
		description: []string{".product-single__description"},
		growing:     []string{".tab-growing-info", "#growing-information"},
		sun:         []string{".hs-spec--sun td:last-child"},
		spacing:     []string{".hs-spec--spacing td:last-child"},
		germination: []string{".hs-spec--germ td:last-child"},
		maturity:    []string{".hs-spec--days td:last-child"},
	}
}

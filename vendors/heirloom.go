package vendors

import (
	"github.com/sowtrack/seedscrape/models"
)

// Parsers for the heirloom-focused vendors. Baker Creek leans on JSON-LD;
// the rest are anchor tables over fairly plain storefront themes.

// rareSeeds covers rareseeds.com (Baker Creek).
type rareSeeds struct {
	anchors
}

func newRareSeeds() Parser {
	return &rareSeeds{anchors: anchors{
		name:        "rareseeds",
		image:       []string{".product.media .gallery-placeholder", ".fotorama__stage"},
		description: []string{".product.attribute.description .value", "#description"},
		growing:     []string{"#growing-guide", ".growing-tips"},
		sun:         []string{".product-info-sun .value"},
		spacing:     []string{".product-info-spacing .value"},
		germination: []string{".product-info-germination .value"},
		maturity:    []string{".product-info-maturity .value"},
		latin:       []string{".product-info-botanical .value", ".botanical-name"},
	}}
}

func (r *rareSeeds) Parse(p *Page) *models.Extraction {
	ex := r.anchors.Parse(p)
	// Baker Creek's hidden gallery markup often wins over the real photo;
	// prefer the JSON-LD product image when both exist.
	if doc := p.Doc(); doc != nil {
		if ld := jsonLDProductImage(doc); ld != "" {
			ex.ImageURL = resolveURL(p.Origin, ld)
		}
	}
	return ex
}

func newSouthernExposure() Parser {
	return &anchors{
		name:        "southernexposure",
		image:       []string{"#product-image", ".product-main-image"},
		description: []string{"#product-description", ".prod-description"},
		growing:     []string{"#growing-notes", ".growing-guide"},
		latin:       []string{".species-name", "em.latin"},
	}
}

func newSeedSavers() Parser {
	return &anchors{
		name:        "seedsavers",
		image:       []string{".product-single__photo", ".product__media"},
		description: []string{".product-single__description", ".product__description"},
		growing:     []string{".growing-instructions", "#planting-instructions"},
		sun:         []string{".product-attr--sun .value"},
		spacing:     []string{".product-attr--spacing .value"},
		germination: []string{".product-attr--germination .value"},
		maturity:    []string{".product-attr--maturity .value"},
	}
}

func newMarysHeirloom() Parser {
	return &anchors{
		name:        "marysheirloom",
		image:       []string{".product-single__photo", ".featured-img"},
		description: []string{".product-single__description", ".product-description"},
		growing:     []string{".planting-tips"},
	}
}

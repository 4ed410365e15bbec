package vendors

// Parsers for the flower-forward boutique vendors. Mostly Shopify themes
// with lightly customized spec blocks.

func newEdenBrothers() Parser {
	return &anchors{
		name:        "edenbrothers",
		image:       []string{".product-single__photos", ".slick-track"},
		description: []string{".product-single__description", "#product-description"},
		growing:     []string{"#planting-guide", ".planting-info"},
		sun:         []string{".eb-specs .spec-sun .spec-val"},
		spacing:     []string{".eb-specs .spec-spacing .spec-val"},
		germination: []string{".eb-specs .spec-germination .spec-val"},
		maturity:    []string{".eb-specs .spec-bloom .spec-val"},
		latin:       []string{".eb-specs .spec-botanical .spec-val"},
	}
}

func newTerritorial() Parser {
	return &anchors{
		name:        "territorialseed",
		image:       []string{".product-image-container", "#main-product-image"},
		description: []string{".product-description", "#description-tab"},
		growing:     []string{".growing-information", "#culture"},
		sun:         []string{".ts-attr-sun .data"},
		spacing:     []string{".ts-attr-spacing .data"},
		germination: []string{".ts-attr-germination .data"},
		maturity:    []string{".ts-attr-maturity .data"},
		latin:       []string{".ts-attr-latin .data"},
	}
}

func newBotanicalInterests() Parser {
	return &anchors{
		name:        "botanicalinterests",
		image:       []string{".product__media-wrapper", ".product-featured-media"},
		description: []string{".product__description", ".rte.description"},
		growing:     []string{".sow-and-grow", "#sow-and-grow"},
		sun:         []string{".bi-attr--sun .bi-attr-value"},
		spacing:     []string{".bi-attr--spacing .bi-attr-value"},
		germination: []string{".bi-attr--days-to-emerge .bi-attr-value"},
		maturity:    []string{".bi-attr--harvest .bi-attr-value"},
		latin:       []string{".bi-attr--botanical-name .bi-attr-value"},
		lifeCycle:   []string{".bi-attr--life-cycle .bi-attr-value"},
	}
}

func newSwallowtail() Parser {
	return &anchors{
		name:        "swallowtail",
		image:       []string{"#product-photo", ".product-image"},
		description: []string{"#product-description", ".prod-detail-desc"},
		growing:     []string{".planting-instructions", "#planting"},
	}
}

func newSelectSeeds() Parser {
	return &anchors{
		name:        "selectseeds",
		image:       []string{".product-main-image", "#zoom-image"},
		description: []string{".product-description", "#desc"},
		growing:     []string{".cultural-tips", "#cultural-tips"},
		sun:         []string{".ss-attr-sun dd"},
		spacing:     []string{".ss-attr-spacing dd"},
		maturity:    []string{".ss-attr-bloom dd"},
		latin:       []string{".ss-attr-species dd", ".latin-name"},
		lifeCycle:   []string{".ss-attr-lifecycle dd"},
	}
}

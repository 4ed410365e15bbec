package vendors

// Parsers for the smaller farm and specialty vendors. Several of these sites
// have no structured spec block at all, so their parsers are thin anchor
// sets that lean on the fuzzy fallback.

func newHighMowing() Parser {
	return &anchors{
		name:        "highmowing",
		image:       []string{".product.media", ".fotorama__stage__frame"},
		description: []string{".product.attribute.description .value"},
		growing:     []string{".growing-info", "#growing-info"},
		sun:         []string{".hm-attr-sun .col.data"},
		spacing:     []string{".hm-attr-spacing .col.data"},
		germination: []string{".hm-attr-germination .col.data"},
		maturity:    []string{".hm-attr-maturity .col.data"},
	}
}

func newFedco() Parser {
	return &anchors{
		name:        "fedcoseeds",
		image:       []string{".product-img", ".item-photo"},
		description: []string{".product-text", ".item-description"},
		growing:     []string{".culture", ".growing-notes"},
	}
}

func newKitchenGarden() Parser {
	return &anchors{
		name:        "kitchengardenseeds",
		image:       []string{".product-photo", "#product-main-img"},
		description: []string{".product-copy", ".item-copy"},
		growing:     []string{".sowing-instructions", "#sowing"},
	}
}

func newReneesGarden() Parser {
	return &anchors{
		name:        "reneesgarden",
		image:       []string{".product-image", ".seed-packet-image"},
		description: []string{".product-description", ".variety-description"},
		growing:     []string{".growing-instructions", "#how-to-grow"},
		latin:       []string{".botanical-name"},
	}
}

func newHudsonValley() Parser {
	return &anchors{
		name:        "hudsonvalleyseed",
		image:       []string{".product-single__photo", ".product__media"},
		description: []string{".product-single__description"},
		growing:     []string{".growing-tips", "#seed-keeping"},
	}
}

func newTrueLeaf() Parser {
	return &anchors{
		name:        "trueleafmarket",
		image:       []string{".product-main-image", ".product__media-list"},
		description: []string{".product-description", "#product-description"},
		growing:     []string{".growing-details", "#growing-details"},
		sun:         []string{".tl-spec-sun .spec-value"},
		spacing:     []string{".tl-spec-spacing .spec-value"},
		germination: []string{".tl-spec-germination .spec-value"},
		maturity:    []string{".tl-spec-maturity .spec-value"},
	}
}

func newOutsidePride() Parser {
	return &anchors{
		name:        "outsidepride",
		image:       []string{"#product-image", ".main-product-image"},
		description: []string{"#product-overview", ".product-overview"},
		growing:     []string{".planting-rate", "#planting-guide"},
	}
}

func newSowRight() Parser {
	return &anchors{
		name:        "sowrightseeds",
		image:       []string{".product__media-wrapper"},
		description: []string{".product__description"},
		growing:     []string{".planting-instructions"},
		sun:         []string{".sr-attr--sun .value"},
		spacing:     []string{".sr-attr--spacing .value"},
		germination: []string{".sr-attr--germination .value"},
		maturity:    []string{".sr-attr--harvest .value"},
	}
}

func newPinetree() Parser {
	return &anchors{
		name:        "pinetree",
		image:       []string{".product-image-main", "#product-img"},
		description: []string{".product-body", ".product-description"},
		growing:     []string{".growing-instructions"},
	}
}

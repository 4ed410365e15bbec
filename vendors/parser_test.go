package vendors

import (
	"strings"
	"testing"

	"github.com/sowtrack/seedscrape/models"
)

func TestRegistry_HostSelection(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		host string
		want string
	}{
		{"www.johnnyseeds.com", "johnnyseeds"},
		{"WWW.RARESEEDS.COM", "rareseeds"},
		{"burpee.com", "burpee"},
		{"www.waysidegardens.com", "parkseed-family"},
		{"www.jacksonandperkins.com", "parkseed-family"},
		{"shop.unknownvendor.example", "generic"},
	}
	for _, tt := range tests {
		if got := r.For(tt.host).Name(); got != tt.want {
			t.Errorf("For(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestRegistry_FirstMatchWins(t *testing.T) {
	r := NewRegistry()
	// A host containing two registered substrings resolves to the earlier
	// table entry.
	p := r.For("johnnyseeds.burpee.example")
	if p.Name() != "johnnyseeds" {
		t.Errorf("first-match tie-break: got %q", p.Name())
	}
}

const genericPageHTML = `<html><head>
<meta property="og:image" content="https://cdn.example.com/pepper.jpg">
</head><body>
<h1>Early Jalapeno Pepper</h1>
<p>Sun: Full Sun</p>
<p>Plant Spacing: 18 inches</p>
<p>Days to Germination: 10-14 days</p>
<p>Days to Maturity: 70 days</p>
</body></html>`

func TestGeneric_ExtractsAllCanonicalFields(t *testing.T) {
	p := NewPage(genericPageHTML, "https://shop.unknownvendor.example", models.PageMeta{Image: "https://cdn.example.com/pepper.jpg"})
	ex := newGeneric().Parse(p)

	if ex.Sun.Value != "Full Sun" {
		t.Errorf("Sun = %q", ex.Sun.Value)
	}
	if ex.PlantSpacing.Value != "18 inches" {
		t.Errorf("PlantSpacing = %q", ex.PlantSpacing.Value)
	}
	if ex.DaysToGermination.Value != "10-14 days" {
		t.Errorf("DaysToGermination = %q", ex.DaysToGermination.Value)
	}
	if ex.HarvestDays.Value != "70 days" {
		t.Errorf("HarvestDays = %q", ex.HarvestDays.Value)
	}
	if ex.ImageURL != "https://cdn.example.com/pepper.jpg" {
		t.Errorf("ImageURL = %q", ex.ImageURL)
	}
	if ex.Sun.Source != models.SourceScraped {
		t.Errorf("Sun provenance = %q, want scraped", ex.Sun.Source)
	}
}

func TestGeneric_NoKeywordMatchLeavesFieldsEmpty(t *testing.T) {
	p := NewPage("<html><body><h1>Gift Cards</h1></body></html>", "https://shop.example", models.PageMeta{})
	ex := newGeneric().Parse(p)

	if !ex.Sun.Empty() || !ex.PlantSpacing.Empty() || !ex.DaysToGermination.Empty() || !ex.HarvestDays.Empty() {
		t.Errorf("expected all canonical fields empty, got %+v", ex)
	}
}

func TestGeneric_SunLiteralFallback(t *testing.T) {
	html := `<html><body><h1>Cosmos</h1><p>Thrives in Full Sun and poor soil.</p></body></html>`
	p := NewPage(html, "https://shop.example", models.PageMeta{})
	ex := newGeneric().Parse(p)

	if ex.Sun.Value != "Full Sun" {
		t.Errorf("sun literal fallback = %q, want %q", ex.Sun.Value, "Full Sun")
	}
}

func TestGeneric_RejectsCSSJunkSpacing(t *testing.T) {
	// A spacing candidate that is pure CSS residue must come back null, so
	// the defaults stage can backfill it.
	html := `<html><body><div style="x">spacing</div><div>-sections-desktop: 0px;</div></body></html>`
	p := NewPage(html, "https://shop.example", models.PageMeta{})
	ex := newGeneric().Parse(p)

	if !ex.PlantSpacing.Empty() {
		t.Errorf("PlantSpacing = %q, want empty after CSS junk rejection", ex.PlantSpacing.Value)
	}
}

const johnnysPageHTML = `<html><head>
<meta property="og:title" content="Provider - Bush Bean Seed | Johnny's Selected Seeds">
</head><body>
<div class="primary-image"><img src="/dw/image/provider-bean.jpg"></div>
<div class="product-description"><div class="value">
<p>Dependable early bush bean with 5" pods.</p>
</div></div>
<table class="product-specs">
<tr><td>Sun</td><td>Full Sun</td></tr>
<tr><td>Plant Spacing</td><td>2-4"</td></tr>
<tr><td>Days To Germination</td><td>7-10 days</td></tr>
<tr><td>Days To Maturity</td><td>50 days</td></tr>
<tr><td>Life Cycle</td><td>Annual</td></tr>
<tr><td>Latin Name</td><td>Phaseolus vulgaris</td></tr>
</table>
</body></html>`

func TestJohnnySeeds_SpecRows(t *testing.T) {
	p := NewPage(johnnysPageHTML, "https://www.johnnyseeds.com", models.PageMeta{})
	ex := newJohnnySeeds().Parse(p)

	if ex.Sun.Value != "Full Sun" {
		t.Errorf("Sun = %q", ex.Sun.Value)
	}
	if ex.PlantSpacing.Value != `2-4"` {
		t.Errorf("PlantSpacing = %q", ex.PlantSpacing.Value)
	}
	if ex.DaysToGermination.Value != "7-10 days" {
		t.Errorf("DaysToGermination = %q", ex.DaysToGermination.Value)
	}
	if ex.HarvestDays.Value != "50 days" {
		t.Errorf("HarvestDays = %q", ex.HarvestDays.Value)
	}
	if ex.LifeCycle != "Annual" {
		t.Errorf("LifeCycle = %q", ex.LifeCycle)
	}
	if ex.LatinName != "Phaseolus vulgaris" {
		t.Errorf("LatinName = %q", ex.LatinName)
	}
	if ex.ImageURL != "https://www.johnnyseeds.com/dw/image/provider-bean.jpg" {
		t.Errorf("ImageURL = %q", ex.ImageURL)
	}
	if !strings.Contains(ex.PlantDescription, "Dependable early bush bean") {
		t.Errorf("PlantDescription = %q", ex.PlantDescription)
	}
}

func TestImageURL_JSONLDFallback(t *testing.T) {
	html := `<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Product","name":"Cupani","image":["https://cdn.example.com/cupani.jpg"]}</script>
</head><body></body></html>`
	p := NewPage(html, "https://shop.example", models.PageMeta{})
	if got := imageURL(p); got != "https://cdn.example.com/cupani.jpg" {
		t.Errorf("imageURL via JSON-LD = %q", got)
	}
}

func TestImageURL_ProductLikeHeuristic(t *testing.T) {
	html := `<html><body>
<img src="/img/logo.png" class="site-logo">
<img src="/img/items/tomato-brandywine.jpg" class="product-photo" alt="Brandywine Tomato">
</body></html>`
	p := NewPage(html, "https://shop.example", models.PageMeta{})
	if got := imageURL(p); got != "https://shop.example/img/items/tomato-brandywine.jpg" {
		t.Errorf("imageURL heuristic = %q", got)
	}
}

func TestSurgicalFilter_DropsNavAndCodeLines(t *testing.T) {
	block := `<div>
<p>Home</p>
<p>My Cart</p>
<p>A gorgeous heirloom sweet pea with a rich fragrance.</p>
<p>data-size="1 oz"</p>
<p>var product = {};</p>
<p>Grows to six feet and blooms all summer.</p>
</div>`
	got := surgicalFilter(block)
	want := "A gorgeous heirloom sweet pea with a rich fragrance. Grows to six feet and blooms all summer."
	if got != want {
		t.Errorf("surgicalFilter = %q, want %q", got, want)
	}
}

package vendors

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sowtrack/seedscrape/models"
	"github.com/sowtrack/seedscrape/sanitize"
)

// johnnySeeds covers johnnyseeds.com. Johnny's renders growing information as
// label/value rows inside a product-attributes block, so rows are paired
// explicitly before falling back to the shared anchor chain.
type johnnySeeds struct {
	anchors
}

func newJohnnySeeds() Parser {
	return &johnnySeeds{anchors: anchors{
		name:        "johnnyseeds",
		image:       []string{".primary-image", ".product-image-main", ".pdp-image-carousel"},
		description: []string{".product-description .value", ".description-and-detail .description", "#product-overview"},
		growing:     []string{".growing-information", "#growing-information", ".pdp-growing-info"},
		latin:       []string{".product-latin-name", ".latin-name"},
		lifeCycle:   []string{".product-life-cycle"},
	}}
}

func (j *johnnySeeds) Parse(p *Page) *models.Extraction {
	ex := j.anchors.Parse(p)

	rows := specRows(p, ".product-attributes .attribute-item, .pdp-attributes tr, .product-specs tr")
	applyRow := func(f *models.Field, keys ...string) {
		if !f.Empty() {
			return
		}
		for _, key := range keys {
			if v, ok := rows[key]; ok {
				f.Set(v)
				return
			}
		}
	}
	applyRow(&ex.Sun, "sun", "light requirements", "light")
	applyRow(&ex.PlantSpacing, "plant spacing", "spacing", "in-row spacing")
	applyRow(&ex.DaysToGermination, "days to germination", "germination")
	applyRow(&ex.HarvestDays, "days to maturity", "maturity")

	if ex.LifeCycle == "" {
		if v, ok := rows["life cycle"]; ok {
			if m := reLifeCycleWord.FindString(v); m != "" {
				ex.LifeCycle = titleWord(m)
			}
		}
	}
	if ex.LatinName == "" {
		if v, ok := rows["latin name"]; ok && reBinomial.MatchString(v) {
			ex.LatinName = v
		}
	}

	return ex
}

// specRows pairs label/value cells in a vendor's attribute rows. The label is
// the first child cell (dt/th/.name); the value is the rest of the row.
func specRows(p *Page, rowSelector string) map[string]string {
	rows := map[string]string{}
	doc := p.Doc()
	if doc == nil {
		return rows
	}

	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		label := row.Find("dt, th, .name, .attribute-name, .label").First()
		value := row.Find("dd, td, .value, .attribute-value").First()
		if label.Length() == 0 || value.Length() == 0 {
			// Two-cell rows without semantic classes: first/last child.
			cells := row.Children()
			if cells.Length() < 2 {
				return
			}
			label = cells.First()
			value = cells.Last()
		}

		key := strings.ToLower(sanitize.Clean(label.Text()))
		key = strings.TrimSuffix(key, ":")
		val := sanitize.CleanSpec(value.Text(), maxSpecLen)
		if key == "" || val == "" {
			return
		}
		if _, exists := rows[key]; !exists {
			rows[key] = val
		}
	})
	return rows
}

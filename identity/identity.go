package identity

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/sowtrack/seedscrape/models"
	"github.com/sowtrack/seedscrape/sanitize"
)

// vendorNames maps a host fragment to the vendor's display name. Page
// metadata's site name, when present, overrides this table.
var vendorNames = []struct {
	hostPart string
	name     string
}{
	{"johnnyseeds", "Johnny's Selected Seeds"},
	{"rareseeds", "Baker Creek Heirloom Seeds"},
	{"burpee", "Burpee"},
	{"edenbrothers", "Eden Brothers"},
	{"territorialseed", "Territorial Seed Company"},
	{"botanicalinterests", "Botanical Interests"},
	{"parkseed", "Park Seed"},
	{"waysidegardens", "Wayside Gardens"},
	{"jacksonandperkins", "Jackson & Perkins"},
	{"swallowtailgardenseeds", "Swallowtail Garden Seeds"},
	{"selectseeds", "Select Seeds"},
	{"highmowingseeds", "High Mowing Organic Seeds"},
	{"fedcoseeds", "Fedco Seeds"},
	{"southernexposure", "Southern Exposure Seed Exchange"},
	{"seedsavers", "Seed Savers Exchange"},
	{"kitchengardenseeds", "Kitchen Garden Seeds"},
	{"reneesgarden", "Renee's Garden"},
	{"hudsonvalleyseed", "Hudson Valley Seed Company"},
	{"trueleafmarket", "True Leaf Market"},
	{"outsidepride", "Outsidepride"},
	{"sowrightseeds", "Sow Right Seeds"},
	{"marysheirloomseeds", "Mary's Heirloom Seeds"},
	{"superseeds", "Pinetree Garden Seeds"},
	{"pinetreegardenseeds", "Pinetree Garden Seeds"},
	{"harrisseeds", "Harris Seeds"},
	{"gurneys", "Gurney's"},
}

// slugNoiseWords are vendor slug tokens that carry no identity information.
var slugNoiseWords = map[string]struct{}{
	"seed":      {},
	"seeds":     {},
	"organic":   {},
	"og":        {},
	"f1":        {},
	"pelleted":  {},
	"treated":   {},
	"untreated": {},
	"html":      {},
	"htm":       {},
}

var (
	reTrailingDigits = regexp.MustCompile(`-\d+$`)
	reTitleSplit     = regexp.MustCompile(`\s*[|\x{2013}\x{2014}]\s*`)
	reSeparators     = regexp.MustCompile(`[-_/]+`)
)

// Resolver derives the plant/variety/vendor identity triple from a page's
// URL, title, and site name. It works from the URL alone when the fetch was
// blocked and no title is available.
type Resolver struct{}

func NewResolver() *Resolver { return &Resolver{} }

// Resolve derives an Identity. title and siteName may be empty; pageURL must
// be non-nil. knownTypes supplements the built-in plant-type list for
// longest-match title splitting.
func (r *Resolver) Resolve(pageURL *url.URL, title, siteName string, knownTypes []string) models.Identity {
	id := models.Identity{VendorName: vendorName(pageURL.Host, siteName)}

	host := strings.ToLower(pageURL.Host)
	cleanedTitle := cleanTitle(title)

	// Vendor grammar first, then title splitting, then the slug.
	if strings.Contains(host, "johnnyseeds") {
		id.PlantName, id.VarietyName = johnnysGrammar(pageURL)
	} else if strings.Contains(host, "edenbrothers") {
		id.PlantName, id.VarietyName = seedsMarkerGrammar(pageURL)
	}
	if id.PlantName == "" {
		id.PlantName, id.VarietyName = splitByPlantType(cleanedTitle, knownTypes)
	}
	if id.PlantName == "" {
		id.PlantName, id.VarietyName = splitByPlantType(slugText(pageURL), knownTypes)
	}
	if id.PlantName == "" && cleanedTitle != "" {
		id.PlantName, id.VarietyName = lastWordSplit(cleanedTitle)
	}
	if id.PlantName == "" {
		id.PlantName, id.VarietyName = lastWordSplit(slugText(pageURL))
	}

	if Forbidden(id.PlantName) {
		id.PlantName, id.VarietyName = rederive(pageURL, id.VarietyName, knownTypes)
	}

	id.PlantName = TitleCase(id.PlantName)
	id.VarietyName = TitleCase(id.VarietyName)
	if strings.EqualFold(id.VarietyName, id.PlantName) {
		id.VarietyName = ""
	}
	return id
}

func vendorName(host, siteName string) string {
	if s := sanitize.Clean(siteName); s != "" {
		return s
	}
	h := strings.ToLower(host)
	for _, v := range vendorNames {
		if strings.Contains(h, v.hostPart) {
			return v.name
		}
	}
	h = strings.TrimPrefix(h, "www.")
	if i := strings.IndexByte(h, '.'); i > 0 {
		return TitleCase(h[:i])
	}
	return TitleCase(h)
}

// johnnysGrammar: the last path segment is the product slug; the segment
// before it is the plant category. Variety is the slug minus the trailing
// numeric code and noise words.
func johnnysGrammar(u *url.URL) (plant, variety string) {
	segs := pathSegments(u)
	if len(segs) == 0 {
		return "", ""
	}
	slug := strings.TrimSuffix(segs[len(segs)-1], ".html")
	slug = reTrailingDigits.ReplaceAllString(slug, "")
	variety = TitleCase(stripNoise(slug))
	if len(segs) >= 2 {
		plant = TitleCase(stripNoise(segs[len(segs)-2]))
	}
	return plant, variety
}

// seedsMarkerGrammar splits a slug on the literal "-seeds-" marker:
// "sweet-pea-seeds-cupani" is plant "sweet pea", variety "cupani".
func seedsMarkerGrammar(u *url.URL) (plant, variety string) {
	segs := pathSegments(u)
	if len(segs) == 0 {
		return "", ""
	}
	slug := strings.TrimSuffix(segs[len(segs)-1], ".html")
	left, right, ok := strings.Cut(slug, "-seeds-")
	if !ok {
		return "", ""
	}
	return TitleCase(stripNoise(left)), TitleCase(stripNoise(right))
}

// splitByPlantType finds the longest known plant-type name inside text and
// treats the remainder as the variety.
func splitByPlantType(text string, knownTypes []string) (plant, variety string) {
	if text == "" {
		return "", ""
	}
	match := matchPlantType(text, knownTypes)
	if match == "" {
		return "", ""
	}
	lower := strings.ToLower(text)
	idx := strings.Index(lower, match)
	if idx < 0 {
		return "", ""
	}
	end := idx + len(match)
	// consume a plural suffix on the page
	if strings.HasPrefix(lower[end:], "es") {
		end += 2
	} else if strings.HasPrefix(lower[end:], "s") {
		end++
	}
	rest := text[:idx] + " " + text[end:]
	rest = strings.Trim(strings.Join(strings.Fields(rest), " "), " -–|,:")
	return match, stripNoise(rest)
}

func lastWordSplit(text string) (plant, variety string) {
	words := strings.Fields(stripNoise(text))
	if len(words) == 0 {
		return "", ""
	}
	plant = words[len(words)-1]
	variety = strings.Join(words[:len(words)-1], " ")
	return plant, variety
}

// rederive recovers from a forbidden plant name using the URL slug first and
// the variety text second.
func rederive(u *url.URL, variety string, knownTypes []string) (string, string) {
	if p, v := splitByPlantType(slugText(u), knownTypes); p != "" && !Forbidden(p) {
		return p, v
	}
	if p, v := lastWordSplit(variety); p != "" && !Forbidden(p) {
		return p, v
	}
	if p, v := lastWordSplit(slugText(u)); p != "" && !Forbidden(p) {
		return p, v
	}
	return "", ""
}

func pathSegments(u *url.URL) []string {
	var segs []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// slugText returns the last URL path segment as space-separated words.
func slugText(u *url.URL) string {
	segs := pathSegments(u)
	if len(segs) == 0 {
		return ""
	}
	slug := strings.TrimSuffix(segs[len(segs)-1], ".html")
	slug = reTrailingDigits.ReplaceAllString(slug, "")
	return reSeparators.ReplaceAllString(slug, " ")
}

// stripNoise drops vendor noise words and broad category words, collapsing
// separators to spaces.
func stripNoise(text string) string {
	text = reSeparators.ReplaceAllString(text, " ")
	var kept []string
	for _, w := range strings.Fields(text) {
		lw := strings.ToLower(w)
		if _, noisy := slugNoiseWords[lw]; noisy {
			continue
		}
		if _, broad := forbiddenCategories[lw]; broad {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// cleanTitle sanitizes a page title and drops vendor suffixes after "|" or
// an en/em dash.
func cleanTitle(title string) string {
	t := sanitize.Clean(title)
	if t == "" {
		return ""
	}
	parts := reTitleSplit.Split(t, -1)
	return strings.TrimSpace(parts[0])
}

// TitleCase uppercases the first letter of each word, leaving interior
// capitals (F1, McKenna) alone.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

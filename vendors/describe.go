package vendors

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	readability "github.com/go-shiori/go-readability"
	nurl "net/url"

	"github.com/sowtrack/seedscrape/sanitize"
)

const (
	maxDescriptionLen = 900
	maxNotesLen       = 1500

	// minReadabilityLen guards the readability fallback: below this the
	// algorithm likely grabbed chrome instead of content.
	minReadabilityLen = 50
)

// mdConverter is created once and reused; the converter is goroutine-safe.
var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	),
)

// description extracts the product description: anchored containers first,
// then page metadata, then a readability pass over the whole page. Every
// candidate goes through the surgical filter before it is accepted.
func description(p *Page, selectors ...string) string {
	for _, sel := range selectors {
		block := anchorHTML(p, sel)
		if block == "" {
			continue
		}
		if text := surgicalFilter(block); text != "" {
			return sanitize.Truncate(text, maxDescriptionLen)
		}
	}

	if p.Meta.Description != "" {
		if text := surgicalFilter(p.Meta.Description); text != "" {
			return sanitize.Truncate(text, maxDescriptionLen)
		}
	}

	if text := readabilityText(p); text != "" {
		if filtered := surgicalFilter(text); filtered != "" {
			return sanitize.Truncate(filtered, maxDescriptionLen)
		}
	}

	return ""
}

// growingNotes renders the vendor's care-instructions block as markdown so
// structure (lists, headings) survives into the catalog.
func growingNotes(p *Page, selectors ...string) string {
	for _, sel := range selectors {
		block := anchorHTML(p, sel)
		if block == "" {
			continue
		}
		md, err := mdConverter.ConvertString(block, converter.WithDomain(p.Origin))
		if err != nil || strings.TrimSpace(md) == "" {
			// Converter choked on vendor markup; fall back to plain text.
			if text := surgicalFilter(block); text != "" {
				return sanitize.Truncate(text, maxNotesLen)
			}
			continue
		}
		return sanitize.Truncate(strings.TrimSpace(md), maxNotesLen)
	}
	return ""
}

// readabilityText runs the readability algorithm over the whole page and
// returns its text content, or "" when extraction fails or is too short.
func readabilityText(p *Page) string {
	pageURL, err := nurl.Parse(p.Origin)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(strings.NewReader(p.HTML), pageURL)
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(article.TextContent)
	if len(text) < minReadabilityLen {
		return ""
	}
	return text
}

// Navigation and boilerplate markers for the surgical filter, beyond what the
// generic junk predicate covers.
var navLinePatterns = []string{
	"home", "shop", "menu", "account", "my cart", "view cart", "wishlist",
	"compare", "you may also like", "related products", "recently viewed",
	"customers also", "reviews", "write a review", "qty", "quantity", "sku",
	"in stock", "out of stock", "sold out", "share", "sign in", "sign up",
	"log in", "search", "filter", "sort by", "back to top", "gift guide",
	"catalog request", "track order", "contact us", "faq",
}

var (
	// Raw attribute/code lines that leak through tag stripping, e.g.
	// `data-size="1 oz"` or `var product = {...`.
	reAttrLine = regexp.MustCompile(`^[\w-]+\s*=\s*["'{\[]`)
	reCodeLine = regexp.MustCompile(`^(var|let|const|function|window\.|document\.)\b`)
)

// surgicalFilter is the secondary pass over description candidates: it splits
// the block into lines, drops navigation/boilerplate lines and anything that
// still looks like code or markup residue, and joins the survivors.
func surgicalFilter(blockHTML string) string {
	lined := lineBreakTags.ReplaceAllString(blockHTML, "\n")

	var kept []string
	for _, raw := range strings.Split(lined, "\n") {
		line := sanitize.Clean(raw)
		if line == "" {
			continue
		}
		if !sanitize.Valid(line) {
			continue
		}
		if reAttrLine.MatchString(line) || reCodeLine.MatchString(line) {
			continue
		}
		if isNavLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}

// lineBreakTags are block-level boundaries that delimit lines for the filter.
var lineBreakTags = regexp.MustCompile(`(?i)<(?:br\s*/?|/p|/div|/li|/tr|/h[1-6]|/dd|/dt)>`)

// isNavLine flags short lines dominated by navigation keywords. Long prose
// lines are kept even when a keyword appears mid-sentence.
func isNavLine(line string) bool {
	lower := strings.ToLower(line)
	words := len(strings.Fields(line))
	for _, marker := range navLinePatterns {
		if !strings.Contains(lower, marker) {
			continue
		}
		if words <= 6 {
			return true
		}
		// A marker at the very start of a longer line is still chrome
		// ("Reviews (12) ..." blocks).
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	return false
}

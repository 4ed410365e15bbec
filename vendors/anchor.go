package vendors

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/sowtrack/seedscrape/sanitize"
)

// anchorHTML returns the concatenated outer HTML of every element matching
// selector. Invalid selectors and unparseable pages yield "".
func anchorHTML(p *Page, selector string) string {
	nodes := queryAll(p, selector)
	if len(nodes) == 0 {
		return ""
	}
	var buf bytes.Buffer
	for _, node := range nodes {
		if err := html.Render(&buf, node); err != nil {
			return ""
		}
	}
	return buf.String()
}

// anchorText returns the cleaned text of the first selector that matches
// anything.
func anchorText(p *Page, selectors []string, maxLen int) string {
	doc := p.Doc()
	if doc == nil {
		return ""
	}
	for _, sel := range selectors {
		el := doc.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		if v := sanitize.Truncate(sanitize.Clean(el.Text()), maxLen); v != "" {
			return v
		}
	}
	return ""
}

// anchorSpec extracts a growing-spec value: label-anchored selectors first,
// then the fuzzy keyword extractor over the whole page. Selector hits that
// fail the validity predicate are discarded, not kept.
func anchorSpec(p *Page, selectors []string, keywords []string, maxLen int) string {
	doc := p.Doc()
	if doc != nil {
		for _, sel := range selectors {
			el := doc.Find(sel).First()
			if el.Length() == 0 {
				continue
			}
			if v := sanitize.CleanSpec(el.Text(), maxLen); v != "" {
				return stripLabel(v, keywords)
			}
		}
	}
	return sanitize.Keyword(p.HTML, keywords, maxLen)
}

// stripLabel removes a leading "Label:" echo when the anchored element
// contains both the label and the value.
func stripLabel(v string, keywords []string) string {
	lower := strings.ToLower(v)
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		if strings.HasPrefix(lower, k) {
			rest := strings.TrimSpace(v[len(k):])
			rest = strings.TrimLeft(rest, ":-– ")
			if rest != "" {
				return rest
			}
		}
	}
	return v
}

// queryAll compiles the selector with cascadia and runs it over the parsed
// tree. Compilation failures are treated as a miss.
func queryAll(p *Page, selector string) []*html.Node {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil
	}
	doc := p.Doc()
	if doc == nil || len(doc.Selection.Nodes) == 0 {
		return nil
	}
	return cascadia.QueryAll(doc.Selection.Nodes[0], sel)
}

// resolveURL makes candidate absolute against the page origin.
func resolveURL(origin, candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}
	if strings.HasPrefix(candidate, "//") {
		return "https:" + candidate
	}
	if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
		return candidate
	}
	if strings.HasPrefix(candidate, "data:") {
		return ""
	}
	if origin == "" {
		return ""
	}
	if !strings.HasPrefix(candidate, "/") {
		candidate = "/" + candidate
	}
	return origin + candidate
}

// Package sanitize turns untrusted vendor-page text into values safe to show
// a user: no markup, no entities, no CSS or template residue. Every extraction
// stage funnels its raw strings through here.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var (
	reScriptBlock = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	reStyleBlock  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	reNoscript    = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	reComment     = regexp.MustCompile(`(?s)<!--.*?-->`)
	reTag         = regexp.MustCompile(`<[^>]*>`)

	// Vendor template placeholders, e.g. %%GLOBAL_ProductName%%.
	rePlaceholder = regexp.MustCompile(`%%[^%\s][^%]*%%`)

	// Inline CSS residue that survives tag stripping, e.g.
	// "-sections-desktop: 0px;" or "font-size: 12px;". The property must be
	// dash-led or a recognized lowercase CSS name, so labeled prose like
	// "Spacing: 4-6 inches; thin seedlings" is left alone.
	reCSSDecl   = regexp.MustCompile(`(?:--?[a-z][-\w]*|\b(?:font|color|background|margin|padding|border|width|height|top|bottom|left|right|display|position|float|clear|overflow|opacity|z-index|flex|grid|text|line-height|letter-spacing|white-space|vertical-align|box|visibility|cursor|transform|transition|animation|content|align|justify)(?:-\w+)*)\s*:\s*[^;{}\n]{1,80};`)
	reBraces    = regexp.MustCompile(`\{[^{}]*\}`)
	reWhitspace = regexp.MustCompile(`\s+`)
)

// Clean normalizes a raw extracted string. It strips <script>/<style> blocks
// before anything else, removes tags, decodes HTML entities to a fixpoint,
// drops template placeholders and CSS declarations, and collapses whitespace.
//
// Clean is idempotent: Clean(Clean(x)) == Clean(x).
func Clean(s string) string {
	if s == "" {
		return ""
	}

	// Script and style bodies must go before tag stripping, otherwise their
	// contents would leak into the text.
	s = reScriptBlock.ReplaceAllString(s, " ")
	s = reStyleBlock.ReplaceAllString(s, " ")
	s = reNoscript.ReplaceAllString(s, " ")
	s = reComment.ReplaceAllString(s, " ")
	s = reTag.ReplaceAllString(s, " ")

	// Entities can be nested (&amp;lt;), so decode until stable.
	for i := 0; i < 4; i++ {
		decoded := html.UnescapeString(s)
		if decoded == s {
			break
		}
		s = decoded
	}

	// Decoding may have materialized new markup; strip it and drop any
	// leftover angle brackets so no tag fragment ever survives.
	s = reTag.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "<", " ")
	s = strings.ReplaceAll(s, ">", " ")

	s = rePlaceholder.ReplaceAllString(s, " ")

	for i := 0; i < 5; i++ {
		next := reBraces.ReplaceAllString(s, " ")
		if next == s {
			break
		}
		s = next
	}
	// Collapse whitespace before hunting declarations, so a declaration split
	// across a newline looks the same on every pass, then remove declarations
	// to a fixpoint. Both are needed for Clean(Clean(x)) == Clean(x).
	s = reWhitspace.ReplaceAllString(s, " ")
	for i := 0; i < 5; i++ {
		next := reCSSDecl.ReplaceAllString(s, " ")
		if next == s {
			break
		}
		s = next
	}

	s = reWhitspace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "|•·:;,-– ")
	return strings.TrimSpace(s)
}

// CleanSpec cleans a growing-spec candidate (sun, spacing, germination) and
// nulls it out rather than keeping nonsense: anything that still fails the
// validity predicate after cleaning comes back as "".
func CleanSpec(s string, maxLen int) string {
	cleaned := Clean(s)
	if cleaned == "" || !Valid(cleaned) {
		return ""
	}
	cleaned = Truncate(cleaned, maxLen)
	if Junk(cleaned) {
		return ""
	}
	return cleaned
}

// Truncate shortens s to at most maxLen runes, cutting at the last word
// boundary when one exists.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	cut := string(runes[:maxLen])
	// Back off to the previous word boundary only when the cut landed
	// mid-word.
	if runes[maxLen] != ' ' {
		if idx := strings.LastIndexByte(cut, ' '); idx > maxLen/2 {
			cut = cut[:idx]
		}
	}
	return strings.TrimSpace(cut)
}

package sanitize

import "strings"

// maxKeywordScans bounds how many keyword occurrences are examined before
// giving up; label cells often put the keyword and its value in separate tags,
// so the first hit may capture nothing.
const maxKeywordScans = 8

// Keyword locates the first case-insensitive occurrence of any keyword in the
// raw HTML, captures the text that follows until the next line break or tag
// boundary, cleans it, and truncates to maxLen. It is the generic extraction
// primitive every vendor parser falls back to.
//
// Returns "" when no keyword yields a usable value.
func Keyword(rawHTML string, keywords []string, maxLen int) string {
	lower := strings.ToLower(rawHTML)

	start := 0
	for scan := 0; scan < maxKeywordScans; scan++ {
		idx, kwLen := firstKeyword(lower[start:], keywords)
		if idx < 0 {
			return ""
		}
		pos := start + idx + kwLen

		captured := captureAfter(rawHTML, pos)
		if v := CleanSpec(captured, maxLen); v != "" {
			return v
		}
		start = pos
	}
	return ""
}

// firstKeyword returns the earliest occurrence of any keyword in the
// lowercased haystack, with the matched keyword's length.
func firstKeyword(lowerHay string, keywords []string) (int, int) {
	best, bestLen := -1, 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		idx := strings.Index(lowerHay, strings.ToLower(kw))
		if idx >= 0 && (best < 0 || idx < best) {
			best, bestLen = idx, len(kw)
		}
	}
	return best, bestLen
}

// captureAfter skips separators and intervening tags after a keyword hit,
// then captures up to the next line break or tag open.
//
// A hit followed directly by prose (no ":", "=", "-", or tag boundary) is a
// keyword inside a sentence, not a label; it only counts when the value is a
// measurement ("germinates in 7-10 days").
func captureAfter(raw string, pos int) string {
	i := pos
	sepSeen := false
	// Skip whitespace, label separators, and whole tags between the keyword
	// and its value (e.g. "Sun:</td><td>Full Sun").
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == ':' || c == '-' || c == '=':
			sepSeen = true
			i++
		case c == '<':
			end := strings.IndexByte(raw[i:], '>')
			if end < 0 {
				return ""
			}
			sepSeen = true
			i += end + 1
		default:
			goto capture
		}
	}
	return ""

capture:
	if !sepSeen && !(raw[i] >= '0' && raw[i] <= '9') {
		return ""
	}
	end := len(raw)
	for j := i; j < len(raw); j++ {
		if raw[j] == '\n' || raw[j] == '\r' || raw[j] == '<' {
			end = j
			break
		}
	}
	return raw[i:end]
}

// Keyword sets shared by the generic parser and vendor fallbacks.
var (
	SunKeywords         = []string{"sun requirement", "sun exposure", "sunlight", "light requirement", "exposure", "sun", "light"}
	SpacingKeywords     = []string{"plant spacing", "seed spacing", "spacing", "space plants", "thin to"}
	GerminationKeywords = []string{"days to germination", "germination time", "germinates in", "germination", "days to emerge", "emerges in"}
	MaturityKeywords    = []string{"days to maturity", "days to harvest", "matures in", "maturity", "harvest in"}
	LatinKeywords       = []string{"botanical name", "latin name", "scientific name", "species"}
	LifeCycleKeywords   = []string{"life cycle", "plant type", "annual or perennial"}
)

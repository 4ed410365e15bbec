package sanitize

import "testing"

func TestKeyword_PlainText(t *testing.T) {
	html := "Light requirement: Full Sun\nSpacing: 18 inches"
	got := Keyword(html, SunKeywords, 60)
	if got != "Full Sun" {
		t.Errorf("Keyword sun = %q, want %q", got, "Full Sun")
	}
}

func TestKeyword_ValueInSiblingCell(t *testing.T) {
	html := `<tr><td>Days to Germination</td><td>7-14 days</td></tr>`
	got := Keyword(html, GerminationKeywords, 60)
	if got != "7-14 days" {
		t.Errorf("Keyword germination = %q, want %q", got, "7-14 days")
	}
}

func TestKeyword_SkipsUnusableOccurrence(t *testing.T) {
	// First "spacing" hit captures CSS junk; the extractor must move on to
	// the next occurrence instead of returning the junk.
	html := "spacing: 0px; useless\nPlant Spacing: 12-18 inches"
	got := Keyword(html, SpacingKeywords, 60)
	if got != "12-18 inches" {
		t.Errorf("Keyword spacing = %q, want %q", got, "12-18 inches")
	}
}

func TestKeyword_NoMatch(t *testing.T) {
	html := "<p>Nothing horticultural here.</p>"
	if got := Keyword(html, SunKeywords, 60); got != "" {
		t.Errorf("Keyword on unrelated page = %q, want empty", got)
	}
}

func TestKeyword_TruncatesLongCapture(t *testing.T) {
	html := "Sun: Full sun is best for this variety although gardeners in very hot climates may prefer to give afternoon shade during the peak of summer heat waves"
	got := Keyword(html, SunKeywords, 40)
	if got == "" {
		t.Fatal("expected a truncated value, got empty")
	}
	if n := len([]rune(got)); n > 40 {
		t.Errorf("Keyword returned %d runes, cap is 40", n)
	}
}

package sanitize

import "testing"

func TestClean_StripsScriptAndStyleBeforeTags(t *testing.T) {
	in := `<div><script>var spacing = "junk";</script><style>.x{color:red}</style>Plant 18" apart</div>`
	got := Clean(in)
	want := `Plant 18" apart`
	if got != want {
		t.Errorf("Clean(%q) = %q, want %q", in, got, want)
	}
}

func TestClean_DecodesEntities(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Full Sun &amp; Part Shade", "Full Sun & Part Shade"},
		{"6&#8211;12 inches", "6–12 inches"},
		{"Sow &frac14; inch deep", "Sow ¼ inch deep"},
		{"&amp;amp;", "&"}, // nested entities decode to a fixpoint
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClean_NeverLeavesMarkup(t *testing.T) {
	inputs := []string{
		"&lt;b&gt;Full Sun&lt;/b&gt;",
		"<p>Full <b>Sun</b></p>",
		"Part < Shade > mix",
	}
	for _, in := range inputs {
		got := Clean(in)
		for _, c := range got {
			if c == '<' || c == '>' {
				t.Errorf("Clean(%q) = %q still contains angle bracket", in, got)
			}
		}
	}
}

func TestClean_StripsTemplatePlaceholders(t *testing.T) {
	in := "Sow %%GLOBAL_ProductName%% after last frost"
	if got := Clean(in); got != "Sow after last frost" {
		t.Errorf("Clean(%q) = %q", in, got)
	}
}

func TestClean_StripsCSSResidue(t *testing.T) {
	in := "Full Sun -sections-desktop: 0px; {display:none}"
	if got := Clean(in); got != "Full Sun" {
		t.Errorf("Clean(%q) = %q, want %q", in, got, "Full Sun")
	}
}

func TestClean_KeepsLabeledProse(t *testing.T) {
	// A capitalized label with a semicolon clause is horticultural prose, not
	// a CSS declaration, even when a line break lands mid-value.
	tests := []struct {
		in, want string
	}{
		{"Spacing: 4-6\ninches; thin seedlings", "Spacing: 4-6 inches; thin seedlings"},
		{"Spacing: 4-6 inches; thin seedlings", "Spacing: 4-6 inches; thin seedlings"},
		{"font-size:\n12px; Full Sun", "Full Sun"},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Full Sun",
		`<div class="specs"><b>Sun:</b> Full&nbsp;Sun</div>`,
		"&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;",
		"%%TOKEN%% spacing: 12in; {a:b} {{nested}}",
		"   lots\t\tof \n whitespace   ",
		// Declarations split across a newline must look the same to the
		// second pass as to the first.
		"font-size:\n12px; Full Sun",
		"Spacing: 4-6\ninches; thin seedlings",
		"foo: bar\nbaz; hello",
	}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Full Sun", true},
		{"18-24 inches", true},
		{"", false},
		{"-sections-desktop: 0px;", false},
		{"{display:none}", false},
		{"margin 10px wide", false},
		{"width: 100;", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.in); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJunk(t *testing.T) {
	long := make([]byte, 130)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		in   string
		want bool
	}{
		{"Full Sun", false},
		{"70-80 days", false},
		{"&nbsp;stuck entity", true},
		{"Call us at (555) 123-4567", true},
		{"Add to Cart", true},
		{"Subscribe to our newsletter", true},
		{string(long), true},
	}
	for _, tt := range tests {
		if got := Junk(tt.in); got != tt.want {
			t.Errorf("Junk(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCleanSpec_RejectsInvalidAsNull(t *testing.T) {
	// A spacing candidate polluted with CSS must come back empty, never as a
	// truncated fragment of the pollution.
	in := `<div style="x">-sections-desktop: 0px;</div>`
	if got := CleanSpec(in, 60); got != "" {
		t.Errorf("CleanSpec(%q) = %q, want empty", in, got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Full Sun to Part Shade", 11); got != "Full Sun to" {
		t.Errorf("Truncate word boundary: got %q", got)
	}
	if got := Truncate("short", 60); got != "short" {
		t.Errorf("Truncate under limit: got %q", got)
	}
}

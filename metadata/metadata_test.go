package metadata

import "testing"

func TestExtract_PropertyFirst(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="Provider Bush Bean Seed" />
		<meta property="og:description" content="A dependable early bean." />
		<meta property="og:image" content="https://cdn.example.com/bean.jpg" />
		<meta property="og:site_name" content="Johnny's Selected Seeds" />
	</head></html>`

	meta := Extract(html)
	if meta.Title != "Provider Bush Bean Seed" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Description != "A dependable early bean." {
		t.Errorf("Description = %q", meta.Description)
	}
	if meta.Image != "https://cdn.example.com/bean.jpg" {
		t.Errorf("Image = %q", meta.Image)
	}
	if meta.SiteName != "Johnny's Selected Seeds" {
		t.Errorf("SiteName = %q", meta.SiteName)
	}
}

func TestExtract_ContentFirst(t *testing.T) {
	html := `<head><meta content="Cupani Sweet Pea" property="og:title"></head>`
	meta := Extract(html)
	if meta.Title != "Cupani Sweet Pea" {
		t.Errorf("Title with content-first attribute order = %q", meta.Title)
	}
}

func TestExtract_TitleTagFallback(t *testing.T) {
	html := `<html><head><title> Cherry Belle Radish | Eden Brothers </title></head><body></body></html>`
	meta := Extract(html)
	if meta.Title != "Cherry Belle Radish | Eden Brothers" {
		t.Errorf("Title fallback = %q", meta.Title)
	}
}

func TestExtract_EmptyPage(t *testing.T) {
	meta := Extract("")
	if meta.Title != "" || meta.Description != "" || meta.Image != "" || meta.SiteName != "" {
		t.Errorf("Extract on empty input returned non-empty meta: %+v", meta)
	}
}

func TestExtract_SanitizesValues(t *testing.T) {
	html := `<head><meta property="og:description" content="Beans &amp; greens for %%STORE%% gardens"></head>`
	meta := Extract(html)
	if meta.Description != "Beans & greens for gardens" {
		t.Errorf("Description = %q", meta.Description)
	}
}

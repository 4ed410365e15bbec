package identity

import (
	"net/url"
	"testing"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestResolve_JohnnysSlugGrammar(t *testing.T) {
	r := NewResolver()
	u := mustParse(t, "https://www.johnnyseeds.com/vegetables/beans/bush-beans/provider-bean-seed-10.html")

	id := r.Resolve(u, "", "", nil)

	if id.PlantName != "Bush Beans" {
		t.Errorf("plant = %q, want Bush Beans", id.PlantName)
	}
	if id.VarietyName != "Provider Bean" {
		t.Errorf("variety = %q, want Provider Bean", id.VarietyName)
	}
	if id.VendorName != "Johnny's Selected Seeds" {
		t.Errorf("vendor = %q", id.VendorName)
	}
}

func TestResolve_BlockedURLOnly(t *testing.T) {
	r := NewResolver()
	u := mustParse(t, "https://www.selectseeds.com/products/sweet-pea-cupani")

	id := r.Resolve(u, "", "", nil)

	if id.PlantName != "Sweet Pea" {
		t.Errorf("plant = %q, want Sweet Pea", id.PlantName)
	}
	if id.VarietyName != "Cupani" {
		t.Errorf("variety = %q, want Cupani", id.VarietyName)
	}
	if id.VendorName != "Select Seeds" {
		t.Errorf("vendor = %q", id.VendorName)
	}
}

func TestResolve_SeedsMarkerGrammar(t *testing.T) {
	r := NewResolver()
	u := mustParse(t, "https://www.edenbrothers.com/products/sweet-pea-seeds-cupani")

	id := r.Resolve(u, "", "", nil)

	if id.PlantName != "Sweet Pea" {
		t.Errorf("plant = %q, want Sweet Pea", id.PlantName)
	}
	if id.VarietyName != "Cupani" {
		t.Errorf("variety = %q, want Cupani", id.VarietyName)
	}
}

func TestResolve_TitleSplit(t *testing.T) {
	r := NewResolver()
	u := mustParse(t, "https://www.rareseeds.com/store/cherokee-purple-tomato")

	id := r.Resolve(u, "Cherokee Purple Tomato Seeds | Baker Creek", "", nil)

	if id.PlantName != "Tomato" {
		t.Errorf("plant = %q, want Tomato", id.PlantName)
	}
	if id.VarietyName != "Cherokee Purple" {
		t.Errorf("variety = %q, want Cherokee Purple", id.VarietyName)
	}
	if id.VendorName != "Baker Creek Heirloom Seeds" {
		t.Errorf("vendor = %q", id.VendorName)
	}
}

func TestResolve_KnownTypesExtendMatching(t *testing.T) {
	r := NewResolver()
	u := mustParse(t, "https://www.trueleafmarket.com/products/red-russian-kale")

	id := r.Resolve(u, "Red Russian Kale", "", []string{"Red Russian Kale"})

	// The caller-supplied longer type wins the longest-match lookup.
	if id.PlantName != "Red Russian Kale" {
		t.Errorf("plant = %q, want Red Russian Kale", id.PlantName)
	}
	if id.VarietyName != "" {
		t.Errorf("variety = %q, want empty", id.VarietyName)
	}
}

func TestResolve_ForbiddenCategoryRederived(t *testing.T) {
	r := NewResolver()
	u := mustParse(t, "https://www.burpee.com/vegetables/black-beauty-zucchini")

	// Title ends in a broad category so the naive split must not stand.
	id := r.Resolve(u, "Black Beauty Zucchini Vegetables", "", nil)

	if Forbidden(id.PlantName) {
		t.Fatalf("plant %q is a forbidden category", id.PlantName)
	}
	if id.PlantName != "Zucchini" {
		t.Errorf("plant = %q, want Zucchini", id.PlantName)
	}
}

func TestResolve_SiteNameOverridesVendorTable(t *testing.T) {
	r := NewResolver()
	u := mustParse(t, "https://www.burpee.com/vegetables/tomato-big-boy")

	id := r.Resolve(u, "", "Burpee Gardening", nil)

	if id.VendorName != "Burpee Gardening" {
		t.Errorf("vendor = %q, want Burpee Gardening", id.VendorName)
	}
}

func TestResolve_VarietyNeverEqualsPlant(t *testing.T) {
	r := NewResolver()
	u := mustParse(t, "https://www.fedcoseeds.com/seeds/tomato-tomato")

	id := r.Resolve(u, "", "", nil)

	if id.VarietyName == id.PlantName && id.VarietyName != "" {
		t.Errorf("variety %q equals plant name", id.VarietyName)
	}
}

func TestForbidden(t *testing.T) {
	for _, bad := range []string{"Herbs", "flowers", "VEGETABLES", "Seeds", "Plants", "Fruits"} {
		if !Forbidden(bad) {
			t.Errorf("Forbidden(%q) = false", bad)
		}
	}
	if Forbidden("Tomato") {
		t.Error("Forbidden(Tomato) = true")
	}
}

package models

// Provenance records where a growing-spec value came from.
type Provenance string

const (
	// SourceScraped marks a value read off the vendor page (or returned by
	// the AI stages).
	SourceScraped Provenance = "scraped"

	// SourceDefault marks a value backfilled from the category-defaults table.
	SourceDefault Provenance = "default"
)

// Field is an optional growing-spec value with its provenance tag.
type Field struct {
	Value  string
	Source Provenance
}

// Set overwrites the field with a scraped value. Empty values are ignored.
func (f *Field) Set(v string) {
	if v == "" {
		return
	}
	f.Value = v
	f.Source = SourceScraped
}

// Empty reports whether the field has no value.
func (f *Field) Empty() bool { return f.Value == "" }

// Extraction is the partial record a single extraction stage produces.
// Every growing-spec field carries provenance; free-text fields do not.
type Extraction struct {
	Sun               Field
	Water             Field
	PlantSpacing      Field
	DaysToGermination Field
	HarvestDays       Field

	ImageURL         string
	PlantDescription string
	GrowingNotes     string
	LatinName        string
	LifeCycle        string
	HybridStatus     string
	VendorNotes      string
}

// MergeFreeText returns a new Extraction where every empty free-text field of
// e is filled from other; growing-spec fields are never touched. Neither
// receiver nor argument is mutated. Stages that own the spec fields outright
// use this to pick up page-derived text (image, description, notes) without
// adopting another stage's spec values.
func (e Extraction) MergeFreeText(other *Extraction) Extraction {
	if other == nil {
		return e
	}
	mergeStr := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
		}
	}
	mergeStr(&e.ImageURL, other.ImageURL)
	mergeStr(&e.PlantDescription, other.PlantDescription)
	mergeStr(&e.GrowingNotes, other.GrowingNotes)
	mergeStr(&e.LatinName, other.LatinName)
	mergeStr(&e.LifeCycle, other.LifeCycle)
	mergeStr(&e.HybridStatus, other.HybridStatus)
	mergeStr(&e.VendorNotes, other.VendorNotes)
	return e
}

// BigFourComplete reports whether all four canonical fields have a value.
func (e *Extraction) BigFourComplete() bool {
	return !e.Sun.Empty() && !e.PlantSpacing.Empty() &&
		!e.DaysToGermination.Empty() && !e.HarvestDays.Empty()
}

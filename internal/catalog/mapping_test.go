package catalog

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCategorySlug_KnownSegments(t *testing.T) {
	expected := map[string]string{
		"men":         "mens-t-shirts",
		"women":       "womens-leggings",
		"kids":        "kids-wear",
		"shapewear":   "saree-shapewear",
		"sarees":      "fancy-sarees",
		"accessories": "accessories",
		"offers":      "special-offers",
	}

	for segment, slug := range expected {
		if got := CategorySlug(segment); got != slug {
			t.Errorf("CategorySlug(%q) = %q, want %q", segment, got, slug)
		}
	}
}

func TestProperty_UnknownSegmentsPassThrough(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("segments outside the mapping table are returned unchanged", prop.ForAll(
		func(segment string) bool {
			if _, mapped := categorySlugs[segment]; mapped {
				return true // known keys are covered by the table test
			}
			return CategorySlug(segment) == segment
		},
		gen.RegexMatch(`[a-z0-9-]{1,30}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSubcategoryFilters_AlwaysStartWithAll(t *testing.T) {
	segments := []string{"men", "women", "kids", "shapewear", "sarees", "accessories", "offers", "does-not-exist", ""}

	for _, segment := range segments {
		filters := SubcategoryFilters(segment)
		if len(filters) == 0 {
			t.Fatalf("SubcategoryFilters(%q) returned no filters", segment)
		}
		if filters[0] != "All" {
			t.Errorf("SubcategoryFilters(%q)[0] = %q, want \"All\"", segment, filters[0])
		}
	}
}

func TestSubcategoryFilters_UnknownCategoryYieldsOnlyAll(t *testing.T) {
	filters := SubcategoryFilters("mystery")
	if len(filters) != 1 || filters[0] != "All" {
		t.Errorf("SubcategoryFilters(\"mystery\") = %v, want [All]", filters)
	}
}

func TestSubcategoryFilters_ReturnsACopy(t *testing.T) {
	first := SubcategoryFilters("men")
	first[0] = "mutated"

	second := SubcategoryFilters("men")
	if second[0] != "All" {
		t.Error("mutating a returned filter slice leaked into the mapping table")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		segment string
		want    string
	}{
		{"", "All Products"},
		{"men", "Men's T-Shirts"},
		{"shapewear", "Saree Shapewear"},
		{"offers", "Special Offers"},
		{"mystery-category", "mystery-category"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.segment); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.segment, got, tt.want)
		}
	}
}

package catalog

import (
	"math"

	"apparel-storefront/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PlaceholderImageURL is served when a product has no images at all.
const PlaceholderImageURL = "/images/product-placeholder.png"

// ColorFacet is one distinct color derived from a product's variants.
type ColorFacet struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// pricePrinter formats catalog prices with en-IN digit grouping.
var pricePrinter = message.NewPrinter(language.MustParse("en-IN"))

// PrimaryImageURL picks the representative thumbnail: the first image flagged
// primary, else the first image in collection order, else the placeholder.
func PrimaryImageURL(p domain.Product) string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return PlaceholderImageURL
}

// ColorFacets returns the distinct variant colors in first-seen order.
// Variants without a color name contribute nothing.
func ColorFacets(p domain.Product) []ColorFacet {
	seen := make(map[string]bool, len(p.Variants))
	facets := []ColorFacet{}
	for _, v := range p.Variants {
		if v.Color == nil || *v.Color == "" {
			continue
		}
		if seen[*v.Color] {
			continue
		}
		seen[*v.Color] = true
		facet := ColorFacet{Name: *v.Color}
		if v.ColorCode != nil {
			facet.Code = *v.ColorCode
		}
		facets = append(facets, facet)
	}
	return facets
}

// SizeFacets returns the distinct non-empty variant size labels in first-seen
// order.
func SizeFacets(p domain.Product) []string {
	seen := make(map[string]bool, len(p.Variants))
	sizes := []string{}
	for _, v := range p.Variants {
		if v.Size == nil || *v.Size == "" {
			continue
		}
		if seen[*v.Size] {
			continue
		}
		seen[*v.Size] = true
		sizes = append(sizes, *v.Size)
	}
	return sizes
}

// FirstPurchasableVariant returns the first active in-stock variant in
// collection order, or nil when nothing is purchasable.
func FirstPurchasableVariant(p domain.Product) *domain.ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].Purchasable() {
			return &p.Variants[i]
		}
	}
	return nil
}

// DisplayPrice renders a product's base price as an integer-rounded rupee
// amount with locale digit grouping, e.g. 12999.0 -> "₹12,999".
func DisplayPrice(p domain.Product) string {
	return FormatPrice(p.Price)
}

// FormatPrice formats any price value the way DisplayPrice does. The detail
// page uses it for variant-adjusted and original prices as well.
func FormatPrice(amount float64) string {
	return pricePrinter.Sprintf("₹%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

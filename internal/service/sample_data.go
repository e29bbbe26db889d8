package service

import (
	"time"

	"apparel-storefront/internal/domain"
)

// The sample catalog keeps the storefront browsable when the product store is
// unreachable. It is intentionally tiny and clearly demo-flavored; listings
// built from it always carry Degraded=true.

func strp(s string) *string { return &s }

// SampleProducts returns a fresh copy of the fixed demo catalog. Each call
// allocates, so callers can never corrupt the template through a shared
// slice.
func SampleProducts() []domain.Product {
	seeded := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	price := 999.0

	return []domain.Product{
		{
			ID:            "1",
			Name:          "Classic Cotton T-Shirt",
			Description:   strp("Round neck cotton t-shirt in solid colors"),
			Price:         499,
			OriginalPrice: &price,
			Slug:          "classic-cotton-t-shirt",
			IsActive:      true,
			IsHotSale:     true,
			Rating:        4.5,
			ReviewCount:   128,
			CreatedAt:     seeded,
			UpdatedAt:     seeded,
			Images: []domain.ProductImage{
				{ID: "1", ProductID: "1", URL: "/images/demo/tshirt.jpg", IsPrimary: true},
			},
			Variants: []domain.ProductVariant{
				{ID: "1", ProductID: "1", Size: strp("M"), Color: strp("Navy"), ColorCode: strp("#1f2a44"), StockQuantity: 20, IsActive: true},
				{ID: "2", ProductID: "1", Size: strp("L"), Color: strp("Navy"), ColorCode: strp("#1f2a44"), StockQuantity: 12, IsActive: true},
			},
		},
		{
			ID:          "2",
			Name:        "Ankle Length Leggings",
			Description: strp("Stretchable ankle length leggings"),
			Price:       349,
			Slug:        "ankle-length-leggings",
			IsActive:    true,
			Rating:      4.2,
			ReviewCount: 86,
			CreatedAt:   seeded.Add(-24 * time.Hour),
			UpdatedAt:   seeded.Add(-24 * time.Hour),
			Images: []domain.ProductImage{
				{ID: "2", ProductID: "2", URL: "/images/demo/leggings.jpg", IsPrimary: true},
			},
			Variants: []domain.ProductVariant{
				{ID: "3", ProductID: "2", Size: strp("Free Size"), Color: strp("Black"), ColorCode: strp("#000000"), StockQuantity: 35, IsActive: true},
			},
		},
		{
			ID:          "3",
			Name:        "Saree Shapewear",
			Description: strp("Seamless saree shapewear petticoat"),
			Price:       599,
			Slug:        "saree-shapewear-classic",
			IsActive:    true,
			Rating:      4.7,
			ReviewCount: 203,
			CreatedAt:   seeded.Add(-48 * time.Hour),
			UpdatedAt:   seeded.Add(-48 * time.Hour),
			Images: []domain.ProductImage{
				{ID: "3", ProductID: "3", URL: "/images/demo/shapewear.jpg", IsPrimary: true},
			},
			Variants: []domain.ProductVariant{
				{ID: "4", ProductID: "3", Size: strp("M"), Color: strp("Beige"), ColorCode: strp("#d9c5a0"), StockQuantity: 18, IsActive: true},
				{ID: "5", ProductID: "3", Size: strp("XL"), Color: strp("Maroon"), ColorCode: strp("#6e1423"), StockQuantity: 0, IsActive: true},
			},
		},
	}
}

package catalog

import (
	"strings"

	"apparel-storefront/internal/domain"
)

// FilterBySubcategory narrows an already-fetched product set by a subcategory
// filter token. The token "All" (any case) or an empty token selects
// everything. Matching is a case-insensitive substring scan over product name
// and description; products without a description only match on name.
//
// The input slice is never mutated and the result is always a fresh slice.
func FilterBySubcategory(products []domain.Product, token string) []domain.Product {
	if token == "" || strings.EqualFold(token, "all") {
		out := make([]domain.Product, len(products))
		copy(out, products)
		return out
	}

	needle := strings.ToLower(token)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
			continue
		}
		if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

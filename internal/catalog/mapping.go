package catalog

// The storefront's URL segments ("men", "shapewear", ...) are marketing names,
// not the slugs the categories table actually uses. These tables translate
// between the two and carry the per-category merchandising metadata that the
// category pages render.

var categorySlugs = map[string]string{
	"men":         "mens-t-shirts",
	"women":       "womens-leggings",
	"kids":        "kids-wear",
	"shapewear":   "saree-shapewear",
	"sarees":      "fancy-sarees",
	"accessories": "accessories",
	"offers":      "special-offers",
}

var categoryDisplayNames = map[string]string{
	"men":         "Men's T-Shirts",
	"women":       "Women's Leggings",
	"kids":        "Kids Wear",
	"shapewear":   "Saree Shapewear",
	"sarees":      "Fancy Sarees",
	"accessories": "Accessories",
	"offers":      "Special Offers",
}

var subcategoryFilters = map[string][]string{
	"men":         {"All", "Round Neck", "V Neck", "Polo", "Full Sleeve"},
	"women":       {"All", "Ankle Length", "Churidar", "Capri", "Printed"},
	"kids":        {"All", "T-Shirts", "Shorts", "Frocks"},
	"shapewear":   {"All", "Cotton", "Lycra", "Seamless"},
	"sarees":      {"All", "Silk", "Georgette", "Chiffon"},
	"accessories": {"All", "Belts", "Socks", "Caps"},
	"offers":      {"All"},
}

// CategorySlug maps a URL category segment to its canonical category slug.
// Unknown segments pass through unchanged so already-canonical slugs keep
// working.
func CategorySlug(urlCategory string) string {
	if slug, ok := categorySlugs[urlCategory]; ok {
		return slug
	}
	return urlCategory
}

// SubcategoryFilters returns the fixed filter labels for a category page,
// always starting with "All".
func SubcategoryFilters(urlCategory string) []string {
	filters, ok := subcategoryFilters[urlCategory]
	if !ok {
		return []string{"All"}
	}
	out := make([]string, len(filters))
	copy(out, filters)
	return out
}

// DisplayName returns the human title for a category page. An empty segment
// means the unfiltered storefront.
func DisplayName(urlCategory string) string {
	if urlCategory == "" {
		return "All Products"
	}
	if name, ok := categoryDisplayNames[urlCategory]; ok {
		return name
	}
	return urlCategory
}

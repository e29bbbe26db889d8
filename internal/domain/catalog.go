package domain

import "time"

// Product represents a storefront product with its joined category, images and
// variants. IDs are opaque strings; the store issues UUIDs but nothing in the
// read path depends on that.
type Product struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   *string   `json:"description,omitempty" db:"description"`
	CategoryID    *string   `json:"category_id,omitempty" db:"category_id"`
	Subcategory   *string   `json:"subcategory,omitempty" db:"subcategory"`
	Price         float64   `json:"price" db:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty" db:"original_price"`
	SKU           *string   `json:"sku,omitempty" db:"sku"`
	Slug          string    `json:"slug" db:"slug"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	IsHotSale     bool      `json:"is_hot_sale" db:"is_hot_sale"`
	Rating        float64   `json:"rating" db:"rating"`
	ReviewCount   int       `json:"review_count" db:"review_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`

	Category *Category        `json:"category,omitempty"`
	Images   []ProductImage   `json:"images"`
	Variants []ProductVariant `json:"variants"`
}

// Category represents a product category
type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ProductImage represents one image of a product. Images are always fetched
// ordered by sort_order then id, so "first in collection order" is stable.
type ProductImage struct {
	ID        string  `json:"id" db:"id"`
	ProductID string  `json:"product_id" db:"product_id"`
	URL       string  `json:"url" db:"url"`
	AltText   *string `json:"alt_text,omitempty" db:"alt_text"`
	IsPrimary bool    `json:"is_primary" db:"is_primary"`
	SortOrder int     `json:"sort_order" db:"sort_order"`
}

// ProductVariant represents a purchasable size/color/stock combination.
type ProductVariant struct {
	ID              string  `json:"id" db:"id"`
	ProductID       string  `json:"product_id" db:"product_id"`
	Size            *string `json:"size,omitempty" db:"size"`
	Color           *string `json:"color,omitempty" db:"color"`
	ColorCode       *string `json:"color_code,omitempty" db:"color_code"`
	StockQuantity   int     `json:"stock_quantity" db:"stock_quantity"`
	PriceAdjustment float64 `json:"price_adjustment" db:"price_adjustment"`
	IsActive        bool    `json:"is_active" db:"is_active"`
}

// Purchasable reports whether the variant can be added to a cart.
func (v ProductVariant) Purchasable() bool {
	return v.IsActive && v.StockQuantity > 0
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"apparel-storefront/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

const (
	// DefaultRelatedLimit caps the related-products strip on the detail page.
	DefaultRelatedLimit = 4
	// DefaultRecommendedLimit caps the recommended-products section.
	DefaultRecommendedLimit = 6
	// RecommendedRatingFloor is the minimum rating for a non-promoted product
	// to qualify as recommended.
	RecommendedRatingFloor = 4.0
)

// ProductRepository defines the read accessors for the storefront catalog.
// Every accessor returns fully hydrated products: joined category plus the
// complete image and variant collections, in a single logical read.
type ProductRepository interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	ListByCategorySlug(ctx context.Context, categorySlug string) ([]domain.Product, error)
	ListPromoted(ctx context.Context) ([]domain.Product, error)
	ListRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]domain.Product, error)
	ListRecommended(ctx context.Context, limit int) ([]domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// productSelect is the shared projection: product columns plus the joined
// category. The join is LEFT because category_id is nullable.
const productSelect = `
	SELECT p.id, p.name, p.description, p.category_id, p.subcategory,
	       p.price, p.original_price, p.sku, p.slug, p.is_active, p.is_hot_sale,
	       p.rating, p.review_count, p.created_at, p.updated_at,
	       c.id, c.name, c.slug, c.created_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
`

// ListActive retrieves every active product, newest first.
func (r *productRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	query := productSelect + `
		WHERE p.is_active = TRUE
		ORDER BY p.created_at DESC
	`

	products, err := r.queryProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active products: %w", err)
	}

	return r.hydrate(ctx, products)
}

// FindBySlug retrieves a single active product by its unique slug.
func (r *productRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := productSelect + `
		WHERE p.slug = $1 AND p.is_active = TRUE
	`

	product, err := r.queryOneProduct(ctx, query, slug)
	if err != nil {
		if err == ErrProductNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find product by slug: %w", err)
	}

	return product, nil
}

// FindByID retrieves a single active product by id.
func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := productSelect + `
		WHERE p.id = $1 AND p.is_active = TRUE
	`

	product, err := r.queryOneProduct(ctx, query, id)
	if err != nil {
		if err == ErrProductNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// ListByCategorySlug retrieves active products belonging to the category with
// the given slug, newest first. The join is INNER here: uncategorized
// products never appear on a category page.
func (r *productRepository) ListByCategorySlug(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.category_id, p.subcategory,
		       p.price, p.original_price, p.sku, p.slug, p.is_active, p.is_hot_sale,
		       p.rating, p.review_count, p.created_at, p.updated_at,
		       c.id, c.name, c.slug, c.created_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE c.slug = $1 AND p.is_active = TRUE
		ORDER BY p.created_at DESC
	`

	products, err := r.queryProducts(ctx, query, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}

	return r.hydrate(ctx, products)
}

// ListPromoted retrieves active hot-sale products, newest first.
func (r *productRepository) ListPromoted(ctx context.Context) ([]domain.Product, error) {
	query := productSelect + `
		WHERE p.is_hot_sale = TRUE AND p.is_active = TRUE
		ORDER BY p.created_at DESC
	`

	products, err := r.queryProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list promoted products: %w", err)
	}

	return r.hydrate(ctx, products)
}

// ListRelated retrieves up to limit active products from the same category,
// excluding one product id, newest first.
func (r *productRepository) ListRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	query := productSelect + `
		WHERE p.category_id = $1 AND p.id <> $2 AND p.is_active = TRUE
		ORDER BY p.created_at DESC
		LIMIT $3
	`

	products, err := r.queryProducts(ctx, query, categoryID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list related products: %w", err)
	}

	return r.hydrate(ctx, products)
}

// ListRecommended retrieves up to limit active products that are either
// promoted or rated at least the recommendation floor, best rated first.
func (r *productRepository) ListRecommended(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = DefaultRecommendedLimit
	}

	query := productSelect + `
		WHERE p.is_active = TRUE AND (p.is_hot_sale = TRUE OR p.rating >= $1)
		ORDER BY p.rating DESC, p.created_at DESC
		LIMIT $2
	`

	products, err := r.queryProducts(ctx, query, RecommendedRatingFloor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommended products: %w", err)
	}

	return r.hydrate(ctx, products)
}

// queryProducts runs a product projection query and scans the result rows.
func (r *productRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// queryOneProduct runs a single-row product query and hydrates the result.
func (r *productRepository) queryOneProduct(ctx context.Context, query string, args ...interface{}) (*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrProductNotFound
	}

	product, err := scanProduct(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	rows.Close()

	hydrated, err := r.hydrate(ctx, []domain.Product{*product})
	if err != nil {
		return nil, err
	}

	return &hydrated[0], nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}

	var (
		description   sql.NullString
		categoryID    sql.NullString
		subcategory   sql.NullString
		originalPrice sql.NullFloat64
		sku           sql.NullString
		catID         sql.NullString
		catName       sql.NullString
		catSlug       sql.NullString
		catCreatedAt  sql.NullTime
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&description,
		&categoryID,
		&subcategory,
		&product.Price,
		&originalPrice,
		&sku,
		&product.Slug,
		&product.IsActive,
		&product.IsHotSale,
		&product.Rating,
		&product.ReviewCount,
		&product.CreatedAt,
		&product.UpdatedAt,
		&catID,
		&catName,
		&catSlug,
		&catCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Description = nullableString(description)
	product.CategoryID = nullableString(categoryID)
	product.Subcategory = nullableString(subcategory)
	product.SKU = nullableString(sku)
	if originalPrice.Valid {
		price := originalPrice.Float64
		product.OriginalPrice = &price
	}
	if catID.Valid {
		product.Category = &domain.Category{
			ID:        catID.String,
			Name:      catName.String,
			Slug:      catSlug.String,
			CreatedAt: catCreatedAt.Time,
		}
	}
	product.Images = []domain.ProductImage{}
	product.Variants = []domain.ProductVariant{}

	return product, nil
}

// hydrate attaches the full image and variant collections to each product in
// one query per table. Images come back ordered by sort_order then id, which
// makes "first image" deterministic for the thumbnail fallback.
func (r *productRepository) hydrate(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	if len(products) == 0 {
		return products, nil
	}

	ids := make([]string, len(products))
	index := make(map[string]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
		index[p.ID] = i
	}

	if err := r.attachImages(ctx, products, ids, index); err != nil {
		return nil, err
	}
	if err := r.attachVariants(ctx, products, ids, index); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) attachImages(ctx context.Context, products []domain.Product, ids []string, index map[string]int) error {
	query := `
		SELECT id, product_id, url, alt_text, is_primary, sort_order
		FROM product_images
		WHERE product_id = ANY($1::uuid[])
		ORDER BY product_id, sort_order, id
	`

	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		img := domain.ProductImage{}
		var altText sql.NullString
		err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &altText, &img.IsPrimary, &img.SortOrder)
		if err != nil {
			return fmt.Errorf("failed to scan product image: %w", err)
		}
		img.AltText = nullableString(altText)

		if i, ok := index[img.ProductID]; ok {
			products[i].Images = append(products[i].Images, img)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating product images: %w", err)
	}

	return nil
}

func (r *productRepository) attachVariants(ctx context.Context, products []domain.Product, ids []string, index map[string]int) error {
	query := `
		SELECT id, product_id, size, color, color_code, stock_quantity, price_adjustment, is_active
		FROM product_variants
		WHERE product_id = ANY($1::uuid[])
		ORDER BY product_id, id
	`

	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load product variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		variant := domain.ProductVariant{}
		var size, color, colorCode sql.NullString
		err := rows.Scan(
			&variant.ID,
			&variant.ProductID,
			&size,
			&color,
			&colorCode,
			&variant.StockQuantity,
			&variant.PriceAdjustment,
			&variant.IsActive,
		)
		if err != nil {
			return fmt.Errorf("failed to scan product variant: %w", err)
		}
		variant.Size = nullableString(size)
		variant.Color = nullableString(color)
		variant.ColorCode = nullableString(colorCode)

		if i, ok := index[variant.ProductID]; ok {
			products[i].Variants = append(products[i].Variants, variant)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating product variants: %w", err)
	}

	return nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

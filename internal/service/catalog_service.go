package service

import (
	"context"
	"fmt"

	"apparel-storefront/internal/catalog"
	"apparel-storefront/internal/domain"
	"apparel-storefront/internal/repository"

	"go.uber.org/zap"
)

// StorefrontListing is the home-page product set. Degraded is true when the
// backend was unreachable and the fixed sample catalog was served instead, so
// callers can tell demo data apart from the real thing.
type StorefrontListing struct {
	Products []domain.Product
	Degraded bool
}

// CategoryListing is everything a category page needs: the resolved display
// metadata, the available subcategory filter labels, and the (optionally
// filtered) product set.
type CategoryListing struct {
	DisplayName  string
	CategorySlug string
	Filters      []string
	Subcategory  string
	Products     []domain.Product
}

// CatalogService defines the storefront's read operations. It owns the
// URL-segment-to-slug mapping and the subcategory filter chain; repositories
// stay ignorant of both.
type CatalogService interface {
	ListStorefront(ctx context.Context) (*StorefrontListing, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	ListCategoryProducts(ctx context.Context, urlCategory, subcategory string) (*CategoryListing, error)
	ListBestSelling(ctx context.Context) ([]domain.Product, error)
	ListRecommended(ctx context.Context, limit int) ([]domain.Product, error)
	ListRelated(ctx context.Context, slug string, limit int) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	demoFallback bool
	logger       *zap.Logger
}

// NewCatalogService creates a new instance of CatalogService. When
// demoFallback is true, a failure to load the storefront listing degrades to
// the fixed sample catalog instead of propagating the error.
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	demoFallback bool,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		demoFallback: demoFallback,
		logger:       logger,
	}
}

// ListStorefront returns every active product for the home page. On backend
// failure with the demo fallback enabled it serves the sample catalog and
// flags the listing as degraded rather than showing shoppers an empty shop.
func (s *catalogService) ListStorefront(ctx context.Context) (*StorefrontListing, error) {
	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		if !s.demoFallback {
			return nil, fmt.Errorf("failed to load storefront: %w", err)
		}
		s.logger.Warn("Storefront listing degraded to sample catalog", zap.Error(err))
		return &StorefrontListing{Products: SampleProducts(), Degraded: true}, nil
	}

	return &StorefrontListing{Products: products}, nil
}

// GetProduct returns a single active product by slug.
func (s *catalogService) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// ListCategoryProducts resolves a URL category segment to its storage slug,
// fetches that category's products and applies the subcategory filter token.
func (s *catalogService) ListCategoryProducts(ctx context.Context, urlCategory, subcategory string) (*CategoryListing, error) {
	slug := catalog.CategorySlug(urlCategory)

	products, err := s.productRepo.ListByCategorySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to list category products: %w", err)
	}

	return &CategoryListing{
		DisplayName:  catalog.DisplayName(urlCategory),
		CategorySlug: slug,
		Filters:      catalog.SubcategoryFilters(urlCategory),
		Subcategory:  subcategory,
		Products:     catalog.FilterBySubcategory(products, subcategory),
	}, nil
}

// ListBestSelling returns the promoted (hot sale) products.
func (s *catalogService) ListBestSelling(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListPromoted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list best selling products: %w", err)
	}
	return products, nil
}

// ListRecommended returns the promoted-or-highly-rated heuristic set.
func (s *catalogService) ListRecommended(ctx context.Context, limit int) ([]domain.Product, error) {
	products, err := s.productRepo.ListRecommended(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommended products: %w", err)
	}
	return products, nil
}

// ListRelated returns other products from the same category as the product
// with the given slug. Products without a category have no related set.
func (s *catalogService) ListRelated(ctx context.Context, slug string, limit int) ([]domain.Product, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find product for related lookup: %w", err)
	}

	if product.CategoryID == nil {
		return []domain.Product{}, nil
	}

	related, err := s.productRepo.ListRelated(ctx, *product.CategoryID, product.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list related products: %w", err)
	}
	return related, nil
}

// ListCategories returns all categories.
func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

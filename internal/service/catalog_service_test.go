package service

import (
	"context"
	"errors"
	"testing"

	"apparel-storefront/internal/domain"
	"apparel-storefront/internal/repository"

	"go.uber.org/zap"
)

// Mock repositories for testing
type mockProductRepository struct {
	products    []domain.Product
	failListAll bool

	lastCategorySlug string
	lastRelatedArgs  [2]string
	lastLimit        int
}

func (m *mockProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	if m.failListAll {
		return nil, errors.New("connection refused")
	}
	return m.products, nil
}

func (m *mockProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for i := range m.products {
		if m.products[i].Slug == slug && m.products[i].IsActive {
			return &m.products[i], nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id && m.products[i].IsActive {
			return &m.products[i], nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) ListByCategorySlug(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	m.lastCategorySlug = categorySlug
	out := []domain.Product{}
	for _, p := range m.products {
		if p.Category != nil && p.Category.Slug == categorySlug && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepository) ListPromoted(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range m.products {
		if p.IsHotSale && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepository) ListRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]domain.Product, error) {
	m.lastRelatedArgs = [2]string{categoryID, excludeID}
	m.lastLimit = limit
	out := []domain.Product{}
	for _, p := range m.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID && p.ID != excludeID && p.IsActive {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockProductRepository) ListRecommended(ctx context.Context, limit int) ([]domain.Product, error) {
	m.lastLimit = limit
	out := []domain.Product{}
	for _, p := range m.products {
		if p.IsActive && (p.IsHotSale || p.Rating >= repository.RecommendedRatingFloor) {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type mockCategoryRepository struct {
	categories []domain.Category
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	return m.categories, nil
}

func (m *mockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	for i := range m.categories {
		if m.categories[i].Slug == slug {
			return &m.categories[i], nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func newTestService(productRepo *mockProductRepository, demoFallback bool) CatalogService {
	return NewCatalogService(productRepo, &mockCategoryRepository{}, demoFallback, zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestListStorefront_DegradesToSampleCatalog(t *testing.T) {
	svc := newTestService(&mockProductRepository{failListAll: true}, true)

	listing, err := svc.ListStorefront(context.Background())
	if err != nil {
		t.Fatalf("expected degraded listing, got error: %v", err)
	}

	if !listing.Degraded {
		t.Error("listing served from sample catalog must be flagged degraded")
	}

	if len(listing.Products) != 3 {
		t.Fatalf("got %d sample products, want 3", len(listing.Products))
	}
	for i, wantID := range []string{"1", "2", "3"} {
		if listing.Products[i].ID != wantID {
			t.Errorf("sample product %d has id %q, want %q", i, listing.Products[i].ID, wantID)
		}
	}
}

func TestListStorefront_FallbackDisabledPropagatesError(t *testing.T) {
	svc := newTestService(&mockProductRepository{failListAll: true}, false)

	if _, err := svc.ListStorefront(context.Background()); err == nil {
		t.Fatal("expected error with demo fallback disabled")
	}
}

func TestListStorefront_HealthyBackendIsNotDegraded(t *testing.T) {
	repo := &mockProductRepository{products: []domain.Product{
		{ID: "p1", Name: "Polo", Slug: "polo", IsActive: true},
	}}
	svc := newTestService(repo, true)

	listing, err := svc.ListStorefront(context.Background())
	if err != nil {
		t.Fatalf("ListStorefront failed: %v", err)
	}
	if listing.Degraded {
		t.Error("healthy listing must not be flagged degraded")
	}
	if len(listing.Products) != 1 || listing.Products[0].ID != "p1" {
		t.Errorf("got %v, want the repository's products", listing.Products)
	}
}

func TestListCategoryProducts_MapsSegmentAndFilters(t *testing.T) {
	mens := &domain.Category{ID: "c1", Name: "Men's T-Shirts", Slug: "mens-t-shirts"}
	repo := &mockProductRepository{products: []domain.Product{
		{ID: "p1", Name: "Polo Neck T-Shirt", Slug: "polo", IsActive: true, Category: mens},
		{ID: "p2", Name: "Round Neck T-Shirt", Slug: "round", IsActive: true, Category: mens},
	}}
	svc := newTestService(repo, true)

	listing, err := svc.ListCategoryProducts(context.Background(), "men", "Polo")
	if err != nil {
		t.Fatalf("ListCategoryProducts failed: %v", err)
	}

	if repo.lastCategorySlug != "mens-t-shirts" {
		t.Errorf("repository queried with slug %q, want mens-t-shirts", repo.lastCategorySlug)
	}
	if listing.DisplayName != "Men's T-Shirts" {
		t.Errorf("display name = %q, want Men's T-Shirts", listing.DisplayName)
	}
	if len(listing.Filters) == 0 || listing.Filters[0] != "All" {
		t.Errorf("filters = %v, want list starting with All", listing.Filters)
	}
	if len(listing.Products) != 1 || listing.Products[0].ID != "p1" {
		t.Errorf("subcategory filter kept %v, want only p1", listing.Products)
	}
}

func TestListCategoryProducts_AllTokenKeepsEverything(t *testing.T) {
	mens := &domain.Category{ID: "c1", Name: "Men's T-Shirts", Slug: "mens-t-shirts"}
	repo := &mockProductRepository{products: []domain.Product{
		{ID: "p1", Name: "Polo", Slug: "polo", IsActive: true, Category: mens},
		{ID: "p2", Name: "Round Neck", Slug: "round", IsActive: true, Category: mens},
	}}
	svc := newTestService(repo, true)

	listing, err := svc.ListCategoryProducts(context.Background(), "men", "All")
	if err != nil {
		t.Fatalf("ListCategoryProducts failed: %v", err)
	}
	if len(listing.Products) != 2 {
		t.Errorf("got %d products, want 2", len(listing.Products))
	}
}

func TestListRelated_UsesProductCategoryAndExcludesSelf(t *testing.T) {
	repo := &mockProductRepository{products: []domain.Product{
		{ID: "p1", Slug: "current", IsActive: true, CategoryID: strPtr("c1")},
		{ID: "p2", Slug: "other", IsActive: true, CategoryID: strPtr("c1")},
	}}
	svc := newTestService(repo, true)

	related, err := svc.ListRelated(context.Background(), "current", 4)
	if err != nil {
		t.Fatalf("ListRelated failed: %v", err)
	}

	if repo.lastRelatedArgs != [2]string{"c1", "p1"} {
		t.Errorf("repository called with %v, want [c1 p1]", repo.lastRelatedArgs)
	}
	if len(related) != 1 || related[0].ID != "p2" {
		t.Errorf("got %v, want only p2", related)
	}
}

func TestListRelated_NoCategoryYieldsEmpty(t *testing.T) {
	repo := &mockProductRepository{products: []domain.Product{
		{ID: "p1", Slug: "loose", IsActive: true},
	}}
	svc := newTestService(repo, true)

	related, err := svc.ListRelated(context.Background(), "loose", 4)
	if err != nil {
		t.Fatalf("ListRelated failed: %v", err)
	}
	if len(related) != 0 {
		t.Errorf("got %d related products for an uncategorized product, want 0", len(related))
	}
}

func TestListRelated_UnknownSlugReturnsNotFound(t *testing.T) {
	svc := newTestService(&mockProductRepository{}, true)

	if _, err := svc.ListRelated(context.Background(), "ghost", 4); err != repository.ErrProductNotFound {
		t.Errorf("got %v, want ErrProductNotFound", err)
	}
}

func TestSampleProducts_ReturnsFreshCopies(t *testing.T) {
	first := SampleProducts()
	first[0].Name = "mutated"
	first[0].Variants[0].StockQuantity = -1

	second := SampleProducts()
	if second[0].Name == "mutated" {
		t.Error("SampleProducts shares product structs between calls")
	}
	if second[0].Variants[0].StockQuantity == -1 {
		t.Error("SampleProducts shares variant slices between calls")
	}
}

package transport

import (
	"net/http"
	"strconv"

	"apparel-storefront/internal/catalog"
	"apparel-storefront/internal/domain"
	"apparel-storefront/internal/middleware"
	"apparel-storefront/internal/repository"
	"apparel-storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductSummary is the card view model used on listing pages.
type ProductSummary struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	Slug                 string               `json:"slug"`
	Price                float64              `json:"price"`
	DisplayPrice         string               `json:"display_price"`
	OriginalDisplayPrice string               `json:"original_display_price,omitempty"`
	ImageURL             string               `json:"image_url"`
	Rating               float64              `json:"rating"`
	ReviewCount          int                  `json:"review_count"`
	IsHotSale            bool                 `json:"is_hot_sale"`
	Colors               []catalog.ColorFacet `json:"colors"`
}

// ImageView is one gallery image on the detail page.
type ImageView struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// VariantView is one selectable variant on the detail page.
type VariantView struct {
	ID           string  `json:"id"`
	Size         string  `json:"size,omitempty"`
	Color        string  `json:"color,omitempty"`
	ColorCode    string  `json:"color_code,omitempty"`
	Stock        int     `json:"stock"`
	Price        float64 `json:"price"`
	DisplayPrice string  `json:"display_price"`
	Purchasable  bool    `json:"purchasable"`
}

// ProductDetail is the full detail-page view model.
type ProductDetail struct {
	ProductSummary
	Description    string        `json:"description,omitempty"`
	Category       string        `json:"category,omitempty"`
	CategorySlug   string        `json:"category_slug,omitempty"`
	Subcategory    string        `json:"subcategory,omitempty"`
	SKU            string        `json:"sku,omitempty"`
	Images         []ImageView   `json:"images"`
	Sizes          []string      `json:"sizes"`
	Variants       []VariantView `json:"variants"`
	DefaultVariant *VariantView  `json:"default_variant,omitempty"`
}

// ProductListResponse wraps a product list.
type ProductListResponse struct {
	Products []ProductSummary `json:"products"`
	Degraded bool             `json:"degraded,omitempty"`
}

// CategoryResponse is one catalog category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryPageResponse is the category page: metadata, filter labels and the
// filtered product set.
type CategoryPageResponse struct {
	DisplayName  string           `json:"display_name"`
	CategorySlug string           `json:"category_slug"`
	Filters      []string         `json:"filters"`
	Subcategory  string           `json:"subcategory,omitempty"`
	Products     []ProductSummary `json:"products"`
}

// listQuery carries the optional limit query parameter.
type listQuery struct {
	Limit int `validate:"gte=0,lte=24"`
}

// CatalogHandler handles HTTP requests for the storefront catalog
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListStorefront)
		r.Get("/best-selling", h.ListBestSelling)
		r.Get("/recommended", h.ListRecommended)
		r.Get("/{slug}", h.GetProduct)
		r.Get("/{slug}/related", h.ListRelated)
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/{category}", h.GetCategoryPageMeta)
		r.Get("/{category}/products", h.ListCategoryProducts)
	})
}

// ListStorefront handles the home page listing
func (h *CatalogHandler) ListStorefront(w http.ResponseWriter, r *http.Request) {
	listing, err := h.catalogService.ListStorefront(r.Context())
	if err != nil {
		h.logger.Error("Failed to list storefront products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: toSummaries(listing.Products),
		Degraded: listing.Degraded,
	})
}

// ListBestSelling handles the best-selling merchandising section
func (h *CatalogHandler) ListBestSelling(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListBestSelling(r.Context())
	if err != nil {
		h.logger.Error("Failed to list best selling products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{Products: toSummaries(products)})
}

// ListRecommended handles the recommended products section
func (h *CatalogHandler) ListRecommended(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseListQuery(w, r)
	if !ok {
		return
	}

	products, err := h.catalogService.ListRecommended(r.Context(), query.Limit)
	if err != nil {
		h.logger.Error("Failed to list recommended products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{Products: toSummaries(products)})
}

// GetProduct handles the product detail page
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.catalogService.GetProduct(r.Context(), slug)
	if err != nil {
		if err == repository.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to get product", zap.String("slug", slug), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toDetail(*product))
}

// ListRelated handles the related-products strip on the detail page
func (h *CatalogHandler) ListRelated(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	query, ok := h.parseListQuery(w, r)
	if !ok {
		return
	}

	products, err := h.catalogService.ListRelated(r.Context(), slug, query.Limit)
	if err != nil {
		if err == repository.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to list related products", zap.String("slug", slug), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{Products: toSummaries(products)})
}

// ListCategories handles the category navigation list
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}

	middleware.RespondWithJSON(w, http.StatusOK, out)
}

// GetCategoryPageMeta returns the display name and filter labels for a
// category URL segment. This never touches the database: the mapping tables
// are fixed.
func (h *CatalogHandler) GetCategoryPageMeta(w http.ResponseWriter, r *http.Request) {
	urlCategory := chi.URLParam(r, "category")

	middleware.RespondWithJSON(w, http.StatusOK, CategoryPageResponse{
		DisplayName:  catalog.DisplayName(urlCategory),
		CategorySlug: catalog.CategorySlug(urlCategory),
		Filters:      catalog.SubcategoryFilters(urlCategory),
		Products:     []ProductSummary{},
	})
}

// ListCategoryProducts handles a category page with optional subcategory
// filtering
func (h *CatalogHandler) ListCategoryProducts(w http.ResponseWriter, r *http.Request) {
	urlCategory := chi.URLParam(r, "category")
	subcategory := r.URL.Query().Get("subcategory")

	listing, err := h.catalogService.ListCategoryProducts(r.Context(), urlCategory, subcategory)
	if err != nil {
		h.logger.Error("Failed to list category products",
			zap.String("category", urlCategory),
			zap.Error(err),
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, CategoryPageResponse{
		DisplayName:  listing.DisplayName,
		CategorySlug: listing.CategorySlug,
		Filters:      listing.Filters,
		Subcategory:  listing.Subcategory,
		Products:     toSummaries(listing.Products),
	})
}

// parseListQuery reads and validates the optional limit parameter. A zero
// limit means "use the operation's default".
func (h *CatalogHandler) parseListQuery(w http.ResponseWriter, r *http.Request) (listQuery, bool) {
	query := listQuery{}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid limit parameter")
			return query, false
		}
		query.Limit = limit
	}

	if err := middleware.ValidateStruct(query); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return query, false
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid query parameters")
		return query, false
	}

	return query, true
}

func toSummaries(products []domain.Product) []ProductSummary {
	out := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, toSummary(p))
	}
	return out
}

func toSummary(p domain.Product) ProductSummary {
	summary := ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        p.Price,
		DisplayPrice: catalog.DisplayPrice(p),
		ImageURL:     catalog.PrimaryImageURL(p),
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		IsHotSale:    p.IsHotSale,
		Colors:       catalog.ColorFacets(p),
	}
	if p.OriginalPrice != nil {
		summary.OriginalDisplayPrice = catalog.FormatPrice(*p.OriginalPrice)
	}
	return summary
}

func toDetail(p domain.Product) ProductDetail {
	detail := ProductDetail{
		ProductSummary: toSummary(p),
		Images:         make([]ImageView, 0, len(p.Images)),
		Sizes:          catalog.SizeFacets(p),
		Variants:       make([]VariantView, 0, len(p.Variants)),
	}

	if p.Description != nil {
		detail.Description = *p.Description
	}
	if p.Subcategory != nil {
		detail.Subcategory = *p.Subcategory
	}
	if p.SKU != nil {
		detail.SKU = *p.SKU
	}
	if p.Category != nil {
		detail.Category = p.Category.Name
		detail.CategorySlug = p.Category.Slug
	}

	for _, img := range p.Images {
		view := ImageView{URL: img.URL, IsPrimary: img.IsPrimary}
		if img.AltText != nil {
			view.AltText = *img.AltText
		}
		detail.Images = append(detail.Images, view)
	}

	for _, v := range p.Variants {
		detail.Variants = append(detail.Variants, toVariantView(p, v))
	}

	if first := catalog.FirstPurchasableVariant(p); first != nil {
		view := toVariantView(p, *first)
		detail.DefaultVariant = &view
	}

	return detail
}

func toVariantView(p domain.Product, v domain.ProductVariant) VariantView {
	price := p.Price + v.PriceAdjustment
	view := VariantView{
		ID:           v.ID,
		Stock:        v.StockQuantity,
		Price:        price,
		DisplayPrice: catalog.FormatPrice(price),
		Purchasable:  v.Purchasable(),
	}
	if v.Size != nil {
		view.Size = *v.Size
	}
	if v.Color != nil {
		view.Color = *v.Color
	}
	if v.ColorCode != nil {
		view.ColorCode = *v.ColorCode
	}
	return view
}

package catalog

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mytheresa/storefront/app/view"
	"github.com/mytheresa/storefront/models"
)

// relatedLimit caps the related products shown on a product page.
const relatedLimit = 4

type ProductProvider interface {
	GetFilteredProducts(ctx context.Context, filters models.ProductFilters) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetRelated(ctx context.Context, product *models.Product, limit int) ([]models.Product, error)
	GetPriceList(ctx context.Context) ([]models.Product, error)
}

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

type BrandProvider interface {
	GetAllBrands(ctx context.Context) ([]models.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, tmpl, content view.Template, data any) error
}

type CatalogHandler struct {
	products   ProductProvider
	categories CategoryProvider
	brands     BrandProvider
	view       Renderer
	logger     *zap.Logger
}

func NewCatalogHandler(p ProductProvider, c CategoryProvider, b BrandProvider, v Renderer, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		products:   p,
		categories: c,
		brands:     b,
		view:       v,
		logger:     logger,
	}
}

func (h *CatalogHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	layout, err := h.layout(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, view.ForPage(r, view.Home), view.Home, layout)
}

// HandleCatalog lists products for /catalog/ and /catalog/{category}/.
// The category path segment takes precedence over the category query
// parameter, which is only read when the path has none.
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	basePath := "/catalog/"
	categorySlug := r.PathValue("category")
	if categorySlug != "" {
		basePath += categorySlug + "/"
	} else {
		categorySlug = query.Get("category")
	}
	brandSlug := query.Get("brand")
	search := strings.TrimSpace(query.Get("q"))

	layout, err := h.layout(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	data := view.CatalogData{
		Layout:   layout,
		BasePath: basePath,
		Filters: view.FilterParams{
			Category: categorySlug,
			Brand:    brandSlug,
			Q:        search,
		},
		SearchQuery: search,
		ShowSearch:  view.ParseIntent(query) == view.IntentShowSearch,
	}
	filters := models.ProductFilters{Query: search}

	if categorySlug != "" {
		category, err := h.categories.GetBySlug(ctx, categorySlug)
		if err != nil {
			if errors.Is(err, models.ErrCategoryNotFound) {
				http.Error(w, "Category not found", http.StatusNotFound)
				return
			}
			h.serverError(w, r, err)
			return
		}
		data.CurrentCategory = category
		data.ActiveCategory = category.Slug
		filters.CategoryID = &category.ID
	}

	if brandSlug != "" {
		brand, err := h.brands.GetBySlug(ctx, brandSlug)
		if err != nil {
			if errors.Is(err, models.ErrBrandNotFound) {
				http.Error(w, "Brand not found", http.StatusNotFound)
				return
			}
			h.serverError(w, r, err)
			return
		}
		data.CurrentBrand = brand
		filters.BrandID = &brand.ID
	}

	// The search and filter controls only echo the filters; they list no products.
	tmpl := view.ForCatalog(r)
	switch tmpl {
	case view.SearchButton, view.SearchInput, view.FilterModal:
		h.render(w, r, tmpl, view.Catalog, data)
		return
	}

	products, err := h.products.GetFilteredProducts(ctx, filters)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	data.Products = products

	h.render(w, r, tmpl, view.Catalog, data)
}

func (h *CatalogHandler) HandleProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := r.PathValue("slug")

	product, err := h.products.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		h.serverError(w, r, err)
		return
	}

	layout, err := h.layout(ctx)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if product.Category != nil {
		layout.ActiveCategory = product.Category.Slug
	}

	related, err := h.products.GetRelated(ctx, product, relatedLimit)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	data := view.ProductData{
		Layout:  layout,
		Product: product,
		Related: related,
	}
	h.render(w, r, view.ForPage(r, view.ProductDetail), view.ProductDetail, data)
}

func (h *CatalogHandler) layout(ctx context.Context) (view.Layout, error) {
	categories, err := h.categories.GetAllCategories(ctx)
	if err != nil {
		return view.Layout{}, err
	}
	brands, err := h.brands.GetAllBrands(ctx)
	if err != nil {
		return view.Layout{}, err
	}
	return view.Layout{Categories: categories, Brands: brands}, nil
}

func (h *CatalogHandler) render(w http.ResponseWriter, r *http.Request, tmpl, content view.Template, data any) {
	err := h.view.Render(w, http.StatusOK, tmpl, content, data)
	if err == nil {
		return
	}
	if errors.Is(err, view.ErrTemplate) {
		h.serverError(w, r, err)
		return
	}
	h.logger.Warn("failed to write response", zap.String("path", r.URL.Path), zap.Error(err))
}

func (h *CatalogHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

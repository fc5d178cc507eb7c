package catalog

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mytheresa/storefront/app/view"
	"github.com/mytheresa/storefront/models"
)

// --- Mock Repos ---

type MockProductRepo struct {
	SourceProducts []models.Product
	Err            error

	// Fields to capture call arguments
	filterCalls       int
	lastCalledFilters models.ProductFilters
	lastCalledSlug    string
	lastRelatedLimit  int
}

func (m *MockProductRepo) GetFilteredProducts(ctx context.Context, filters models.ProductFilters) ([]models.Product, error) {
	m.filterCalls++
	m.lastCalledFilters = filters

	if m.Err != nil {
		return nil, m.Err
	}

	// Simulate filtering
	var filtered []models.Product
	query := strings.ToLower(filters.Query)
	for _, p := range m.SourceProducts {
		if filters.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filters.CategoryID) {
			continue
		}
		if filters.BrandID != nil && (p.BrandID == nil || *p.BrandID != *filters.BrandID) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		filtered = append(filtered, p)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

func (m *MockProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	m.lastCalledSlug = slug

	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.SourceProducts {
		if p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (m *MockProductRepo) GetRelated(ctx context.Context, product *models.Product, limit int) ([]models.Product, error) {
	m.lastRelatedLimit = limit

	if product.CategoryID == nil {
		return nil, nil
	}
	var related []models.Product
	for _, p := range m.SourceProducts {
		if p.ID != product.ID && p.CategoryID != nil && *p.CategoryID == *product.CategoryID && len(related) < limit {
			related = append(related, p)
		}
	}
	return related, nil
}

func (m *MockProductRepo) GetPriceList(ctx context.Context) ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	products := append([]models.Product(nil), m.SourceProducts...)
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

type MockCategoryRepo struct {
	Categories []models.Category
	Err        error
}

func (m *MockCategoryRepo) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

type MockBrandRepo struct {
	Brands []models.Brand
	Err    error
}

func (m *MockBrandRepo) GetAllBrands(ctx context.Context) ([]models.Brand, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Brands, nil
}

func (m *MockBrandRepo) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, b := range m.Brands {
		if b.Slug == slug {
			brand := b
			return &brand, nil
		}
	}
	return nil, models.ErrBrandNotFound
}

// MockRenderer records what the handler asked to render.
type MockRenderer struct {
	Err error

	called      bool
	lastTmpl    view.Template
	lastContent view.Template
	lastData    any
}

func (m *MockRenderer) Render(w http.ResponseWriter, status int, tmpl, content view.Template, data any) error {
	m.called = true
	m.lastTmpl = tmpl
	m.lastContent = content
	m.lastData = data
	if m.Err != nil {
		return m.Err
	}
	w.WriteHeader(status)
	return nil
}

// --- Helpers ---

func ptr(id uint) *uint {
	return &id
}

var (
	testCategories = []models.Category{
		{ID: 1, Name: "Phones", Slug: "phones"},
		{ID: 2, Name: "Laptops", Slug: "laptops"},
	}
	testBrands = []models.Brand{
		{ID: 1, Name: "Acme", Slug: "acme"},
		{ID: 2, Name: "Globex", Slug: "globex"},
	}
	baseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
)

func newTestProduct(id uint, name, description string, categoryID, brandID *uint, age time.Duration) models.Product {
	p := models.Product{
		ID:          id,
		Name:        name,
		Slug:        strings.ReplaceAll(strings.ToLower(name), " ", "-"),
		Description: description,
		Price:       decimal.NewFromInt(int64(id) * 100),
		CategoryID:  categoryID,
		BrandID:     brandID,
		CreatedAt:   baseTime.Add(-age),
	}
	for _, c := range testCategories {
		if categoryID != nil && c.ID == *categoryID {
			category := c
			p.Category = &category
		}
	}
	return p
}

func testProducts() []models.Product {
	return []models.Product{
		newTestProduct(1, "Phone Pro", "Flagship handset", ptr(1), ptr(1), 3*time.Hour),
		newTestProduct(2, "Phone Mini", "Small and light", ptr(1), ptr(2), 2*time.Hour),
		newTestProduct(3, "Phone Basic", "Entry level, PRO camera", ptr(1), ptr(1), 1*time.Hour),
		newTestProduct(4, "Laptop Air", "Thin and light", ptr(2), ptr(2), 4*time.Hour),
		newTestProduct(5, "Cable", "USB-C cable", nil, nil, 5*time.Hour),
	}
}

func newTestHandler(products *MockProductRepo, renderer Renderer) *CatalogHandler {
	return NewCatalogHandler(
		products,
		&MockCategoryRepo{Categories: testCategories},
		&MockBrandRepo{Brands: testBrands},
		renderer,
		zap.NewNop(),
	)
}

func productNames(products []models.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}

package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilters narrows a product listing. Every set field must match.
// Query matches name or description, ignoring case.
type ProductFilters struct {
	CategoryID *uint
	BrandID    *uint
	Query      string
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetFilteredProducts(ctx context.Context, filters ProductFilters) ([]Product, error) {
	var products []Product

	query := r.withRelations(r.db.WithContext(ctx).Model(&Product{}))

	if filters.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filters.CategoryID)
	}
	if filters.BrandID != nil {
		query = query.Where("products.brand_id = ?", *filters.BrandID)
	}
	if filters.Query != "" {
		pattern := "%" + escapeLike(filters.Query) + "%"
		query = query.Where(
			"(LOWER(products.name) LIKE LOWER(?) ESCAPE '\\' OR LOWER(products.description) LIKE LOWER(?) ESCAPE '\\')",
			pattern, pattern,
		)
	}

	if err := query.Order("products.created_at DESC").Order("products.id DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductsRepository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	var product Product
	if err := r.withRelations(r.db.WithContext(ctx)).
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// GetRelated returns up to limit other products sharing p's category, newest first.
func (r *ProductsRepository) GetRelated(ctx context.Context, p *Product, limit int) ([]Product, error) {
	if p.CategoryID == nil {
		return nil, nil
	}
	var products []Product
	if err := r.withRelations(r.db.WithContext(ctx)).
		Where("category_id = ? AND id <> ?", *p.CategoryID, p.ID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list related products: %w", err)
	}
	return products, nil
}

// GetPriceList returns every product ordered by name.
func (r *ProductsRepository) GetPriceList(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Order("name").Order("id").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	return products, nil
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductsRepository) AddImage(ctx context.Context, image *ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *ProductsRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position").Order("id")
		})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern using '\' as the escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

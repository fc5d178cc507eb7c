package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrBrandNotFound is returned when no brand has the requested slug.
var ErrBrandNotFound = errors.New("brand not found")

type BrandsRepository struct {
	db *gorm.DB
}

func NewBrandsRepository(db *gorm.DB) *BrandsRepository {
	return &BrandsRepository{db: db}
}

func (r *BrandsRepository) GetAllBrands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if err := r.db.WithContext(ctx).Order("id").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

func (r *BrandsRepository) GetBySlug(ctx context.Context, slug string) (*Brand, error) {
	var brand Brand
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *BrandsRepository) CreateBrand(ctx context.Context, brand *Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

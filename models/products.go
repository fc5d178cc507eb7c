package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// Category and brand are optional; images keep their editor order.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:200;not null"`
	Slug        string          `gorm:"size:200;uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CategoryID  *uint           `gorm:"index"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	BrandID     *uint           `gorm:"index"`
	Brand       *Brand          `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"index"`
}

func (p *Product) TableName() string {
	return "products"
}

// ProductImage is a picture attached to exactly one product.
// Image holds a path relative to the configured media URL.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	Image     string `gorm:"size:255;not null"`
	Alt       string `gorm:"size:200"`
	Position  int    `gorm:"not null;default:0"`
}

func (i *ProductImage) TableName() string {
	return "product_images"
}

// MainImage returns the first image of the product, if any.
func (p *Product) MainImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0]
}

// All lists every model managed by the catalog, in dependency order.
func All() []any {
	return []any{&Category{}, &Brand{}, &Product{}, &ProductImage{}}
}

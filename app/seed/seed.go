// Package seed loads catalog fixtures from YAML. Loading is idempotent:
// entities are matched by slug and updated in place.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/mytheresa/storefront/models"
)

type Fixture struct {
	Categories []Entry   `yaml:"categories"`
	Brands     []Entry   `yaml:"brands"`
	Products   []Product `yaml:"products"`
}

// Entry is a category or brand.
type Entry struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

type Product struct {
	Name        string   `yaml:"name"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	Price       string   `yaml:"price"`
	Category    string   `yaml:"category"`
	Brand       string   `yaml:"brand"`
	Images      []string `yaml:"images"`
}

// Result counts what Apply wrote.
type Result struct {
	Categories int
	Brands     int
	Products   int
	Images     int
}

func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) Validate() error {
	for _, c := range f.Categories {
		if c.Name == "" || !models.ValidSlug(c.Slug) {
			return fmt.Errorf("category %q: name and a valid slug are required", c.Slug)
		}
	}
	for _, b := range f.Brands {
		if b.Name == "" || !models.ValidSlug(b.Slug) {
			return fmt.Errorf("brand %q: name and a valid slug are required", b.Slug)
		}
	}
	for _, p := range f.Products {
		if p.Name == "" || !models.ValidSlug(p.Slug) {
			return fmt.Errorf("product %q: name and a valid slug are required", p.Slug)
		}
		if p.Price != "" {
			if _, err := decimal.NewFromString(p.Price); err != nil {
				return fmt.Errorf("product %q: invalid price %q", p.Slug, p.Price)
			}
		}
	}
	return nil
}

// Apply validates the fixture and writes it in a single transaction.
func Apply(ctx context.Context, db *gorm.DB, f *Fixture) (Result, error) {
	var res Result
	if err := f.Validate(); err != nil {
		return res, err
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := map[string]uint{}
		for _, e := range f.Categories {
			var c models.Category
			if err := tx.Where(models.Category{Slug: e.Slug}).
				Assign(models.Category{Name: e.Name}).
				FirstOrCreate(&c).Error; err != nil {
				return fmt.Errorf("category %q: %w", e.Slug, err)
			}
			categories[c.Slug] = c.ID
			res.Categories++
		}

		brands := map[string]uint{}
		for _, e := range f.Brands {
			var b models.Brand
			if err := tx.Where(models.Brand{Slug: e.Slug}).
				Assign(models.Brand{Name: e.Name}).
				FirstOrCreate(&b).Error; err != nil {
				return fmt.Errorf("brand %q: %w", e.Slug, err)
			}
			brands[b.Slug] = b.ID
			res.Brands++
		}

		for _, p := range f.Products {
			added, err := applyProduct(tx, p, categories, brands)
			if err != nil {
				return fmt.Errorf("product %q: %w", p.Slug, err)
			}
			res.Products++
			res.Images += added
		}
		return nil
	})
	return res, err
}

func applyProduct(tx *gorm.DB, p Product, categories, brands map[string]uint) (int, error) {
	price := decimal.Zero
	if p.Price != "" {
		var err error
		if price, err = decimal.NewFromString(p.Price); err != nil {
			return 0, fmt.Errorf("invalid price %q: %w", p.Price, err)
		}
	}

	categoryID, err := lookup(tx, &models.Category{}, categories, p.Category)
	if err != nil {
		return 0, err
	}
	brandID, err := lookup(tx, &models.Brand{}, brands, p.Brand)
	if err != nil {
		return 0, err
	}

	var product models.Product
	if err := tx.Where(models.Product{Slug: p.Slug}).
		Assign(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       price,
			"category_id": categoryID,
			"brand_id":    brandID,
		}).
		FirstOrCreate(&product).Error; err != nil {
		return 0, err
	}

	// Images are attached only to products that have none.
	var existing int64
	if err := tx.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&existing).Error; err != nil {
		return 0, err
	}
	if existing > 0 || len(p.Images) == 0 {
		return 0, nil
	}

	images := make([]models.ProductImage, len(p.Images))
	for i, path := range p.Images {
		images[i] = models.ProductImage{ProductID: product.ID, Image: path, Position: i}
	}
	if err := tx.Create(&images).Error; err != nil {
		return 0, err
	}
	return len(images), nil
}

// lookup resolves slug to an id, first from the entries written by this
// fixture and then from the database. An empty slug yields nil.
func lookup(tx *gorm.DB, model any, known map[string]uint, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	if id, ok := known[slug]; ok {
		return &id, nil
	}
	var ids []uint
	if err := tx.Model(model).Where("slug = ?", slug).Limit(1).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("unknown reference %q", slug)
	}
	return &ids[0], nil
}

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mytheresa/storefront/app/api"
	"github.com/mytheresa/storefront/models"
)

type ProductStore interface {
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	AddImage(ctx context.Context, image *models.ProductImage) error
}

type CategoryLookup interface {
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

type BrandLookup interface {
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
}

type ProductResponse struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
}

type ImageResponse struct {
	ID       uint   `json:"id"`
	Image    string `json:"image"`
	Alt      string `json:"alt"`
	Position int    `json:"position"`
}

type ImageInput struct {
	Image    string `json:"image"`
	Alt      string `json:"alt"`
	Position *int   `json:"position"`
}

type ProductInput struct {
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Images      []ImageInput    `json:"images"`
}

type ProductHandler struct {
	products   ProductStore
	categories CategoryLookup
	brands     BrandLookup
	logger     *zap.Logger
}

func NewProductHandler(p ProductStore, c CategoryLookup, b BrandLookup, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products:   p,
		categories: c,
		brands:     b,
		logger:     logger,
	}
}

func (h *ProductHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	input.Slug = strings.TrimSpace(input.Slug)
	input.Name = strings.TrimSpace(input.Name)

	if input.Slug == "" || input.Name == "" {
		api.ErrorResponse(w, http.StatusBadRequest, "Missing slug or name")
		return
	}
	if !models.ValidSlug(input.Slug) {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid slug")
		return
	}
	if input.Price.IsNegative() {
		api.ErrorResponse(w, http.StatusBadRequest, "Price must not be negative")
		return
	}

	product := &models.Product{
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price.Round(2),
	}

	if input.Category != "" {
		category, err := h.categories.GetBySlug(ctx, input.Category)
		if err != nil {
			if errors.Is(err, models.ErrCategoryNotFound) {
				api.ErrorResponse(w, http.StatusBadRequest, "Unknown category")
				return
			}
			h.serverError(w, r, err)
			return
		}
		product.CategoryID = &category.ID
	}

	if input.Brand != "" {
		brand, err := h.brands.GetBySlug(ctx, input.Brand)
		if err != nil {
			if errors.Is(err, models.ErrBrandNotFound) {
				api.ErrorResponse(w, http.StatusBadRequest, "Unknown brand")
				return
			}
			h.serverError(w, r, err)
			return
		}
		product.BrandID = &brand.ID
	}

	for i, in := range input.Images {
		image, ok := newImage(in, i)
		if !ok {
			api.ErrorResponse(w, http.StatusBadRequest, "Missing image path")
			return
		}
		product.Images = append(product.Images, image)
	}

	if err := h.products.CreateProduct(ctx, product); err != nil {
		if models.IsDuplicate(err) {
			api.ErrorResponse(w, http.StatusConflict, "Product slug already exists")
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.logger.Info("product created", zap.String("slug", product.Slug), zap.Uint("id", product.ID))
	api.OKResponse(w, http.StatusCreated, ProductResponse{ID: product.ID, Slug: product.Slug})
}

// HandleAddImage appends an image to the product named in the path. Without
// an explicit position the image goes after the existing ones.
func (h *ProductHandler) HandleAddImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	product, err := h.products.GetBySlug(ctx, r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.ErrorResponse(w, http.StatusNotFound, "Product not found")
			return
		}
		h.serverError(w, r, err)
		return
	}

	var input ImageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	next := 0
	for _, img := range product.Images {
		if img.Position >= next {
			next = img.Position + 1
		}
	}
	image, ok := newImage(input, next)
	if !ok {
		api.ErrorResponse(w, http.StatusBadRequest, "Missing image path")
		return
	}
	image.ProductID = product.ID

	if err := h.products.AddImage(ctx, &image); err != nil {
		h.serverError(w, r, err)
		return
	}

	api.OKResponse(w, http.StatusCreated, ImageResponse{
		ID:       image.ID,
		Image:    image.Image,
		Alt:      image.Alt,
		Position: image.Position,
	})
}

func newImage(in ImageInput, defaultPosition int) (models.ProductImage, bool) {
	path := strings.TrimSpace(in.Image)
	if path == "" {
		return models.ProductImage{}, false
	}
	position := defaultPosition
	if in.Position != nil {
		position = *in.Position
	}
	return models.ProductImage{Image: path, Alt: in.Alt, Position: position}, true
}

func (h *ProductHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("admin request failed", zap.String("path", r.URL.Path), zap.Error(err))
	api.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}

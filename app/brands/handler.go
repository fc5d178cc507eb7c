package brands

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mytheresa/storefront/app/api"
	"github.com/mytheresa/storefront/models"
)

type BrandResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type BrandProvider interface {
	GetAllBrands(ctx context.Context) ([]models.Brand, error)
	CreateBrand(ctx context.Context, brand *models.Brand) error
}

type BrandHandler struct {
	repo   BrandProvider
	logger *zap.Logger
}

func NewBrandHandler(r BrandProvider, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{repo: r, logger: logger}
}

func (h *BrandHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	brands, err := h.repo.GetAllBrands(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch brands", zap.String("path", r.URL.Path), zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to fetch brands")
		return
	}

	response := make([]BrandResponse, len(brands))
	for i, b := range brands {
		response[i] = BrandResponse{
			Slug: b.Slug,
			Name: b.Name,
		}
	}

	api.OKResponse(w, http.StatusOK, response)
}

func (h *BrandHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}

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

	brand := &models.Brand{
		Slug: input.Slug,
		Name: input.Name,
	}

	if err := h.repo.CreateBrand(r.Context(), brand); err != nil {
		if models.IsDuplicate(err) {
			api.ErrorResponse(w, http.StatusConflict, "Brand slug already exists")
			return
		}
		h.logger.Error("failed to create brand", zap.String("path", r.URL.Path), zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to create brand")
		return
	}

	api.OKResponse(w, http.StatusCreated, map[string]string{
		"message": "Brand created successfully",
	})
}

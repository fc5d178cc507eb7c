package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mytheresa/storefront/app/api"
	"github.com/mytheresa/storefront/models"
)

type CategoryResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
}

type CategoryHandler struct {
	repo   CategoryProvider
	logger *zap.Logger
}

func NewCategoryHandler(r CategoryProvider, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{repo: r, logger: logger}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch categories", zap.String("path", r.URL.Path), zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			Slug: c.Slug,
			Name: c.Name,
		}
	}

	api.OKResponse(w, http.StatusOK, response)
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	category := &models.Category{
		Slug: input.Slug,
		Name: input.Name,
	}

	if err := h.repo.CreateCategory(r.Context(), category); err != nil {
		if models.IsDuplicate(err) {
			api.ErrorResponse(w, http.StatusConflict, "Category slug already exists")
			return
		}
		h.logger.Error("failed to create category", zap.String("path", r.URL.Path), zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	api.OKResponse(w, http.StatusCreated, map[string]string{
		"message": "Category created successfully",
	})
}

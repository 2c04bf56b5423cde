package handlers

import (
	"net/http"

	"github.com/clothplek/catalog-api/app/helpers"
	"github.com/clothplek/catalog-api/app/models"
	"github.com/clothplek/catalog-api/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
	render   *render.Render
}

func NewCategoryHandler(service *services.CategoryService, validate *validator.Validate, r *render.Render) *CategoryHandler {
	return &CategoryHandler{service: service, validate: validate, render: r}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   *int   `json:"sort_order"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

func (h *CategoryHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	categories, err := h.service.FindAll(r.Context(), includeInactive)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Active(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetActiveCategories(r.Context())
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) FindBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.service.FindBySlug(r.Context(), slug)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeJSON(w, r, h.render, &req) {
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	created, err := h.service.Create(r.Context(), category)
	if err != nil {
		writeWriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, created)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateCategoryRequest
	if !decodeJSON(w, r, h.render, &req) {
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	category, err := h.service.Update(r.Context(), id, services.CategoryUpdateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		writeWriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Remove(r.Context(), id); err != nil {
		writeWriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

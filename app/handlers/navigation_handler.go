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

type NavigationHandler struct {
	service  *services.NavigationService
	validate *validator.Validate
	render   *render.Render
}

func NewNavigationHandler(service *services.NavigationService, validate *validator.Validate, r *render.Render) *NavigationHandler {
	return &NavigationHandler{service: service, validate: validate, render: r}
}

type NavigationCategoryRequest struct {
	Title string   `json:"title" validate:"required"`
	Items []string `json:"items" validate:"required"`
}

type NavigationItemRequest struct {
	Name      string `json:"name" validate:"required"`
	Href      string `json:"href" validate:"required"`
	Highlight string `json:"highlight"`
}

type CreateNavigationMenuRequest struct {
	Key        string                      `json:"key" validate:"required"`
	Name       string                      `json:"name" validate:"required"`
	Categories []NavigationCategoryRequest `json:"categories" validate:"required,dive"`
	Featured   []NavigationItemRequest     `json:"featured" validate:"required,dive"`
	IsActive   *bool                       `json:"is_active"`
	SortOrder  *int                        `json:"sort_order"`
}

type UpdateNavigationMenuRequest struct {
	Key        *string                      `json:"key"`
	Name       *string                      `json:"name"`
	Categories *[]NavigationCategoryRequest `json:"categories" validate:"omitempty,dive"`
	Featured   *[]NavigationItemRequest     `json:"featured" validate:"omitempty,dive"`
	IsActive   *bool                        `json:"is_active"`
	SortOrder  *int                         `json:"sort_order"`
}

func toCategoryList(reqs []NavigationCategoryRequest) models.NavigationCategoryList {
	list := make(models.NavigationCategoryList, 0, len(reqs))
	for _, c := range reqs {
		list = append(list, models.NavigationCategory{Title: c.Title, Items: c.Items})
	}
	return list
}

func toItemList(reqs []NavigationItemRequest) models.NavigationItemList {
	list := make(models.NavigationItemList, 0, len(reqs))
	for _, item := range reqs {
		list = append(list, models.NavigationItem{Name: item.Name, Href: item.Href, Highlight: item.Highlight})
	}
	return list
}

func (h *NavigationHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	menus, err := h.service.FindAll(r.Context(), includeInactive)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, menus)
}

func (h *NavigationHandler) Active(w http.ResponseWriter, r *http.Request) {
	menus, err := h.service.GetActiveNavigation(r.Context())
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, menus)
}

func (h *NavigationHandler) MegaMenu(w http.ResponseWriter, r *http.Request) {
	megaMenu, err := h.service.GetMegaMenuData(r.Context())
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, megaMenu)
}

func (h *NavigationHandler) FindByKey(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	menu, err := h.service.FindByKey(r.Context(), key)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, menu)
}

func (h *NavigationHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	menu, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, menu)
}

func (h *NavigationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNavigationMenuRequest
	if !decodeJSON(w, r, h.render, &req) {
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	menu := &models.NavigationMenu{
		Key:        req.Key,
		Name:       req.Name,
		Categories: toCategoryList(req.Categories),
		Featured:   toItemList(req.Featured),
		IsActive:   true,
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		menu.SortOrder = *req.SortOrder
	}

	created, err := h.service.Create(r.Context(), menu)
	if err != nil {
		writeWriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, created)
}

func (h *NavigationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateNavigationMenuRequest
	if !decodeJSON(w, r, h.render, &req) {
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	input := services.NavigationUpdateInput{
		Key:       req.Key,
		Name:      req.Name,
		IsActive:  req.IsActive,
		SortOrder: req.SortOrder,
	}
	if req.Categories != nil {
		categories := toCategoryList(*req.Categories)
		input.Categories = &categories
	}
	if req.Featured != nil {
		featured := toItemList(*req.Featured)
		input.Featured = &featured
	}

	menu, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		writeWriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, menu)
}

func (h *NavigationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Remove(r.Context(), id); err != nil {
		writeWriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Navigation menu deleted successfully"})
}

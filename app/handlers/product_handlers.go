package handlers

import (
	"net/http"
	"strconv"

	"github.com/clothplek/catalog-api/app/helpers"
	"github.com/clothplek/catalog-api/app/models"
	"github.com/clothplek/catalog-api/app/repositories"
	"github.com/clothplek/catalog-api/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	render   *render.Render
}

func NewProductHandler(service *services.ProductService, validate *validator.Validate, r *render.Render) *ProductHandler {
	return &ProductHandler{service: service, validate: validate, render: r}
}

type ProductImageRequest struct {
	ImageURL  string `json:"image_url" validate:"required"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

type ProductVariantRequest struct {
	Size            string           `json:"size"`
	Color           string           `json:"color"`
	Sku             string           `json:"sku"`
	PriceAdjustment *decimal.Decimal `json:"price_adjustment"`
	StockQuantity   int              `json:"stock_quantity"`
	IsActive        *bool            `json:"is_active"`
	ImageURL        string           `json:"image_url"`
}

type CreateProductRequest struct {
	Name             string                  `json:"name" validate:"required"`
	Slug             string                  `json:"slug" validate:"required"`
	Description      string                  `json:"description" validate:"required"`
	ShortDescription string                  `json:"short_description"`
	Price            decimal.Decimal         `json:"price" validate:"required"`
	SalePrice        *decimal.Decimal        `json:"sale_price"`
	StockStatus      string                  `json:"stock_status" validate:"required,oneof=in_stock out_of_stock limited_stock"`
	Sku              string                  `json:"sku"`
	Material         string                  `json:"material"`
	CareInstructions string                  `json:"care_instructions"`
	Colors           []string                `json:"colors"`
	Sizes            []string                `json:"sizes"`
	IsActive         *bool                   `json:"is_active"`
	IsFeatured       *bool                   `json:"is_featured"`
	IsNew            *bool                   `json:"is_new"`
	SortOrder        *int                    `json:"sort_order"`
	Tags             []string                `json:"tags"`
	Brand            string                  `json:"brand"`
	Gender           string                  `json:"gender" validate:"omitempty,oneof=men women unisex"`
	CategoryID       string                  `json:"category_id" validate:"required,uuid4"`
	Images           []ProductImageRequest   `json:"images" validate:"omitempty,dive"`
	Variants         []ProductVariantRequest `json:"variants" validate:"omitempty,dive"`
}

type UpdateProductRequest struct {
	Name             *string          `json:"name"`
	Slug             *string          `json:"slug"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"short_description"`
	Price            *decimal.Decimal `json:"price"`
	SalePrice        *decimal.Decimal `json:"sale_price"`
	StockStatus      *string          `json:"stock_status" validate:"omitempty,oneof=in_stock out_of_stock limited_stock"`
	Sku              *string          `json:"sku"`
	Material         *string          `json:"material"`
	CareInstructions *string          `json:"care_instructions"`
	Colors           *[]string        `json:"colors"`
	Sizes            *[]string        `json:"sizes"`
	IsActive         *bool            `json:"is_active"`
	IsFeatured       *bool            `json:"is_featured"`
	IsNew            *bool            `json:"is_new"`
	SortOrder        *int             `json:"sort_order"`
	Tags             *[]string        `json:"tags"`
	Brand            *string          `json:"brand"`
	Gender           *string          `json:"gender" validate:"omitempty,oneof=men women unisex"`
	CategoryID       *string          `json:"category_id" validate:"omitempty,uuid4"`
}

// FindAll parses the optional query filters. Boolean filters are only applied
// when the parameter is present, so ?is_featured=false still filters.
func (h *ProductHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	var filter repositories.ProductFilter

	query := r.URL.Query()
	filter.CategoryID = query.Get("category_id")
	filter.Gender = query.Get("gender")
	filter.Search = query.Get("search")

	if v := query.Get("is_featured"); v != "" {
		featured := v == "true"
		filter.IsFeatured = &featured
	}
	if v := query.Get("is_new"); v != "" {
		isNew := v == "true"
		filter.IsNew = &isNew
	}
	if v := query.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}
	if v := query.Get("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil {
			filter.Offset = offset
		}
	}

	list, err := h.service.FindAll(r.Context(), filter)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, list)
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, services.DefaultFeaturedLimit)

	products, err := h.service.GetFeaturedProducts(r.Context(), limit)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) New(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, services.DefaultNewLimit)

	products, err := h.service.GetNewProducts(r.Context(), limit)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) FindBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.service.FindBySlug(r.Context(), slug)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

// Related looks up the product first, so a missing product is a 404 rather
// than an empty list.
func (h *ProductHandler) Related(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	limit := parseLimit(r, services.DefaultRelatedLimit)

	product, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}

	related, err := h.service.GetRelatedProducts(r.Context(), product.ID, product.CategoryID, limit)
	if err != nil {
		writeReadError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, related)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !decodeJSON(w, r, h.render, &req) {
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		StockStatus:      req.StockStatus,
		Sku:              req.Sku,
		Material:         req.Material,
		CareInstructions: req.CareInstructions,
		Colors:           req.Colors,
		Sizes:            req.Sizes,
		IsActive:         true,
		Tags:             req.Tags,
		Brand:            req.Brand,
		Gender:           req.Gender,
		CategoryID:       req.CategoryID,
	}
	if req.SalePrice != nil {
		product.SalePrice = decimal.NullDecimal{Decimal: *req.SalePrice, Valid: true}
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsNew != nil {
		product.IsNew = *req.IsNew
	}
	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	}

	for _, img := range req.Images {
		product.Images = append(product.Images, models.ProductImage{
			ImageURL:  img.ImageURL,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}
	for _, variant := range req.Variants {
		v := models.ProductVariant{
			Size:          variant.Size,
			Color:         variant.Color,
			Sku:           variant.Sku,
			StockQuantity: variant.StockQuantity,
			IsActive:      true,
			ImageURL:      variant.ImageURL,
		}
		if variant.PriceAdjustment != nil {
			v.PriceAdjustment = decimal.NullDecimal{Decimal: *variant.PriceAdjustment, Valid: true}
		}
		if variant.IsActive != nil {
			v.IsActive = *variant.IsActive
		}
		product.Variants = append(product.Variants, v)
	}

	created, err := h.service.Create(r.Context(), product)
	if err != nil {
		writeWriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateProductRequest
	if !decodeJSON(w, r, h.render, &req) {
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	product, err := h.service.Update(r.Context(), id, services.ProductUpdateInput{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		SalePrice:        req.SalePrice,
		StockStatus:      req.StockStatus,
		Sku:              req.Sku,
		Material:         req.Material,
		CareInstructions: req.CareInstructions,
		Colors:           req.Colors,
		Sizes:            req.Sizes,
		IsActive:         req.IsActive,
		IsFeatured:       req.IsFeatured,
		IsNew:            req.IsNew,
		SortOrder:        req.SortOrder,
		Tags:             req.Tags,
		Brand:            req.Brand,
		Gender:           req.Gender,
		CategoryID:       req.CategoryID,
	})
	if err != nil {
		writeWriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Remove(r.Context(), id); err != nil {
		writeWriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func parseLimit(r *http.Request, fallback int) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return fallback
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

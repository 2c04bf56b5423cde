package services

import (
	"context"
	"fmt"
	"time"

	"github.com/clothplek/catalog-api/app/apperrors"
	"github.com/clothplek/catalog-api/app/models"
	"github.com/clothplek/catalog-api/app/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultFeaturedLimit = 8
	DefaultNewLimit      = 8
	DefaultRelatedLimit  = 4
)

type ProductService struct {
	productRepo repositories.ProductRepositoryImpl
}

func NewProductService(productRepo repositories.ProductRepositoryImpl) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductList pairs one page of products with the total count of rows
// matching the filter before pagination.
type ProductList struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// ProductUpdateInput carries a partial update; nil fields are left untouched.
// Slice fields replace the stored list wholesale when present.
type ProductUpdateInput struct {
	Name             *string
	Slug             *string
	Description      *string
	ShortDescription *string
	Price            *decimal.Decimal
	SalePrice        *decimal.Decimal
	StockStatus      *string
	Sku              *string
	Material         *string
	CareInstructions *string
	Colors           *[]string
	Sizes            *[]string
	IsActive         *bool
	IsFeatured       *bool
	IsNew            *bool
	SortOrder        *int
	Tags             *[]string
	Brand            *string
	Gender           *string
	CategoryID       *string
}

func (s *ProductService) FindAll(ctx context.Context, filter repositories.ProductFilter) (*ProductList, error) {
	products, total, err := s.productRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return &ProductList{Products: products, Total: total}, nil
}

func (s *ProductService) FindOne(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, apperrors.NotFoundf("Product with ID %s not found", id)
	}
	return product, nil
}

func (s *ProductService) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}
	if product == nil {
		return nil, apperrors.NotFoundf("Product with slug %s not found", slug)
	}
	return product, nil
}

// Create persists the product together with any nested images and variants.
// The category_id is trusted as given; a dangling reference is rejected by
// the store's foreign key, not checked here.
func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	for i := range product.Images {
		if product.Images[i].ID == "" {
			product.Images[i].ID = uuid.New().String()
		}
		product.Images[i].ProductID = product.ID
		product.Images[i].CreatedAt = now
		product.Images[i].UpdatedAt = now
	}
	for i := range product.Variants {
		if product.Variants[i].ID == "" {
			product.Variants[i].ID = uuid.New().String()
		}
		product.Variants[i].ProductID = product.ID
		product.Variants[i].CreatedAt = now
		product.Variants[i].UpdatedAt = now
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input ProductUpdateInput) (*models.Product, error) {
	product, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.ShortDescription != nil {
		product.ShortDescription = *input.ShortDescription
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.SalePrice != nil {
		product.SalePrice = decimal.NullDecimal{Decimal: *input.SalePrice, Valid: true}
	}
	if input.StockStatus != nil {
		product.StockStatus = *input.StockStatus
	}
	if input.Sku != nil {
		product.Sku = *input.Sku
	}
	if input.Material != nil {
		product.Material = *input.Material
	}
	if input.CareInstructions != nil {
		product.CareInstructions = *input.CareInstructions
	}
	if input.Colors != nil {
		product.Colors = *input.Colors
	}
	if input.Sizes != nil {
		product.Sizes = *input.Sizes
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.IsNew != nil {
		product.IsNew = *input.IsNew
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}
	if input.Tags != nil {
		product.Tags = *input.Tags
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Gender != nil {
		product.Gender = *input.Gender
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Remove(ctx context.Context, id string) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *ProductService) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	products, err := s.productRepo.GetFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetNewProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultNewLimit
	}
	products, err := s.productRepo.GetNew(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get new products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetRelatedProducts(ctx context.Context, excludeID, categoryID string, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	products, err := s.productRepo.GetRelated(ctx, excludeID, categoryID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get related products: %w", err)
	}
	return products, nil
}

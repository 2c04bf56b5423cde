package services

import (
	"context"
	"fmt"
	"time"

	"github.com/clothplek/catalog-api/app/apperrors"
	"github.com/clothplek/catalog-api/app/models"
	"github.com/clothplek/catalog-api/app/repositories"
	"github.com/google/uuid"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryImpl) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryUpdateInput carries a partial update; nil fields are left untouched.
type CategoryUpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
	ImageURL    *string
	IsActive    *bool
	SortOrder   *int
}

func (s *CategoryService) FindAll(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetActiveCategories(ctx context.Context) ([]models.Category, error) {
	return s.FindAll(ctx, false)
}

func (s *CategoryService) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}
	if category == nil {
		return nil, apperrors.NotFoundf("Category with slug %s not found", slug)
	}
	return category, nil
}

func (s *CategoryService) FindOne(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, apperrors.NotFoundf("Category with ID %s not found", id)
	}
	return category, nil
}

// Create persists the category as given. Slug uniqueness is left to the
// storage constraint, a duplicate surfaces as a storage error.
func (s *CategoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, input CategoryUpdateInput) (*models.Category, error) {
	category, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Slug != nil {
		category.Slug = *input.Slug
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.ImageURL != nil {
		category.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Remove(ctx context.Context, id string) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

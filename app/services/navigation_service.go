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

type NavigationService struct {
	navigationRepo repositories.NavigationRepositoryImpl
}

func NewNavigationService(navigationRepo repositories.NavigationRepositoryImpl) *NavigationService {
	return &NavigationService{navigationRepo: navigationRepo}
}

// NavigationUpdateInput carries a partial update; nil fields are left
// untouched.
type NavigationUpdateInput struct {
	Key        *string
	Name       *string
	Categories *models.NavigationCategoryList
	Featured   *models.NavigationItemList
	IsActive   *bool
	SortOrder  *int
}

// MegaMenuSection is the per-key payload of the mega menu lookup.
type MegaMenuSection struct {
	Categories models.NavigationCategoryList `json:"categories"`
	Featured   models.NavigationItemList     `json:"featured"`
}

func (s *NavigationService) FindAll(ctx context.Context, includeInactive bool) ([]models.NavigationMenu, error) {
	menus, err := s.navigationRepo.GetAll(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to get navigation menus: %w", err)
	}
	return menus, nil
}

func (s *NavigationService) GetActiveNavigation(ctx context.Context) ([]models.NavigationMenu, error) {
	return s.FindAll(ctx, false)
}

// FindByKey only resolves active menus; an inactive menu is a not-found here
// even though FindOne still returns it by id.
func (s *NavigationService) FindByKey(ctx context.Context, key string) (*models.NavigationMenu, error) {
	menu, err := s.navigationRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get navigation menu by key: %w", err)
	}
	if menu == nil {
		return nil, apperrors.NotFoundf("Navigation menu with key %q not found", key)
	}
	return menu, nil
}

func (s *NavigationService) FindOne(ctx context.Context, id string) (*models.NavigationMenu, error) {
	menu, err := s.navigationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get navigation menu: %w", err)
	}
	if menu == nil {
		return nil, apperrors.NotFoundf("Navigation menu with ID %q not found", id)
	}
	return menu, nil
}

func (s *NavigationService) Create(ctx context.Context, menu *models.NavigationMenu) (*models.NavigationMenu, error) {
	if menu.ID == "" {
		menu.ID = uuid.New().String()
	}
	menu.CreatedAt = time.Now()
	menu.UpdatedAt = time.Now()

	if err := s.navigationRepo.Create(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to create navigation menu: %w", err)
	}
	return menu, nil
}

func (s *NavigationService) Update(ctx context.Context, id string, input NavigationUpdateInput) (*models.NavigationMenu, error) {
	menu, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Key != nil {
		menu.Key = *input.Key
	}
	if input.Name != nil {
		menu.Name = *input.Name
	}
	if input.Categories != nil {
		menu.Categories = *input.Categories
	}
	if input.Featured != nil {
		menu.Featured = *input.Featured
	}
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		menu.SortOrder = *input.SortOrder
	}
	menu.UpdatedAt = time.Now()

	if err := s.navigationRepo.Update(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to update navigation menu: %w", err)
	}
	return menu, nil
}

func (s *NavigationService) Remove(ctx context.Context, id string) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.navigationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete navigation menu: %w", err)
	}
	return nil
}

// GetMegaMenuData builds the keyed lookup the storefront renders from. It is
// recomputed on every call, no caching.
func (s *NavigationService) GetMegaMenuData(ctx context.Context) (map[string]MegaMenuSection, error) {
	menus, err := s.GetActiveNavigation(ctx)
	if err != nil {
		return nil, err
	}

	megaMenu := make(map[string]MegaMenuSection, len(menus))
	for _, menu := range menus {
		megaMenu[menu.Key] = MegaMenuSection{
			Categories: menu.Categories,
			Featured:   menu.Featured,
		}
	}
	return megaMenu, nil
}

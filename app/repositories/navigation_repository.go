package repositories

import (
	"context"

	"github.com/clothplek/catalog-api/app/models"
	"gorm.io/gorm"
)

type NavigationRepositoryImpl interface {
	GetAll(ctx context.Context, includeInactive bool) ([]models.NavigationMenu, error)
	GetByKey(ctx context.Context, key string) (*models.NavigationMenu, error)
	GetByID(ctx context.Context, id string) (*models.NavigationMenu, error)
	Create(ctx context.Context, menu *models.NavigationMenu) error
	Update(ctx context.Context, menu *models.NavigationMenu) error
	Delete(ctx context.Context, id string) error
}

type navigationRepository struct {
	db *gorm.DB
}

func NewNavigationRepository(db *gorm.DB) NavigationRepositoryImpl {
	return &navigationRepository{db}
}

func (r *navigationRepository) GetAll(ctx context.Context, includeInactive bool) ([]models.NavigationMenu, error) {
	query := r.db.WithContext(ctx).Order("sort_order ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var menus []models.NavigationMenu
	if err := query.Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// GetByKey only sees active menus. An inactive menu is invisible here even
// though GetByID still returns it.
func (r *navigationRepository) GetByKey(ctx context.Context, key string) (*models.NavigationMenu, error) {
	var menu models.NavigationMenu
	err := r.db.WithContext(ctx).First(&menu, "`key` = ? AND is_active = ?", key, true).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &menu, nil
}

func (r *navigationRepository) GetByID(ctx context.Context, id string) (*models.NavigationMenu, error) {
	var menu models.NavigationMenu
	err := r.db.WithContext(ctx).First(&menu, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &menu, nil
}

func (r *navigationRepository) Create(ctx context.Context, menu *models.NavigationMenu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *navigationRepository) Update(ctx context.Context, menu *models.NavigationMenu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *navigationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.NavigationMenu{}, "id = ?", id).Error
}

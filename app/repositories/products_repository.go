package repositories

import (
	"context"
	"strings"

	"github.com/clothplek/catalog-api/app/models"
	"gorm.io/gorm"
)

// ProductFilter holds the optional, AND-combined filters for product listing.
// Nil pointer fields mean "not filtered on".
type ProductFilter struct {
	CategoryID string
	IsFeatured *bool
	IsNew      *bool
	Gender     string
	Search     string
	Limit      int
	Offset     int
}

type ProductRepositoryImpl interface {
	Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Product, error)
	GetNew(ctx context.Context, limit int) ([]models.Product, error)
	GetRelated(ctx context.Context, excludeID, categoryID string, limit int) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	DeleteCascade(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) applyFilter(query *gorm.DB, filter ProductFilter) *gorm.DB {
	query = query.Where("is_active = ?", true)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.IsNew != nil {
		query = query.Where("is_new = ?", *filter.IsNew)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.Search != "" {
		keyword := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?)", keyword, keyword, keyword)
	}

	return query
}

// Find returns the matching page plus the total count of rows matching the
// filter before limit/offset, which callers use for pagination UI.
func (p *productRepository) Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	var total int64
	countQuery := p.applyFilter(p.db.WithContext(ctx).Model(&models.Product{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := p.applyFilter(p.db.WithContext(ctx), filter).
		Preload("Category").
		Preload("Images").
		Preload("Variants").
		Order("sort_order ASC").
		Order("created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Preload("Variants").
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Preload("Variants").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("sort_order ASC").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetNew(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Images").
		Where("is_new = ? AND is_active = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetRelated(ctx context.Context, excludeID, categoryID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Images").
		Where("category_id = ? AND is_active = ? AND id <> ?", categoryID, true, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Omit("Category", "Images", "Variants").Save(product).Error
}

// DeleteCascade removes the product together with its owned images and
// variants in one transaction. The explicit deletes keep the contract even on
// a backend where the declared FK cascade is not enforced.
func (p *productRepository) DeleteCascade(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}

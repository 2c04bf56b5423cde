package migrations

import (
	"github.com/clothplek/catalog-api/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductImage{}, &models.ProductVariant{}, &models.NavigationMenu{})
}

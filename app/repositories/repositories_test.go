package repositories_test

import (
	"testing"
	"time"

	"github.com/clothplek/catalog-api/app/models"
	"github.com/clothplek/catalog-api/app/models/migrations"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql.DB: %v", err)
	}
	// one connection keeps the in-memory database alive for the whole test
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string, active bool, sortOrder int) models.Category {
	t.Helper()

	category := models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug,
		IsActive:  active,
		SortOrder: sortOrder,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category %s: %v", slug, err)
	}
	return category
}

func newProduct(categoryID, name, slug string, createdAt time.Time) models.Product {
	return models.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug,
		Description: "test product",
		Price:       decimal.NewFromFloat(25.99),
		StockStatus: models.StockStatusInStock,
		IsActive:    true,
		CategoryID:  categoryID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func seedProduct(t *testing.T, db *gorm.DB, product models.Product) models.Product {
	t.Helper()

	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product %s: %v", product.Slug, err)
	}
	return product
}

func seedNavigationMenu(t *testing.T, db *gorm.DB, key, name string, active bool, sortOrder int) models.NavigationMenu {
	t.Helper()

	menu := models.NavigationMenu{
		ID:        uuid.New().String(),
		Key:       key,
		Name:      name,
		IsActive:  active,
		SortOrder: sortOrder,
		Categories: models.NavigationCategoryList{
			{Title: "Clothing", Items: []string{"T-Shirts", "Shirts"}},
		},
		Featured: models.NavigationItemList{
			{Name: "New Arrivals", Href: "/" + key + "/new-arrivals", Highlight: "NEW"},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("failed to seed navigation menu %s: %v", key, err)
	}
	return menu
}

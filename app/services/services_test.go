package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clothplek/catalog-api/app/apperrors"
	"github.com/clothplek/catalog-api/app/models"
	"github.com/clothplek/catalog-api/app/models/migrations"
	"github.com/clothplek/catalog-api/app/repositories"
	"github.com/clothplek/catalog-api/app/services"
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

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCategoryService(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	service := services.NewCategoryService(repositories.NewCategoryRepository(db))

	created, err := service.Create(ctx, &models.Category{
		Name:     "T-Shirts",
		Slug:     "t-shirts",
		IsActive: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("create_assigns_id_and_timestamps", func(t *testing.T) {
		if created.ID == "" {
			t.Fatal("id not assigned")
		}
		if _, err := uuid.Parse(created.ID); err != nil {
			t.Fatalf("id is not a uuid: %v", err)
		}
		if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
			t.Fatal("timestamps not assigned")
		}
	})

	t.Run("find_by_slug", func(t *testing.T) {
		found, err := service.FindBySlug(ctx, "t-shirts")
		if err != nil {
			t.Fatal(err)
		}
		if found.ID != created.ID {
			t.Fatalf("unexpected category: %+v", found)
		}
	})

	t.Run("missing_lookups_classify_as_not_found", func(t *testing.T) {
		_, err := service.FindBySlug(ctx, "no-such-slug")
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
		if err.Error() != "Category with slug no-such-slug not found" {
			t.Fatalf("unexpected message: %s", err.Error())
		}

		missingID := uuid.New().String()
		_, err = service.FindOne(ctx, missingID)
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("update_applies_only_present_fields", func(t *testing.T) {
		updated, err := service.Update(ctx, created.ID, services.CategoryUpdateInput{
			Description: strPtr("Soft cotton tees"),
			IsActive:    boolPtr(false),
		})
		if err != nil {
			t.Fatal(err)
		}
		if updated.Description != "Soft cotton tees" || updated.IsActive {
			t.Fatalf("update not applied: %+v", updated)
		}
		if updated.Name != "T-Shirts" || updated.Slug != "t-shirts" {
			t.Fatalf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("active_listing_skips_deactivated", func(t *testing.T) {
		active, err := service.GetActiveCategories(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(active) != 0 {
			t.Fatalf("expected no active categories, got %d", len(active))
		}

		all, err := service.FindAll(ctx, true)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 1 {
			t.Fatalf("expected 1 category in total, got %d", len(all))
		}
	})

	t.Run("remove_missing_is_not_found", func(t *testing.T) {
		err := service.Remove(ctx, uuid.New().String())
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("remove_deletes_row", func(t *testing.T) {
		if err := service.Remove(ctx, created.ID); err != nil {
			t.Fatal(err)
		}
		_, err := service.FindOne(ctx, created.ID)
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not-found after delete, got %v", err)
		}
	})
}

func TestProductServiceLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	categoryService := services.NewCategoryService(repositories.NewCategoryRepository(db))
	productService := services.NewProductService(repositories.NewProductRepository(db))

	category, err := categoryService.Create(ctx, &models.Category{
		Name:     "T-Shirts",
		Slug:     "t-shirts",
		IsActive: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	created, err := productService.Create(ctx, &models.Product{
		Name:        "Classic White Tee",
		Slug:        "classic-white-tee",
		Description: "A wardrobe staple",
		Price:       decimal.NewFromFloat(24.99),
		StockStatus: models.StockStatusInStock,
		IsActive:    true,
		IsFeatured:  true,
		IsNew:       true,
		Tags:        models.StringList{"basic", "cotton", "casual"},
		CategoryID:  category.ID,
		Images: []models.ProductImage{
			{ImageURL: "https://cdn.example.com/tee-front.jpg", IsPrimary: true},
			{ImageURL: "https://cdn.example.com/tee-back.jpg", SortOrder: 1},
		},
		Variants: []models.ProductVariant{
			{Size: "M", Color: "White", StockQuantity: 10, IsActive: true},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("create_assigns_ids_through_the_aggregate", func(t *testing.T) {
		if created.ID == "" {
			t.Fatal("product id not assigned")
		}
		for _, image := range created.Images {
			if image.ID == "" || image.ProductID != created.ID {
				t.Fatalf("image not wired to product: %+v", image)
			}
		}
		for _, variant := range created.Variants {
			if variant.ID == "" || variant.ProductID != created.ID {
				t.Fatalf("variant not wired to product: %+v", variant)
			}
		}
	})

	t.Run("find_by_slug_loads_aggregate", func(t *testing.T) {
		found, err := productService.FindBySlug(ctx, "classic-white-tee")
		if err != nil {
			t.Fatal(err)
		}
		if found.Category == nil || found.Category.Slug != "t-shirts" {
			t.Fatalf("category not loaded: %+v", found.Category)
		}
		if len(found.Images) != 2 || len(found.Variants) != 1 {
			t.Fatalf("relations not loaded: %d images, %d variants", len(found.Images), len(found.Variants))
		}
	})

	t.Run("missing_lookups_classify_as_not_found", func(t *testing.T) {
		missingID := uuid.New().String()
		_, err := productService.FindOne(ctx, missingID)
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
		if err.Error() != "Product with ID "+missingID+" not found" {
			t.Fatalf("unexpected message: %s", err.Error())
		}

		_, err = productService.FindBySlug(ctx, "no-such-slug")
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})

	t.Run("partial_update", func(t *testing.T) {
		sale := decimal.NewFromFloat(19.99)
		updated, err := productService.Update(ctx, created.ID, services.ProductUpdateInput{
			SalePrice: &sale,
			IsNew:     boolPtr(false),
		})
		if err != nil {
			t.Fatal(err)
		}
		if !updated.SalePrice.Valid || !updated.SalePrice.Decimal.Equal(sale) {
			t.Fatalf("sale price not applied: %+v", updated.SalePrice)
		}
		if updated.IsNew {
			t.Fatal("is_new not applied")
		}
		if updated.Name != "Classic White Tee" || !updated.Price.Equal(decimal.NewFromFloat(24.99)) {
			t.Fatalf("untouched fields changed: %+v", updated)
		}
		if len(updated.Images) != 2 {
			t.Fatalf("update dropped images: %d", len(updated.Images))
		}
	})

	t.Run("remove_cascades", func(t *testing.T) {
		if err := productService.Remove(ctx, created.ID); err != nil {
			t.Fatal(err)
		}
		_, err := productService.FindOne(ctx, created.ID)
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not-found after delete, got %v", err)
		}

		var imageCount int64
		db.Model(&models.ProductImage{}).Where("product_id = ?", created.ID).Count(&imageCount)
		if imageCount != 0 {
			t.Fatalf("%d images left after delete", imageCount)
		}
	})
}

func TestProductServiceCuratedDefaults(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	categoryService := services.NewCategoryService(repositories.NewCategoryRepository(db))
	productService := services.NewProductService(repositories.NewProductRepository(db))

	category, err := categoryService.Create(ctx, &models.Category{Name: "T-Shirts", Slug: "t-shirts", IsActive: true})
	if err != nil {
		t.Fatal(err)
	}

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		product := &models.Product{
			Name:        "Tee",
			Slug:        "tee-" + uuid.NewString()[:8],
			Description: "test",
			Price:       decimal.NewFromFloat(19.99),
			StockStatus: models.StockStatusInStock,
			IsActive:    true,
			IsFeatured:  true,
			IsNew:       true,
			CategoryID:  category.ID,
		}
		if _, err := productService.Create(ctx, product); err != nil {
			t.Fatal(err)
		}
		product.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
			Update("created_at", product.CreatedAt).Error; err != nil {
			t.Fatal(err)
		}
	}

	t.Run("featured_default_limit_is_eight", func(t *testing.T) {
		products, err := productService.GetFeaturedProducts(ctx, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != services.DefaultFeaturedLimit {
			t.Fatalf("len = %d, want %d", len(products), services.DefaultFeaturedLimit)
		}
	})

	t.Run("new_default_limit_is_eight", func(t *testing.T) {
		products, err := productService.GetNewProducts(ctx, -1)
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != services.DefaultNewLimit {
			t.Fatalf("len = %d, want %d", len(products), services.DefaultNewLimit)
		}
	})

	t.Run("related_default_limit_is_four", func(t *testing.T) {
		anchor, err := productService.GetNewProducts(ctx, 1)
		if err != nil || len(anchor) != 1 {
			t.Fatalf("anchor lookup failed: %v", err)
		}
		products, err := productService.GetRelatedProducts(ctx, anchor[0].ID, category.ID, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != services.DefaultRelatedLimit {
			t.Fatalf("len = %d, want %d", len(products), services.DefaultRelatedLimit)
		}
	})

	t.Run("explicit_limit_wins", func(t *testing.T) {
		products, err := productService.GetFeaturedProducts(ctx, 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != 3 {
			t.Fatalf("len = %d, want 3", len(products))
		}
	})
}

func TestNavigationService(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	service := services.NewNavigationService(repositories.NewNavigationRepository(db))

	men, err := service.Create(ctx, &models.NavigationMenu{
		Key:      "men",
		Name:     "Men",
		IsActive: true,
		Categories: models.NavigationCategoryList{
			{Title: "Clothing", Items: []string{"T-Shirts", "Hoodies"}},
		},
		Featured: models.NavigationItemList{
			{Name: "New Arrivals", Href: "/men/new-arrivals", Highlight: "NEW"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	sale, err := service.Create(ctx, &models.NavigationMenu{
		Key:       "sale",
		Name:      "Sale",
		IsActive:  false,
		SortOrder: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("key_lookup_only_sees_active", func(t *testing.T) {
		found, err := service.FindByKey(ctx, "men")
		if err != nil {
			t.Fatal(err)
		}
		if found.ID != men.ID {
			t.Fatalf("unexpected menu: %+v", found)
		}

		_, err = service.FindByKey(ctx, "sale")
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not-found for inactive menu, got %v", err)
		}
		if err.Error() != `Navigation menu with key "sale" not found` {
			t.Fatalf("unexpected message: %s", err.Error())
		}
	})

	t.Run("id_lookup_returns_inactive", func(t *testing.T) {
		found, err := service.FindOne(ctx, sale.ID)
		if err != nil {
			t.Fatal(err)
		}
		if found.Key != "sale" {
			t.Fatalf("unexpected menu: %+v", found)
		}
	})

	t.Run("mega_menu_keys_active_menus_only", func(t *testing.T) {
		megaMenu, err := service.GetMegaMenuData(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(megaMenu) != 1 {
			t.Fatalf("len = %d, want 1", len(megaMenu))
		}
		section, ok := megaMenu["men"]
		if !ok {
			t.Fatal("men section missing")
		}
		if len(section.Categories) != 1 || section.Categories[0].Title != "Clothing" {
			t.Fatalf("unexpected categories: %+v", section.Categories)
		}
		if len(section.Featured) != 1 || section.Featured[0].Highlight != "NEW" {
			t.Fatalf("unexpected featured: %+v", section.Featured)
		}
	})

	t.Run("update_reactivates_menu", func(t *testing.T) {
		_, err := service.Update(ctx, sale.ID, services.NavigationUpdateInput{IsActive: boolPtr(true)})
		if err != nil {
			t.Fatal(err)
		}
		found, err := service.FindByKey(ctx, "sale")
		if err != nil {
			t.Fatal(err)
		}
		if !found.IsActive {
			t.Fatal("menu still inactive")
		}
	})

	t.Run("remove_deletes_menu", func(t *testing.T) {
		if err := service.Remove(ctx, sale.ID); err != nil {
			t.Fatal(err)
		}
		err := service.Remove(ctx, sale.ID)
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected not-found on second delete, got %v", err)
		}
	})
}

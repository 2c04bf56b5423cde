package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/clothplek/catalog-api/app/db/fakers"
	"github.com/clothplek/catalog-api/app/models"
	"github.com/clothplek/catalog-api/app/repositories"
	"github.com/clothplek/catalog-api/app/services"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const fakeProductCount = 10

// DBSeed populates the sample catalog: the base categories, a set of named
// products, the storefront navigation menus and a handful of faker products.
// Rows whose slug or key already exists are skipped, so reruns are safe.
func DBSeed(ctx context.Context, db *gorm.DB) error {
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	navigationRepo := repositories.NewNavigationRepository(db)

	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo)
	navigationService := services.NewNavigationService(navigationRepo)

	categoryIDs := map[string]string{}
	for _, data := range sampleCategories() {
		existing, err := categoryRepo.GetBySlug(ctx, data.Slug)
		if err != nil {
			return fmt.Errorf("failed to check category %s: %w", data.Slug, err)
		}
		if existing != nil {
			categoryIDs[existing.Slug] = existing.ID
			continue
		}

		category := data
		created, err := categoryService.Create(ctx, &category)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", data.Slug, err)
		}
		categoryIDs[created.Slug] = created.ID
		log.Printf("Created category: %s", created.Name)
	}

	for _, data := range sampleProducts(categoryIDs) {
		existing, err := productRepo.GetBySlug(ctx, data.Slug)
		if err != nil {
			return fmt.Errorf("failed to check product %s: %w", data.Slug, err)
		}
		if existing != nil {
			continue
		}

		product := data
		created, err := productService.Create(ctx, &product)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", data.Slug, err)
		}
		log.Printf("Created product: %s", created.Name)
	}

	for i := 0; i < fakeProductCount; i++ {
		product := fakers.ProductFaker(categoryIDs["t-shirts"])
		if _, err := productService.Create(ctx, product); err != nil {
			return fmt.Errorf("failed to seed faker product: %w", err)
		}
	}

	for _, data := range sampleNavigationMenus() {
		existing, err := navigationRepo.GetByKey(ctx, data.Key)
		if err != nil {
			return fmt.Errorf("failed to check navigation menu %s: %w", data.Key, err)
		}
		if existing != nil {
			continue
		}

		menu := data
		created, err := navigationService.Create(ctx, &menu)
		if err != nil {
			return fmt.Errorf("failed to seed navigation menu %s: %w", data.Key, err)
		}
		log.Printf("Created navigation menu: %s", created.Name)
	}

	return nil
}

func sampleCategories() []models.Category {
	return []models.Category{
		{
			Name:        "T-Shirts",
			Slug:        "t-shirts",
			Description: "Comfortable and stylish t-shirts for everyday wear",
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&h=500&fit=crop",
			IsActive:    true,
			SortOrder:   1,
		},
		{
			Name:        "Hoodies",
			Slug:        "hoodies",
			Description: "Cozy hoodies and sweatshirts for casual comfort",
			ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500&h=500&fit=crop",
			IsActive:    true,
			SortOrder:   2,
		},
		{
			Name:        "Jeans",
			Slug:        "jeans",
			Description: "Premium denim jeans for every occasion",
			ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=500&fit=crop",
			IsActive:    true,
			SortOrder:   3,
		},
		{
			Name:        "Shirts",
			Slug:        "shirts",
			Description: "Formal and casual shirts for all occasions",
			ImageURL:    "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=500&h=500&fit=crop",
			IsActive:    true,
			SortOrder:   4,
		},
		{
			Name:        "Accessories",
			Slug:        "accessories",
			Description: "Stylish accessories to complete your look",
			ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=500&fit=crop",
			IsActive:    true,
			SortOrder:   5,
		},
	}
}

func sampleProducts(categoryIDs map[string]string) []models.Product {
	salePrice := func(v float64) decimal.NullDecimal {
		return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
	}

	return []models.Product{
		{
			Name:             "Classic White Tee",
			Slug:             "classic-white-tee",
			Description:      "A timeless white t-shirt made from 100% organic cotton. Perfect for layering or wearing on its own.",
			ShortDescription: "Timeless white t-shirt in organic cotton",
			Price:            decimal.NewFromFloat(25.99),
			SalePrice:        salePrice(19.99),
			StockStatus:      models.StockStatusInStock,
			Sku:              "CWT-001",
			Material:         "100% Organic Cotton",
			CareInstructions: "Machine wash cold, tumble dry low",
			Colors:           models.StringList{"White", "Black", "Navy"},
			Sizes:            models.StringList{"XS", "S", "M", "L", "XL", "XXL"},
			IsActive:         true,
			IsFeatured:       true,
			IsNew:            true,
			Tags:             models.StringList{"basic", "cotton", "casual"},
			Brand:            "ClothPlek",
			Gender:           "unisex",
			CategoryID:       categoryIDs["t-shirts"],
		},
		{
			Name:             "Vintage Band Tee",
			Slug:             "vintage-band-tee",
			Description:      "Rock your style with this vintage-inspired band t-shirt. Soft, comfortable, and full of character.",
			ShortDescription: "Vintage-inspired band t-shirt",
			Price:            decimal.NewFromFloat(32.99),
			StockStatus:      models.StockStatusInStock,
			Sku:              "VBT-001",
			Material:         "60% Cotton, 40% Polyester",
			CareInstructions: "Machine wash cold, hang dry",
			Colors:           models.StringList{"Black", "Charcoal", "Burgundy"},
			Sizes:            models.StringList{"S", "M", "L", "XL"},
			IsActive:         true,
			IsFeatured:       true,
			Tags:             models.StringList{"vintage", "music", "graphic"},
			Brand:            "ClothPlek",
			Gender:           "unisex",
			CategoryID:       categoryIDs["t-shirts"],
		},
		{
			Name:             "Essential Pullover Hoodie",
			Slug:             "essential-pullover-hoodie",
			Description:      "The perfect hoodie for everyday comfort. Features a kangaroo pocket and adjustable hood.",
			ShortDescription: "Essential pullover hoodie with kangaroo pocket",
			Price:            decimal.NewFromFloat(65.99),
			SalePrice:        salePrice(55.99),
			StockStatus:      models.StockStatusInStock,
			Sku:              "EPH-001",
			Material:         "80% Cotton, 20% Polyester",
			CareInstructions: "Machine wash warm, tumble dry low",
			Colors:           models.StringList{"Gray", "Black", "Navy", "Forest Green"},
			Sizes:            models.StringList{"S", "M", "L", "XL", "XXL"},
			IsActive:         true,
			IsFeatured:       true,
			Tags:             models.StringList{"hoodie", "casual", "comfort"},
			Brand:            "ClothPlek",
			Gender:           "unisex",
			CategoryID:       categoryIDs["hoodies"],
		},
		{
			Name:             "Slim Fit Dark Jeans",
			Slug:             "slim-fit-dark-jeans",
			Description:      "Premium slim-fit jeans in dark wash. Perfect for both casual and semi-formal occasions.",
			ShortDescription: "Premium slim-fit jeans in dark wash",
			Price:            decimal.NewFromFloat(89.99),
			StockStatus:      models.StockStatusInStock,
			Sku:              "SFD-001",
			Material:         "98% Cotton, 2% Elastane",
			CareInstructions: "Machine wash cold inside out, hang dry",
			Colors:           models.StringList{"Dark Blue", "Black"},
			Sizes:            models.StringList{"28", "30", "32", "34", "36", "38"},
			IsActive:         true,
			IsFeatured:       true,
			IsNew:            true,
			Tags:             models.StringList{"denim", "slim-fit", "premium"},
			Brand:            "ClothPlek",
			Gender:           "men",
			CategoryID:       categoryIDs["jeans"],
		},
		{
			Name:             "Oxford Button-Down Shirt",
			Slug:             "oxford-button-down-shirt",
			Description:      "Classic oxford button-down shirt perfect for office or casual wear. Timeless design with modern fit.",
			ShortDescription: "Classic oxford button-down shirt",
			Price:            decimal.NewFromFloat(79.99),
			StockStatus:      models.StockStatusInStock,
			Sku:              "OBD-001",
			Material:         "100% Cotton Oxford",
			CareInstructions: "Machine wash warm, iron while damp",
			Colors:           models.StringList{"White", "Light Blue", "Pink"},
			Sizes:            models.StringList{"S", "M", "L", "XL", "XXL"},
			IsActive:         true,
			IsFeatured:       true,
			Tags:             models.StringList{"oxford", "button-down", "formal"},
			Brand:            "ClothPlek",
			Gender:           "men",
			CategoryID:       categoryIDs["shirts"],
		},
		{
			Name:             "Oversized Graphic Tee",
			Slug:             "oversized-graphic-tee",
			Description:      "Trendy oversized graphic tee with modern street-style design. Perfect for a relaxed, contemporary look.",
			ShortDescription: "Trendy oversized graphic tee",
			Price:            decimal.NewFromFloat(35.99),
			StockStatus:      models.StockStatusInStock,
			Sku:              "OGT-001",
			Material:         "100% Cotton",
			CareInstructions: "Machine wash cold, tumble dry low",
			Colors:           models.StringList{"White", "Black", "Sand"},
			Sizes:            models.StringList{"S", "M", "L", "XL"},
			IsActive:         true,
			IsNew:            true,
			Tags:             models.StringList{"oversized", "graphic", "streetwear"},
			Brand:            "ClothPlek",
			Gender:           "unisex",
			CategoryID:       categoryIDs["t-shirts"],
		},
		{
			Name:             "Zip-Up Hoodie",
			Slug:             "zip-up-hoodie",
			Description:      "Versatile zip-up hoodie perfect for layering. Features side pockets and ribbed cuffs.",
			ShortDescription: "Versatile zip-up hoodie with side pockets",
			Price:            decimal.NewFromFloat(75.99),
			StockStatus:      models.StockStatusInStock,
			Sku:              "ZUH-001",
			Material:         "70% Cotton, 30% Polyester",
			CareInstructions: "Machine wash cold, tumble dry low",
			Colors:           models.StringList{"Gray", "Black", "Navy"},
			Sizes:            models.StringList{"S", "M", "L", "XL"},
			IsActive:         true,
			Tags:             models.StringList{"zip-up", "hoodie", "layering"},
			Brand:            "ClothPlek",
			Gender:           "unisex",
			CategoryID:       categoryIDs["hoodies"],
		},
		{
			Name:             "Leather Belt",
			Slug:             "leather-belt",
			Description:      "Genuine leather belt with classic buckle. A wardrobe staple that lasts for years.",
			ShortDescription: "Genuine leather belt with classic buckle",
			Price:            decimal.NewFromFloat(45.99),
			StockStatus:      models.StockStatusLimitedStock,
			Sku:              "LB-001",
			Material:         "100% Genuine Leather",
			CareInstructions: "Wipe clean with damp cloth",
			Colors:           models.StringList{"Brown", "Black"},
			Sizes:            models.StringList{"S", "M", "L"},
			IsActive:         true,
			Tags:             models.StringList{"leather", "belt", "accessory"},
			Brand:            "ClothPlek",
			Gender:           "unisex",
			CategoryID:       categoryIDs["accessories"],
		},
	}
}

func sampleNavigationMenus() []models.NavigationMenu {
	return []models.NavigationMenu{
		{
			Key:       "men",
			Name:      "Men",
			IsActive:  true,
			SortOrder: 1,
			Categories: models.NavigationCategoryList{
				{Title: "Clothing", Items: []string{"T-Shirts", "Shirts", "Jackets", "Pants", "Shorts", "Hoodies", "Tank Tops", "Polos"}},
				{Title: "Footwear", Items: []string{"Running Shoes", "Training Shoes", "Basketball", "Football", "Casual", "Sandals", "Boots"}},
				{Title: "Sports", Items: []string{"Football", "Basketball", "Running", "Gym", "Tennis", "Golf", "Swimming", "Cycling"}},
				{Title: "Accessories", Items: []string{"Bags", "Caps", "Socks", "Gloves", "Belts", "Watches", "Sunglasses", "Water Bottles"}},
			},
			Featured: models.NavigationItemList{
				{Name: "New Arrivals", Href: "/men/new-arrivals", Highlight: "NEW"},
				{Name: "Best Sellers", Href: "/men/best-sellers", Highlight: "HOT"},
				{Name: "Sale Items", Href: "/men/sale", Highlight: "SALE"},
			},
		},
		{
			Key:       "women",
			Name:      "Women",
			IsActive:  true,
			SortOrder: 2,
			Categories: models.NavigationCategoryList{
				{Title: "Activewear", Items: []string{"Sports Bras", "Leggings", "Tank Tops", "Hoodies", "Jackets", "Shorts", "Dresses", "Tops"}},
				{Title: "Footwear", Items: []string{"Running Shoes", "Training Shoes", "Yoga", "Dance", "Walking", "Casual", "Sandals"}},
				{Title: "Sports", Items: []string{"Yoga", "Pilates", "Running", "Gym", "Tennis", "Swimming", "Dance", "Cycling"}},
				{Title: "Accessories", Items: []string{"Yoga Mats", "Water Bottles", "Bags", "Hair Accessories", "Jewelry", "Sunglasses"}},
			},
			Featured: models.NavigationItemList{
				{Name: "New Collection", Href: "/women/new-collection", Highlight: "NEW"},
				{Name: "Trending Now", Href: "/women/trending", Highlight: "TREND"},
				{Name: "Clearance", Href: "/women/clearance", Highlight: "SALE"},
			},
		},
		{
			Key:       "kids",
			Name:      "Kids",
			IsActive:  true,
			SortOrder: 3,
			Categories: models.NavigationCategoryList{
				{Title: "Boys", Items: []string{"T-Shirts", "Shorts", "Tracksuits", "Football Kits", "Basketball", "Swimming", "Shoes"}},
				{Title: "Girls", Items: []string{"Activewear", "Leggings", "Dresses", "Swimming", "Dance", "Tennis", "Shoes"}},
				{Title: "Sports", Items: []string{"Football", "Basketball", "Swimming", "Tennis", "Athletics", "Dance", "Martial Arts"}},
				{Title: "Accessories", Items: []string{"Backpacks", "Water Bottles", "Caps", "Socks", "Shin Guards", "Goggles"}},
			},
			Featured: models.NavigationItemList{
				{Name: "Back to School", Href: "/kids/back-to-school", Highlight: "SPECIAL"},
				{Name: "Age 2-7", Href: "/kids/toddler"},
				{Name: "Age 8-16", Href: "/kids/youth"},
			},
		},
	}
}

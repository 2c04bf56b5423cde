package fakers

import (
	"math/rand"
	"time"

	"github.com/clothplek/catalog-api/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var stockStatuses = []string{
	models.StockStatusInStock,
	models.StockStatusInStock,
	models.StockStatusLimitedStock,
	models.StockStatusOutOfStock,
}

var genders = []string{"men", "women", "unisex"}

var imagePaths = []string{
	"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&h=500&fit=crop",
	"https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500&h=500&fit=crop",
	"https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=500&fit=crop",
}

// ProductFaker builds a demo product for the given category. The slug gets a
// uuid suffix so repeated seeding never trips the unique index.
func ProductFaker(categoryID string) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()
	slugText := slug.Make(name + "-" + uuid.NewString()[:6])

	numImages := rand.Intn(3) + 1
	productImages := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		productImages[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			ImageURL:  imagePaths[rand.Intn(len(imagePaths))],
			AltText:   name,
			IsPrimary: i == 0,
			SortOrder: i,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}

	return &models.Product{
		ID:               productID,
		Name:             name,
		Slug:             slugText,
		Description:      faker.Paragraph(),
		ShortDescription: faker.Sentence(),
		Price:            decimal.NewFromFloat(float64(rand.Intn(9000)+1000) / 100),
		StockStatus:      stockStatuses[rand.Intn(len(stockStatuses))],
		Sku:              slug.Make(name),
		IsActive:         true,
		IsFeatured:       rand.Intn(4) == 0,
		IsNew:            rand.Intn(3) == 0,
		Gender:           genders[rand.Intn(len(genders))],
		CategoryID:       categoryID,
		Images:           productImages,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

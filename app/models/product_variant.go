package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductVariant struct {
	ID              string              `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Size            string              `gorm:"size:50" json:"size"`
	Color           string              `gorm:"size:50" json:"color"`
	Sku             string              `gorm:"size:100" json:"sku"`
	PriceAdjustment decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"price_adjustment"`
	StockQuantity   int                 `gorm:"default:0" json:"stock_quantity"`
	IsActive        bool                `gorm:"default:true" json:"is_active"`
	ImageURL        string              `gorm:"size:500" json:"image_url"`
	ProductID       string              `gorm:"size:36;not null;index" json:"product_id"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

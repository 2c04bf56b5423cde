package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StockStatusInStock      = "in_stock"
	StockStatusOutOfStock   = "out_of_stock"
	StockStatusLimitedStock = "limited_stock"
)

type Product struct {
	ID               string              `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name             string              `gorm:"size:255;not null" json:"name"`
	Slug             string              `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description      string              `gorm:"type:text" json:"description"`
	ShortDescription string              `gorm:"type:text" json:"short_description"`
	Price            decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"price"`
	SalePrice        decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"sale_price"`
	StockStatus      string              `gorm:"size:20;not null;default:'in_stock'" json:"stock_status"`
	Sku              string              `gorm:"size:100" json:"sku"`
	Material         string              `gorm:"type:text" json:"material"`
	CareInstructions string              `gorm:"type:text" json:"care_instructions"`
	Colors           StringList          `gorm:"type:text" json:"colors"`
	Sizes            StringList          `gorm:"type:text" json:"sizes"`
	IsActive         bool                `gorm:"default:true" json:"is_active"`
	IsFeatured       bool                `gorm:"default:false" json:"is_featured"`
	IsNew            bool                `gorm:"default:false" json:"is_new"`
	SortOrder        int                 `gorm:"default:0" json:"sort_order"`
	Tags             StringList          `gorm:"type:text" json:"tags"`
	Brand            string              `gorm:"size:100" json:"brand"`
	Gender           string              `gorm:"size:10" json:"gender"`
	CategoryID       string              `gorm:"size:36;not null;index" json:"category_id"`
	Category         *Category           `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
	Images           []ProductImage      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Variants         []ProductVariant    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

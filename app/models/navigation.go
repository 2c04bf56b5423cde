package models

import (
	"time"
)

// NavigationMenu is a presentation-only menu document. It has no relation to
// Product or Category rows; the two JSON columns hold whatever the storefront
// wants to render.
type NavigationMenu struct {
	ID         string                 `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Key        string                 `gorm:"size:50;not null;uniqueIndex" json:"key"`
	Name       string                 `gorm:"size:255;not null" json:"name"`
	Categories NavigationCategoryList `gorm:"type:json" json:"categories"`
	Featured   NavigationItemList     `gorm:"type:json" json:"featured"`
	IsActive   bool                   `gorm:"default:true" json:"is_active"`
	SortOrder  int                    `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

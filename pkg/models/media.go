package models

import (
	"time"
)

// ProductMedia is a remotely managed image row for a catalog product. The
// designated primary row supplies the product's representative image.
type ProductMedia struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProductSlug string    `gorm:"type:varchar(100);not null;index" json:"product_slug"`
	ImageURL    string    `gorm:"type:varchar(500);not null" json:"image_url"`
	IsPrimary   bool      `gorm:"default:false" json:"is_primary"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ProductMedia) TableName() string {
	return "product_media"
}

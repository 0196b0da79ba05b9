package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product statuses.
const (
	ProductStatusActive = "active"
	ProductStatusDraft  = "draft"
)

type Product struct {
	BaseModel
	Slug             string         `gorm:"uniqueIndex" json:"slug"`
	Name             string         `json:"name"`
	LocalName        string         `json:"local_name"`
	Size             string         `json:"size"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	Details          string         `json:"details"`
	Price            float64        `json:"price"`
	SalePrice        *float64       `json:"sale_price"`
	Rating           float64        `json:"rating"`
	ReviewCount      int            `json:"review_count"`
	Origin           string         `json:"origin"`
	Highlights       pq.StringArray `gorm:"type:text[]" json:"highlights"`
	Status           string         `gorm:"index" json:"status"`
	CategoryID       *uuid.UUID     `gorm:"type:uuid" json:"category_id"`
	Category         *Category      `json:"category,omitempty"`
	Images           []ProductImage `json:"images,omitempty"`
}

type ProductImage struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	ImageURL  string    `json:"image_url"`
	AltText   string    `json:"alt_text"`
	SortOrder int       `json:"sort_order"`
}

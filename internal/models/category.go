package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is a product category (Classic, Vintage, Luxury, ...).
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`             // primary key
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"` // unique identifier
	Name      string         `gorm:"not null" json:"name"`             // display name
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name.
func (Category) TableName() string {
	return "categories"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog entry. The catalog is read-only at runtime; the
// seeder is the only writer.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // primary key
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`                         // category id
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`                          // unique identifier
	Name        string         `gorm:"not null" json:"name"`                                      // display name
	Description string         `gorm:"type:text" json:"description"`                              // short description
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // unit price
	Image       string         `gorm:"type:varchar(500)" json:"image"`                            // image URL
	Features    StringArray    `gorm:"type:json" json:"features"`                                 // ordered feature list
	InStock     bool           `gorm:"not null;default:true;index" json:"in_stock"`               // availability flag
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`                       // listed in the storefront
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                         // sort weight
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // category detail
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

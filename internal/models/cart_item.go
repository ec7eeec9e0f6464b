package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem is one cart line. Carts are keyed by an opaque session token;
// at most one line exists per (session, product).
type CartItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                                           // primary key
	SessionToken string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_product" json:"-"`        // cart session token
	ProductID    uint           `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"product_id"`                // product id
	Quantity     int            `gorm:"not null" json:"quantity"`                                                       // quantity, always >= 1
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // product detail
}

// TableName overrides the table name.
func (CartItem) TableName() string {
	return "cart_items"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is a snapshot order line. Name and prices are copied from the
// product at checkout time.
type OrderItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                     // primary key
	OrderID    uint           `gorm:"index;not null" json:"order_id"`                           // order id
	ProductID  uint           `gorm:"index;not null" json:"product_id"`                         // product id
	Name       string         `gorm:"not null" json:"name"`                                     // product name snapshot
	UnitPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // unit price snapshot
	Quantity   int            `gorm:"not null" json:"quantity"`                                 // quantity
	TotalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // line total
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name.
func (OrderItem) TableName() string {
	return "order_items"
}

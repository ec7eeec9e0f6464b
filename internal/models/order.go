package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is an order header. Amounts and customer details are frozen at
// checkout time; later catalog edits never alter them.
type Order struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                        // primary key
	OrderNo       string         `gorm:"uniqueIndex;not null" json:"order_no"`                        // order number (ORD-...)
	Status        string         `gorm:"index;not null" json:"status"`                                // Pending / Processing / Delivered
	FirstName     string         `gorm:"type:varchar(100);not null" json:"first_name"`                // customer first name
	LastName      string         `gorm:"type:varchar(100);not null" json:"last_name"`                 // customer last name
	Email         string         `gorm:"type:varchar(200);index" json:"email"`                        // customer email (optional)
	Phone         string         `gorm:"type:varchar(50);not null" json:"phone"`                      // customer phone
	Address       string         `gorm:"type:varchar(500);not null" json:"address"`                   // street address
	City          string         `gorm:"type:varchar(100);not null" json:"city"`                      // city
	PostalCode    string         `gorm:"type:varchar(20)" json:"postal_code"`                         // postal code (optional)
	PaymentMethod string         `gorm:"type:varchar(20);not null;default:'cod'" json:"payment_method"`
	ItemsSubtotal Money          `gorm:"type:decimal(20,2);not null;default:0" json:"items_subtotal"` // sum of line totals
	ShippingCost  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_cost"`  // flat rate or free
	GrandTotal    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"grand_total"`    // subtotal + shipping
	ClientIP      string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                 // client IP at checkout
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // snapshot lines
}

// TableName overrides the table name.
func (Order) TableName() string {
	return "orders"
}

// CustomerName joins the frozen first and last name.
func (o Order) CustomerName() string {
	return o.FirstName + " " + o.LastName
}

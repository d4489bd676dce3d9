// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/madhav-gif/Full-stack-project/internal/domain/product"
	"gorm.io/gorm"
)

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// PaymentStatus represents payment status. PENDING moves to exactly one of
// SUCCESS or FAILED; both are terminal.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Order represents a finalized purchase request. TotalPrice and the item
// price snapshots are fixed at creation time and never recomputed.
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        uint          `gorm:"not null;index" json:"user_id"`
	TotalPrice    int64         `gorm:"not null;default:0" json:"total_price"` // In paise
	Status        OrderStatus   `gorm:"not null;size:20;default:'Pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;size:20;default:'PENDING'" json:"payment_status"`

	// Payment gateway correlation fields
	RazorpayOrderID   string `gorm:"size:255;index" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `gorm:"size:255" json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string `gorm:"type:text" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"order_items"`
}

// OrderItem represents one line of an order. Price is a copy taken at
// purchase time, not a live reference to the product's price.
type OrderItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"not null;index" json:"order_id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Price         int64     `gorm:"not null" json:"price"` // Per-unit price in paise
	SelectedColor string    `gorm:"size:50" json:"selected_color,omitempty"`
	SelectedSize  string    `gorm:"size:50" json:"selected_size,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	Product product.Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// GetFormattedTotal returns total amount as a major-unit float
func (o *Order) GetFormattedTotal() float64 {
	return float64(o.TotalPrice) / 100
}

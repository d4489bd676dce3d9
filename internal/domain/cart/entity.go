// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/madhav-gif/Full-stack-project/internal/domain/product"
)

// CartItem represents one pending purchase intent for a user.
// A user holds at most one row per (product, selected_color, selected_size);
// repeated adds merge into the existing row by incrementing quantity.
// Color and size are stored as empty strings when unset so the composite
// unique index applies to variant-less products too.
type CartItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_cart_user_product_variant" json:"user_id"`
	ProductID     uint      `gorm:"not null;uniqueIndex:idx_cart_user_product_variant" json:"product_id"`
	SelectedColor string    `gorm:"size:50;not null;default:'';uniqueIndex:idx_cart_user_product_variant" json:"selected_color"`
	SelectedSize  string    `gorm:"size:50;not null;default:'';uniqueIndex:idx_cart_user_product_variant" json:"selected_size"`
	Quantity      int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	// Relationships
	Product product.Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"product"`
}

// TableName overrides the table name
func (CartItem) TableName() string {
	return "cart_items"
}

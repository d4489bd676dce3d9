// internal/domain/cart/service.go
package cart

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/madhav-gif/Full-stack-project/internal/domain/product"
	"gorm.io/gorm"
)

// ErrItemNotFound is returned when a cart row does not exist for the
// requesting user. Rows owned by other users are reported the same way.
var ErrItemNotFound = errors.New("cart item not found")

// Service handles cart business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// AddToCartRequest represents add to cart request. Quantity is optional
// and defaults to 1; a non-numeric value fails JSON binding.
type AddToCartRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selected_color"`
	SelectedSize  string `json:"selected_size"`
}

// UpdateCartItemRequest represents update cart item request. Quantity is a
// pointer so a missing field can be told apart from an explicit zero.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetItems retrieves all cart rows for a user with product details
func (s *Service) GetItems(userID uint) ([]CartItem, error) {
	var items []CartItem
	err := s.db.Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	return items, nil
}

// AddItem upserts a cart row keyed on (user, product, color, size).
// When the row already exists its quantity is incremented by the requested
// amount. The get-or-create pair is not guarded by a row lock; concurrent
// identical adds race between the lookup and the write, and the composite
// unique index turns the loser into a conflict error.
func (s *Service) AddItem(userID uint, req *AddToCartRequest) (*CartItem, error) {
	var prod product.Product
	result := s.db.Where("id = ?", req.ProductID).First(&prod)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up product: %w", result.Error)
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	color := strings.TrimSpace(req.SelectedColor)
	size := strings.TrimSpace(req.SelectedSize)

	var item CartItem
	result = s.db.Where(
		"user_id = ? AND product_id = ? AND selected_color = ? AND selected_size = ?",
		userID, req.ProductID, color, size,
	).First(&item)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		item = CartItem{
			UserID:        userID,
			ProductID:     req.ProductID,
			SelectedColor: color,
			SelectedSize:  size,
			Quantity:      quantity,
			AddedAt:       time.Now().UTC(),
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to add item to cart: %w", err)
		}
	} else if result.Error != nil {
		return nil, fmt.Errorf("failed to look up cart item: %w", result.Error)
	} else {
		item.Quantity += quantity
		if err := s.db.Save(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	}

	if err := s.db.Preload("Product.Images").First(&item, item.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}

	return &item, nil
}

// UpdateItem sets the quantity of a user's cart row. Quantities below 1 are
// clamped to 1 without error.
func (s *Service) UpdateItem(userID, itemID uint, req *UpdateCartItemRequest) (*CartItem, error) {
	var item CartItem
	result := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to look up cart item: %w", result.Error)
	}

	quantity := *req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item.Quantity = quantity
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	if err := s.db.Preload("Product.Images").First(&item, item.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}

	return &item, nil
}

// RemoveItem deletes a user's cart row
func (s *Service) RemoveItem(userID, itemID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&CartItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ClearForUser removes every cart row for a user. Callers inside a
// transaction pass their tx handle so the clear commits or rolls back with
// the rest of the work.
func (s *Service) ClearForUser(tx *gorm.DB, userID uint) error {
	if tx == nil {
		tx = s.db
	}
	return tx.Where("user_id = ?", userID).Delete(&CartItem{}).Error
}

// Subtotal sums live product price times quantity across cart rows.
// Product must be preloaded on every item.
func Subtotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

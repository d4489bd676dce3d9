// internal/domain/wishlist/service.go
package wishlist

import (
	"errors"
	"fmt"

	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/madhav-gif/Full-stack-project/internal/domain/product"
	"gorm.io/gorm"
)

// ErrItemNotFound is returned when a wishlist row does not exist for the
// requesting user
var ErrItemNotFound = errors.New("wishlist item not found")

// Service handles wishlist business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new wishlist service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// AddToWishlistRequest represents add to wishlist request
type AddToWishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetItems retrieves all wishlist rows for a user with product details
func (s *Service) GetItems(userID uint) ([]WishlistItem, error) {
	var items []WishlistItem
	err := s.db.Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve wishlist: %w", err)
	}
	return items, nil
}

// AddItem adds a product to the wishlist. The operation is idempotent:
// adding a product that is already saved returns the existing row.
func (s *Service) AddItem(userID uint, req *AddToWishlistRequest) (*WishlistItem, error) {
	var prod product.Product
	result := s.db.Where("id = ?", req.ProductID).First(&prod)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up product: %w", result.Error)
	}

	var item WishlistItem
	result = s.db.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&item)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		item = WishlistItem{
			UserID:    userID,
			ProductID: req.ProductID,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to add item to wishlist: %w", err)
		}
	} else if result.Error != nil {
		return nil, fmt.Errorf("failed to look up wishlist item: %w", result.Error)
	}

	if err := s.db.Preload("Product.Images").First(&item, item.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load wishlist item: %w", err)
	}

	return &item, nil
}

// RemoveItem deletes a user's wishlist row
func (s *Service) RemoveItem(userID, itemID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&WishlistItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"

	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/madhav-gif/Full-stack-project/internal/domain/product"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an order does not exist or belongs to
	// another user.
	ErrNotFound = errors.New("order not found")
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateOrderItemRequest represents one purchased line in an order request.
// Price is supplied by the caller and recorded as-is.
type CreateOrderItemRequest struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	Price         *int64 `json:"price" binding:"required,min=0"`
	SelectedColor string `json:"selected_color"`
	SelectedSize  string `json:"selected_size"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	Items []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderListResponse represents a paginated order list
type OrderListResponse struct {
	Orders     []Order             `json:"orders"`
	Pagination *product.Pagination `json:"pagination"`
}

// ComputeTotal sums price x quantity over the requested items.
func ComputeTotal(items []CreateOrderItemRequest) int64 {
	var total int64
	for _, item := range items {
		if item.Price == nil {
			continue
		}
		total += *item.Price * int64(item.Quantity)
	}
	return total
}

// CreateOrder creates an order and its line items in a single transaction.
// Either the order and every item are persisted, or nothing is.
func (s *Service) CreateOrder(userID uint, req *CreateOrderRequest) (*Order, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Every referenced product must exist
	for _, item := range req.Items {
		var p product.Product
		if err := tx.First(&p, item.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: id %d", product.ErrNotFound, item.ProductID)
			}
			return nil, fmt.Errorf("failed to look up product: %w", err)
		}
	}

	newOrder := &Order{
		UserID:        userID,
		TotalPrice:    ComputeTotal(req.Items),
		Status:        OrderStatusPending,
		PaymentStatus: PaymentStatusPending,
	}
	if err := tx.Create(newOrder).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range req.Items {
		orderItem := OrderItem{
			OrderID:       newOrder.ID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			Price:         *item.Price,
			SelectedColor: item.SelectedColor,
			SelectedSize:  item.SelectedSize,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.GetOrder(userID, newOrder.ID)
}

// GetUserOrders returns the user's orders, newest first
func (s *Service) GetUserOrders(userID uint, page, limit int) (*OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := s.db.Model(&Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []Order
	offset := (page - 1) * limit
	err := s.db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &OrderListResponse{
		Orders: orders,
		Pagination: &product.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// GetOrder returns a single order scoped to the given user
func (s *Service) GetOrder(userID, orderID uint) (*Order, error) {
	var o Order
	err := s.db.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		Preload("Items.Product").
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &o, nil
}

// GetOrderByGatewayID finds an order by its payment gateway order id. Used by
// payment verification, where the caller only knows the gateway reference.
func (s *Service) GetOrderByGatewayID(tx *gorm.DB, userID uint, razorpayOrderID string) (*Order, error) {
	if tx == nil {
		tx = s.db
	}
	var o Order
	err := tx.Where("razorpay_order_id = ? AND user_id = ?", razorpayOrderID, userID).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &o, nil
}

// internal/domain/payment/service.go
package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/madhav-gif/Full-stack-project/internal/domain/cart"
	"github.com/madhav-gif/Full-stack-project/internal/domain/order"
	"gorm.io/gorm"
)

var (
	// ErrEmptyCart is returned when payment is initiated with no cart items
	ErrEmptyCart = errors.New("cart is empty")
	// ErrVerificationFailed covers every verification failure: bad signature,
	// unknown gateway order, order belonging to another user. The caller is
	// not told which.
	ErrVerificationFailed = errors.New("payment verification failed")
)

// Service handles the payment lifecycle against the Razorpay gateway
type Service struct {
	db           *gorm.DB
	config       *config.Config
	gateway      *RazorpayClient
	cartService  *cart.Service
	orderService *order.Service
}

// NewService creates a new payment service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:           db,
		config:       cfg,
		gateway:      NewRazorpayClient(cfg),
		cartService:  cart.NewService(db, cfg),
		orderService: order.NewService(db, cfg),
	}
}

// InitiatePaymentResponse is returned to the client to open checkout
type InitiatePaymentResponse struct {
	OrderID         uint   `json:"order_id"`
	RazorpayOrderID string `json:"razorpay_order_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Key             string `json:"key"`
}

// VerifyPaymentRequest carries the fields Razorpay checkout hands back
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// InitiatePayment creates a gateway order for the user's current cart and a
// matching local order in Pending/PENDING state. The amount is computed from
// live product prices, not client input.
func (s *Service) InitiatePayment(userID uint, userEmail string) (*InitiatePaymentResponse, error) {
	items, err := s.cartService.GetItems(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	amount := cart.Subtotal(items)
	currency := s.config.External.Razorpay.Currency
	receipt := fmt.Sprintf("rcpt_%d_%d", userID, time.Now().Unix())

	notes := map[string]interface{}{
		"user_id": fmt.Sprintf("%d", userID),
	}
	if userEmail != "" {
		notes["email"] = userEmail
	}

	gatewayOrder, err := s.gateway.CreateOrder(amount, currency, receipt, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	newOrder := &order.Order{
		UserID:          userID,
		TotalPrice:      amount,
		Status:          order.OrderStatusPending,
		PaymentStatus:   order.PaymentStatusPending,
		RazorpayOrderID: gatewayOrder.ID,
	}
	if err := tx.Create(newOrder).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Snapshot cart lines so the order survives later cart changes
	for _, item := range items {
		orderItem := order.OrderItem{
			OrderID:       newOrder.ID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			Price:         item.Product.Price,
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

	return &InitiatePaymentResponse{
		OrderID:         newOrder.ID,
		RazorpayOrderID: gatewayOrder.ID,
		Amount:          amount,
		Currency:        currency,
		Key:             s.gateway.KeyID(),
	}, nil
}

// VerifyPayment checks the checkout signature and, when valid, confirms the
// order and clears the user's cart in one transaction. On any verification
// failure nothing is modified.
func (s *Service) VerifyPayment(userID uint, req *VerifyPaymentRequest) (*order.Order, error) {
	if !VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.config.External.Razorpay.KeySecret) {
		return nil, ErrVerificationFailed
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	o, err := s.orderService.GetOrderByGatewayID(tx, userID, req.RazorpayOrderID)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, order.ErrNotFound) {
			return nil, ErrVerificationFailed
		}
		return nil, err
	}

	o.PaymentStatus = order.PaymentStatusSuccess
	o.Status = order.OrderStatusConfirmed
	o.RazorpayPaymentID = req.RazorpayPaymentID
	o.RazorpaySignature = req.RazorpaySignature
	if err := tx.Save(o).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if err := s.cartService.ClearForUser(tx, userID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return o, nil
}

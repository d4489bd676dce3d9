package payment

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/madhav-gif/Full-stack-project/internal/domain/cart"
	"github.com/madhav-gif/Full-stack-project/internal/domain/order"
	"github.com/madhav-gif/Full-stack-project/internal/domain/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("Integration test - set TEST_DATABASE_DSN to run")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&product.Product{}, &product.ProductImage{},
		&cart.CartItem{},
		&order.Order{}, &order.OrderItem{},
	))

	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.Razorpay.KeySecret = "test-key-secret"
	cfg.External.Razorpay.Currency = "INR"
	return cfg
}

func testUserID() uint {
	return uint(time.Now().UnixNano() % 1_000_000_000)
}

// seedPendingOrder creates a cart row and a matching pending order, the
// state InitiatePayment leaves behind before checkout completes.
func seedPendingOrder(t *testing.T, db *gorm.DB, userID uint, razorpayOrderID string) *order.Order {
	t.Helper()

	p := &product.Product{
		Name:        fmt.Sprintf("Payment Product %d", time.Now().UnixNano()),
		Description: "Product created by tests",
		Price:       49900,
	}
	require.NoError(t, db.Create(p).Error)

	cartItem := &cart.CartItem{
		UserID:    userID,
		ProductID: p.ID,
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	}
	require.NoError(t, db.Create(cartItem).Error)

	o := &order.Order{
		UserID:          userID,
		TotalPrice:      49900,
		Status:          order.OrderStatusPending,
		PaymentStatus:   order.PaymentStatusPending,
		RazorpayOrderID: razorpayOrderID,
	}
	require.NoError(t, db.Create(o).Error)

	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&cart.CartItem{})
		db.Exec("DELETE FROM order_items WHERE order_id = ?", o.ID)
		db.Unscoped().Delete(o)
		db.Unscoped().Delete(p)
	})

	return o
}

func TestVerifyPaymentConfirmsOrderAndClearsCart(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	service := NewService(db, cfg)

	userID := testUserID()
	razorpayOrderID := fmt.Sprintf("order_test_%d", userID)
	seeded := seedPendingOrder(t, db, userID, razorpayOrderID)

	signature := signPayload(razorpayOrderID, "pay_test_1", cfg.External.Razorpay.KeySecret)

	verified, err := service.VerifyPayment(userID, &VerifyPaymentRequest{
		RazorpayOrderID:   razorpayOrderID,
		RazorpayPaymentID: "pay_test_1",
		RazorpaySignature: signature,
	})
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, verified.ID)
	assert.Equal(t, order.PaymentStatusSuccess, verified.PaymentStatus)
	assert.Equal(t, order.OrderStatusConfirmed, verified.Status)
	assert.Equal(t, "pay_test_1", verified.RazorpayPaymentID)

	var cartCount int64
	require.NoError(t, db.Model(&cart.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error)
	assert.Equal(t, int64(0), cartCount)
}

func TestVerifyPaymentBadSignatureLeavesStateUntouched(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, testConfig())

	userID := testUserID()
	razorpayOrderID := fmt.Sprintf("order_test_%d", userID)
	seeded := seedPendingOrder(t, db, userID, razorpayOrderID)

	_, err := service.VerifyPayment(userID, &VerifyPaymentRequest{
		RazorpayOrderID:   razorpayOrderID,
		RazorpayPaymentID: "pay_test_1",
		RazorpaySignature: "forged-signature",
	})
	assert.ErrorIs(t, err, ErrVerificationFailed)

	var reloaded order.Order
	require.NoError(t, db.First(&reloaded, seeded.ID).Error)
	assert.Equal(t, order.PaymentStatusPending, reloaded.PaymentStatus)
	assert.Equal(t, order.OrderStatusPending, reloaded.Status)

	var cartCount int64
	require.NoError(t, db.Model(&cart.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error)
	assert.Equal(t, int64(1), cartCount)
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	service := NewService(db, cfg)

	razorpayOrderID := "order_does_not_exist"
	signature := signPayload(razorpayOrderID, "pay_test_1", cfg.External.Razorpay.KeySecret)

	_, err := service.VerifyPayment(testUserID(), &VerifyPaymentRequest{
		RazorpayOrderID:   razorpayOrderID,
		RazorpayPaymentID: "pay_test_1",
		RazorpaySignature: signature,
	})
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerifyPaymentWrongUser(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	service := NewService(db, cfg)

	ownerID := testUserID()
	otherID := ownerID + 1
	razorpayOrderID := fmt.Sprintf("order_test_%d", ownerID)
	seeded := seedPendingOrder(t, db, ownerID, razorpayOrderID)

	signature := signPayload(razorpayOrderID, "pay_test_1", cfg.External.Razorpay.KeySecret)

	_, err := service.VerifyPayment(otherID, &VerifyPaymentRequest{
		RazorpayOrderID:   razorpayOrderID,
		RazorpayPaymentID: "pay_test_1",
		RazorpaySignature: signature,
	})
	assert.ErrorIs(t, err, ErrVerificationFailed)

	var reloaded order.Order
	require.NoError(t, db.First(&reloaded, seeded.ID).Error)
	assert.Equal(t, order.PaymentStatusPending, reloaded.PaymentStatus)
}

func TestInitiatePaymentEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, testConfig())

	_, err := service.InitiatePayment(testUserID(), "buyer@example.com")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

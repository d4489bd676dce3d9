package handlers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/madhav-gif/Full-stack-project/internal/config"
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
	require.NoError(t, db.AutoMigrate(&product.Product{}, &product.ProductImage{}, &order.Order{}, &order.OrderItem{}))

	return db
}

func handlerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "test-app"
	return cfg
}

func TestCreateOrderAcceptsItemsPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	userID := uint(time.Now().UnixNano() % 1_000_000_000)

	p := &product.Product{
		Name:        fmt.Sprintf("Handler Product %d", time.Now().UnixNano()),
		Description: "Product created by tests",
		Price:       10,
	}
	require.NoError(t, db.Create(p).Error)
	t.Cleanup(func() {
		db.Exec("DELETE FROM order_items WHERE order_id IN (SELECT id FROM orders WHERE user_id = ?)", userID)
		db.Unscoped().Where("user_id = ?", userID).Delete(&order.Order{})
		db.Unscoped().Delete(p)
	})

	body := fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":2,"price":10},{"product_id":%d,"quantity":1,"price":5}]}`, p.ID, p.ID)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)

	handler := NewOrderHandler(db, handlerTestConfig())
	handler.CreateOrder(c)

	require.Equal(t, 201, w.Code, w.Body.String())

	var resp struct {
		Message    string `json:"message"`
		OrderID    uint   `json:"order_id"`
		TotalPrice int64  `json:"total_price"`
		Status     string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.OrderID)
	assert.Equal(t, int64(25), resp.TotalPrice)
	assert.Equal(t, string(order.OrderStatusPending), resp.Status)
}

func TestCreateOrderRejectsMissingItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", uint(1))

	handler := NewOrderHandler(db, handlerTestConfig())
	handler.CreateOrder(c)

	assert.Equal(t, 400, w.Code)
}

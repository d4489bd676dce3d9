package cart

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/madhav-gif/Full-stack-project/internal/config"
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
	require.NoError(t, db.AutoMigrate(&product.Product{}, &product.ProductImage{}, &CartItem{}))

	return db
}

// testUserID returns a user id unlikely to collide across test runs
func testUserID() uint {
	return uint(time.Now().UnixNano() % 1_000_000_000)
}

func createTestProduct(t *testing.T, db *gorm.DB, price int64) *product.Product {
	t.Helper()

	p := &product.Product{
		Name:        fmt.Sprintf("Test Product %d", time.Now().UnixNano()),
		Description: "Product created by tests",
		Price:       price,
	}
	require.NoError(t, db.Create(p).Error)
	t.Cleanup(func() {
		db.Unscoped().Delete(p)
	})
	return p
}

func TestSubtotal(t *testing.T) {
	items := []CartItem{
		{Quantity: 2, Product: product.Product{Price: 1000}},
		{Quantity: 3, Product: product.Product{Price: 250}},
	}

	assert.Equal(t, int64(2750), Subtotal(items))
}

func TestSubtotalEmptyCart(t *testing.T) {
	assert.Equal(t, int64(0), Subtotal(nil))
}

func TestAddItemMergesQuantities(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, &config.Config{})

	userID := testUserID()
	p := createTestProduct(t, db, 49900)
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&CartItem{})
	})

	first, err := service.AddItem(userID, &AddToCartRequest{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := service.AddItem(userID, &AddToCartRequest{ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	var count int64
	require.NoError(t, db.Model(&CartItem{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, &config.Config{})

	userID := testUserID()
	p := createTestProduct(t, db, 49900)
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&CartItem{})
	})

	item, err := service.AddItem(userID, &AddToCartRequest{ProductID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddItemDistinctVariantsGetSeparateRows(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, &config.Config{})

	userID := testUserID()
	p := createTestProduct(t, db, 49900)
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&CartItem{})
	})

	small, err := service.AddItem(userID, &AddToCartRequest{ProductID: p.ID, SelectedSize: "S"})
	require.NoError(t, err)

	large, err := service.AddItem(userID, &AddToCartRequest{ProductID: p.ID, SelectedSize: "L"})
	require.NoError(t, err)

	assert.NotEqual(t, small.ID, large.ID)

	var count int64
	require.NoError(t, db.Model(&CartItem{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, &config.Config{})

	_, err := service.AddItem(testUserID(), &AddToCartRequest{ProductID: 4294967290})
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestUpdateItemClampsQuantity(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, &config.Config{})

	userID := testUserID()
	p := createTestProduct(t, db, 49900)
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&CartItem{})
	})

	item, err := service.AddItem(userID, &AddToCartRequest{ProductID: p.ID, Quantity: 4})
	require.NoError(t, err)

	negative := -3
	updated, err := service.UpdateItem(userID, item.ID, &UpdateCartItemRequest{Quantity: &negative})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)
}

func TestUpdateItemScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, &config.Config{})

	ownerID := testUserID()
	otherID := ownerID + 1
	p := createTestProduct(t, db, 49900)
	t.Cleanup(func() {
		db.Where("user_id IN ?", []uint{ownerID, otherID}).Delete(&CartItem{})
	})

	item, err := service.AddItem(ownerID, &AddToCartRequest{ProductID: p.ID})
	require.NoError(t, err)

	quantity := 5
	_, err = service.UpdateItem(otherID, item.ID, &UpdateCartItemRequest{Quantity: &quantity})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItemScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, &config.Config{})

	ownerID := testUserID()
	otherID := ownerID + 1
	p := createTestProduct(t, db, 49900)
	t.Cleanup(func() {
		db.Where("user_id IN ?", []uint{ownerID, otherID}).Delete(&CartItem{})
	})

	item, err := service.AddItem(ownerID, &AddToCartRequest{ProductID: p.ID})
	require.NoError(t, err)

	err = service.RemoveItem(otherID, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	// Row must still be there for the owner
	var count int64
	require.NoError(t, db.Model(&CartItem{}).Where("id = ?", item.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, service.RemoveItem(ownerID, item.ID))
	err = service.RemoveItem(ownerID, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

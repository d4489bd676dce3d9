package user

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/madhav-gif/Full-stack-project/internal/pkg/auth"
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
	require.NoError(t, db.AutoMigrate(&User{}))

	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "test-app"
	cfg.JWT.Secret = "test-secret-key-for-jwt-signing-0123456789"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.JWT.RefreshTokenExpiry = 24 * time.Hour
	cfg.JWT.RefreshTokenRotation = true
	cfg.Security.BcryptCost = 4
	cfg.Security.MinPasswordLength = 6
	return cfg
}

func uniqueSignup(suffix string) *SignupRequest {
	nonce := time.Now().UnixNano()
	return &SignupRequest{
		Username: fmt.Sprintf("user_%d_%s", nonce, suffix),
		Email:    fmt.Sprintf("user_%d_%s@example.com", nonce, suffix),
		Password: "secret1",
	}
}

func cleanupUser(t *testing.T, db *gorm.DB, email string) {
	t.Helper()
	t.Cleanup(func() {
		db.Unscoped().Where("email = ?", email).Delete(&User{})
	})
}

func TestSignupRejectsShortPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, testConfig())

	req := uniqueSignup("short")
	req.Password = "12345"

	_, err := service.Signup(req)
	require.ErrorIs(t, err, auth.ErrPasswordTooShort)
	assert.Contains(t, err.Error(), "at least 6 characters")
}

func TestSignupReturnsTokenPair(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, testConfig())

	req := uniqueSignup("ok")
	cleanupUser(t, db, req.Email)

	response, err := service.Signup(req)
	require.NoError(t, err)
	assert.Equal(t, req.Username, response.Username)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
}

func TestGetProfileReturnsUserWithoutPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, testConfig())

	req := uniqueSignup("profile")
	cleanupUser(t, db, req.Email)

	_, err := service.Signup(req)
	require.NoError(t, err)

	var created User
	require.NoError(t, db.Where("email = ?", req.Email).First(&created).Error)

	u, err := service.GetProfile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, req.Username, u.Username)
	assert.Equal(t, req.Email, u.Email)
	assert.Empty(t, u.Password)

	_, err = service.GetProfile(4294967290)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetDisplayName(t *testing.T) {
	u := &User{Username: "shopper", Email: "shopper@example.com"}
	assert.Equal(t, "shopper", u.GetDisplayName())

	u.Username = ""
	assert.Equal(t, "shopper@example.com", u.GetDisplayName())
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, testConfig())

	req := uniqueSignup("dup")
	cleanupUser(t, db, req.Email)

	_, err := service.Signup(req)
	require.NoError(t, err)

	dup := uniqueSignup("dup2")
	dup.Email = req.Email
	_, err = service.Signup(dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginDistinguishesUnknownEmailFromBadPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, testConfig())

	req := uniqueSignup("login")
	cleanupUser(t, db, req.Email)

	_, err := service.Signup(req)
	require.NoError(t, err)

	_, err = service.Login(&LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = service.Login(&LoginRequest{Email: req.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	response, err := service.Login(&LoginRequest{Email: req.Email, Password: req.Password})
	require.NoError(t, err)
	assert.Equal(t, req.Username, response.Username)
}

func TestRefreshTokenIssuesNewAccessToken(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, testConfig())

	req := uniqueSignup("refresh")
	cleanupUser(t, db, req.Email)

	signup, err := service.Signup(req)
	require.NoError(t, err)

	refreshed, err := service.RefreshToken(signup.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, req.Username, refreshed.Username)

	_, err = service.RefreshToken(signup.AccessToken)
	assert.Error(t, err)
}

// internal/pkg/auth/password.go
package auth

import (
	"errors"
	"fmt"

	"github.com/madhav-gif/Full-stack-project/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordTooShort is returned when a password is below the configured minimum
	ErrPasswordTooShort = errors.New("password is too short")
	// ErrPasswordTooLong is returned when a password exceeds the maximum length
	ErrPasswordTooLong = errors.New("password is too long")
)

// PasswordManager handles password operations
type PasswordManager struct {
	config *config.Config
}

// NewPasswordManager creates a new password manager
func NewPasswordManager(cfg *config.Config) *PasswordManager {
	return &PasswordManager{
		config: cfg,
	}
}

// HashPassword hashes a password using bcrypt
func (p *PasswordManager) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.config.Security.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword verifies a password against its hash
func (p *PasswordManager) VerifyPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidatePassword checks the password against the configured length policy
func (p *PasswordManager) ValidatePassword(password string) error {
	minLength := p.config.Security.MinPasswordLength
	if minLength < 1 {
		minLength = 6
	}

	if len(password) < minLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooShort, minLength)
	}

	if len(password) > 128 {
		return fmt.Errorf("%w: must be no more than 128 characters", ErrPasswordTooLong)
	}

	return nil
}

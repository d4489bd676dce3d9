package auth

import (
	"strings"
	"testing"

	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passwordTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = 4 // Minimum cost keeps tests fast
	cfg.Security.MinPasswordLength = 6
	return cfg
}

func TestHashAndVerifyPassword(t *testing.T) {
	manager := NewPasswordManager(passwordTestConfig())

	hash, err := manager.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, manager.VerifyPassword("secret1", hash))
	assert.Error(t, manager.VerifyPassword("wrong-password", hash))
}

func TestValidatePasswordLength(t *testing.T) {
	manager := NewPasswordManager(passwordTestConfig())

	assert.ErrorIs(t, manager.ValidatePassword("12345"), ErrPasswordTooShort)
	assert.NoError(t, manager.ValidatePassword("123456"))
	assert.NoError(t, manager.ValidatePassword("a much longer passphrase"))
	assert.ErrorIs(t, manager.ValidatePassword(strings.Repeat("x", 129)), ErrPasswordTooLong)
}

func TestValidatePasswordDefaultsMinLength(t *testing.T) {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = 4
	manager := NewPasswordManager(cfg)

	// Unset config falls back to a 6-character minimum
	assert.Error(t, manager.ValidatePassword("short"))
	assert.NoError(t, manager.ValidatePassword("longer"))
}

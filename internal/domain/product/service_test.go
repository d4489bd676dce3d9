package product

import (
	"testing"

	"github.com/madhav-gif/Full-stack-project/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestBuildOrderClauseWhitelistsSortFields(t *testing.T) {
	service := NewService(nil, &config.Config{})

	assert.Equal(t, "price asc", service.buildOrderClause("price", "asc"))
	assert.Equal(t, "name desc", service.buildOrderClause("name", "desc"))

	// Unknown fields and directions fall back to the defaults
	assert.Equal(t, "created_at desc", service.buildOrderClause("password", "desc"))
	assert.Equal(t, "created_at desc", service.buildOrderClause("id; DROP TABLE products", "asc"))
	assert.Equal(t, "price desc", service.buildOrderClause("price", "sideways"))
}

func TestGetFormattedPrice(t *testing.T) {
	p := Product{Price: 49900}
	assert.InDelta(t, 499.0, p.GetFormattedPrice(), 0.001)
}

package pricing

import (
	"testing"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/stretchr/testify/assert"
)

var dozenBrown = models.Product{
	ID:                1,
	Name:              "Brown Dozen",
	B2CPrice:          3.99,
	B2BPrice:          2.49,
	InventoryByCarton: 40,
	InventoryByBox:    12,
}

func TestResolveByRole(t *testing.T) {
	tests := []struct {
		role      models.Role
		price     float64
		inventory int
		typ       string
	}{
		{models.RoleB2C, 3.99, 40, TypeRetail},
		{models.RoleB2B, 2.49, 12, TypeWholesale},
		{models.RoleAdmin, 2.49, 12, TypeWholesale},
		{models.ParseRole(""), 3.99, 40, TypeRetail}, // unauthenticated
	}

	for _, tt := range tests {
		got := Resolve(dozenBrown, tt.role)
		assert.Equal(t, tt.price, got.Price, "role %s", tt.role)
		assert.Equal(t, tt.inventory, got.Inventory, "role %s", tt.role)
		assert.Equal(t, tt.typ, got.PricingType, "role %s", tt.role)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleB2C, models.RoleB2B} {
		assert.Equal(t, Resolve(dozenBrown, role), Resolve(dozenBrown, role))
	}
}

func TestCompareExposesBothTiers(t *testing.T) {
	q := Compare(dozenBrown, models.RoleAdmin)
	assert.Equal(t, 2.49, q.Price)
	assert.Equal(t, 3.99, q.B2CPrice)
	assert.Equal(t, 2.49, q.B2BPrice)
	assert.Equal(t, 40, q.InventoryByCarton)
	assert.Equal(t, 12, q.InventoryByBox)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, models.RoleAdmin, models.ParseRole("admin"))
	assert.Equal(t, models.RoleB2B, models.ParseRole("b2b"))
	assert.Equal(t, models.RoleB2C, models.ParseRole("b2c"))
	assert.Equal(t, models.RoleB2C, models.ParseRole("superuser"))
}

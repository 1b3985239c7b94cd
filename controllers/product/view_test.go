package productControllers

import (
	"encoding/json"
	"testing"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jumbo = models.Product{
	ID:                7,
	Name:              "Jumbo White Dozen",
	Category:          "dozen",
	EggColor:          "white",
	EggCount:          12,
	B2CPrice:          5.49,
	B2BPrice:          3.99,
	InventoryByCarton: 25,
	InventoryByBox:    8,
	IsAvailable:       true,
}

func TestBuildViewRetailViewer(t *testing.T) {
	got, ok := buildView(jumbo, models.RoleB2C).(view)
	require.True(t, ok)
	assert.Equal(t, 5.49, got.Price)
	assert.Equal(t, 25, got.Inventory)
	assert.Equal(t, "retail", got.PricingType)

	// the retail view must not leak the wholesale tier
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "b2bPrice")
}

func TestBuildViewWholesaleViewer(t *testing.T) {
	got, ok := buildView(jumbo, models.RoleB2B).(view)
	require.True(t, ok)
	assert.Equal(t, 3.99, got.Price)
	assert.Equal(t, 8, got.Inventory)
	assert.Equal(t, "wholesale", got.PricingType)
}

func TestBuildViewAdminSeesBothTiers(t *testing.T) {
	got, ok := buildView(jumbo, models.RoleAdmin).(adminView)
	require.True(t, ok)
	assert.Equal(t, 3.99, got.Price)
	assert.Equal(t, 5.49, got.B2CPrice)
	assert.Equal(t, 3.99, got.B2BPrice)
	assert.Equal(t, 25, got.InventoryByCarton)
	assert.Equal(t, 8, got.InventoryByBox)
}

func TestBuildViewsKeepsOrder(t *testing.T) {
	second := jumbo
	second.ID = 8
	views := buildViews([]models.Product{jumbo, second}, models.RoleB2C)
	require.Len(t, views, 2)
	assert.Equal(t, uint(7), views[0].(view).ID)
	assert.Equal(t, uint(8), views[1].(view).ID)
}

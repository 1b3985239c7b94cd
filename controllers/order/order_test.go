package orderControllers

import (
	"regexp"
	"testing"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, models.OrderStatusPending, normalizeStatus("pending"))
	assert.Equal(t, models.OrderStatusShipped, normalizeStatus("shipped"))
	assert.Equal(t, models.OrderStatusDelivered, normalizeStatus("delivered"))
	assert.Equal(t, models.OrderStatusCancelled, normalizeStatus("cancelled"))

	// anything unknown falls back to pending
	assert.Equal(t, models.OrderStatusPending, normalizeStatus(""))
	assert.Equal(t, models.OrderStatusPending, normalizeStatus("returned"))
	assert.Equal(t, models.OrderStatusPending, normalizeStatus("PENDING"))
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{14}-[0-9a-f]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := generateOrderNumber()
		assert.Regexp(t, pattern, n)
		assert.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}

func TestResolveUnitPrice(t *testing.T) {
	product := models.Product{B2CPrice: 3.99, B2BPrice: 2.49}

	override := 2.49
	assert.Equal(t, 2.49, resolveUnitPrice(&override, product))

	// without an override the fallback is always the retail price
	assert.Equal(t, 3.99, resolveUnitPrice(nil, product))

	zero := 0.0
	assert.Equal(t, 3.99, resolveUnitPrice(&zero, product))
}

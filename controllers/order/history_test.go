package orderControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2026, 8, n, 12, 0, 0, 0, time.UTC)
}

func TestFoldHistoryCollapsesRepeatOrders(t *testing.T) {
	rows := []historyRow{
		{ProductID: 1, Name: "Brown Dozen", Quantity: 3, OrderedAt: day(20)},
		{ProductID: 1, Name: "Brown Dozen", Quantity: 2, OrderedAt: day(10)},
	}

	history := foldHistory(rows)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].OrderCount)
	assert.Equal(t, 5, history[0].TotalQuantity)
	assert.Equal(t, day(20), history[0].LastOrdered)
	assert.Len(t, history[0].OrderDates, 2)
}

func TestFoldHistoryLastOrderedIgnoresRowOrder(t *testing.T) {
	// newest row not first: calendar comparison must still win
	rows := []historyRow{
		{ProductID: 1, Quantity: 1, OrderedAt: day(5)},
		{ProductID: 1, Quantity: 1, OrderedAt: day(25)},
	}

	history := foldHistory(rows)
	require.Len(t, history, 1)
	assert.Equal(t, day(25), history[0].LastOrdered)
}

func TestFoldHistorySortsByLastOrderedDesc(t *testing.T) {
	rows := []historyRow{
		{ProductID: 1, Name: "Brown Dozen", Quantity: 1, OrderedAt: day(10)},
		{ProductID: 2, Name: "White Half", Quantity: 1, OrderedAt: day(15)},
		{ProductID: 1, Name: "Brown Dozen", Quantity: 1, OrderedAt: day(3)},
	}

	history := foldHistory(rows)
	require.Len(t, history, 2)
	assert.Equal(t, uint(2), history[0].ProductID)
	assert.Equal(t, uint(1), history[1].ProductID)
}

func TestFoldHistorySeedsDisplayFieldsFromFirstRow(t *testing.T) {
	rows := []historyRow{
		{ProductID: 3, Name: "Jumbo", Category: "dozen", EggColor: "white", B2CPrice: 5.49, B2BPrice: 3.99, Quantity: 1, OrderedAt: day(1)},
	}

	history := foldHistory(rows)
	require.Len(t, history, 1)
	assert.Equal(t, "Jumbo", history[0].Name)
	assert.Equal(t, "dozen", history[0].Category)
	assert.Equal(t, 5.49, history[0].B2CPrice)
}

func TestFoldHistoryEmpty(t *testing.T) {
	assert.Empty(t, foldHistory(nil))
}

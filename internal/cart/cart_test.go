package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

var now = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func product(id string, inventory int, rate string) models.Product {
	return models.Product{ID: id, Name: "P" + id, CurrentInventory: inventory, Rate: decimal.RequireFromString(rate)}
}

func TestCart_AddMergesAndClamps(t *testing.T) {
	c := New()
	p := product("2", 250, "5.00")

	first, err := c.Add(p, 200, now)
	require.NoError(t, err)
	assert.Equal(t, 200, first.Quantity)
	assert.NotEmpty(t, first.ID)

	merged, err := c.Add(p, 100, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 250, merged.Quantity)
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, "1250.00", c.Total().StringFixed(2))
}

func TestCart_AddRejects(t *testing.T) {
	c := New()

	_, err := c.Add(product("1", 10, "1.00"), 0, now)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = c.Add(product("9", 0, "1.00"), 1, now)
	assert.ErrorIs(t, err, ErrOutOfStock)

	assert.Zero(t, c.Count())
}

func TestCart_RemoveAndClear(t *testing.T) {
	c := New()
	_, err := c.Add(product("1", 500, "2.50"), 3, now)
	require.NoError(t, err)
	_, err = c.Add(product("2", 250, "5.00"), 1, now)
	require.NoError(t, err)

	require.NoError(t, c.Remove("1"))
	assert.ErrorIs(t, c.Remove("1"), ErrItemNotFound)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ProductID)

	items[0].Quantity = 99
	assert.Equal(t, 1, c.Items()[0].Quantity, "Items must return a copy")

	c.Clear()
	assert.Zero(t, c.Count())
	assert.True(t, c.Total().IsZero())
}

func TestCart_TotalSumsLines(t *testing.T) {
	c := New()
	assert.Equal(t, "0.00", c.Total().StringFixed(2))

	_, err := c.Add(product("1", 500, "2.50"), 3, now)
	require.NoError(t, err)
	_, err = c.Add(product("4", 2000, "1.75"), 3, now)
	require.NoError(t, err)
	_, err = c.Add(product("6", 40, "1450.00"), 2, now)
	require.NoError(t, err)

	// 7.50 + 5.25 + 2900.00
	assert.Equal(t, "2912.75", c.Total().StringFixed(2))
}

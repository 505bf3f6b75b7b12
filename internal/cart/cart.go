// Package cart holds the session-scoped list of requested products.
package cart

import (
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrItemNotFound    = errors.New("item not in cart")
)

// Item is one product line in the cart
type Item struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	UnitRate    decimal.Decimal
	AddedAt     time.Time
	UpdatedAt   time.Time
}

// LineTotal returns rate x quantity rounded to 2 places
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitRate.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

// MarshalJSON renders money as fixed 2-decimal strings
func (i Item) MarshalJSON() ([]byte, error) {
	type view struct {
		ID          string    `json:"id"`
		ProductID   string    `json:"product_id"`
		ProductName string    `json:"product_name"`
		Quantity    int       `json:"quantity"`
		UnitRate    string    `json:"unit_rate"`
		LineTotal   string    `json:"line_total"`
		AddedAt     time.Time `json:"added_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}
	return json.Marshal(view{
		ID:          i.ID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitRate:    i.UnitRate.StringFixed(2),
		LineTotal:   i.LineTotal().StringFixed(2),
		AddedAt:     i.AddedAt,
		UpdatedAt:   i.UpdatedAt,
	})
}

// Cart is not safe for concurrent use; its session serializes access.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts qty units of p into the cart. Repeated adds of a product merge into one
// line whose quantity never exceeds the product's inventory.
func (c *Cart) Add(p models.Product, qty int, now time.Time) (Item, error) {
	if qty < 1 {
		return Item{}, ErrInvalidQuantity
	}
	if !p.InStock() {
		return Item{}, ErrOutOfStock
	}

	if _, i, ok := lo.FindIndexOf(c.items, func(it Item) bool { return it.ProductID == p.ID }); ok {
		c.items[i].Quantity = min(c.items[i].Quantity+qty, p.CurrentInventory)
		c.items[i].UnitRate = p.Rate
		c.items[i].UpdatedAt = now
		return c.items[i], nil
	}

	item := Item{
		ID:          uuid.NewString(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    min(qty, p.CurrentInventory),
		UnitRate:    p.Rate,
		AddedAt:     now,
		UpdatedAt:   now,
	}
	c.items = append(c.items, item)
	return item, nil
}

// Remove drops the line for productID
func (c *Cart) Remove(productID string) error {
	_, i, ok := lo.FindIndexOf(c.items, func(it Item) bool { return it.ProductID == productID })
	if !ok {
		return ErrItemNotFound
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of lines, shown as the header badge
func (c *Cart) Count() int {
	return len(c.items)
}

// Total returns the sum of all line totals
func (c *Cart) Total() decimal.Decimal {
	return lo.Reduce(c.items, func(total decimal.Decimal, it Item, _ int) decimal.Decimal {
		return total.Add(it.LineTotal())
	}, decimal.Zero)
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = nil
}

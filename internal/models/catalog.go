package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Category groups products within exactly one department
type Category struct {
	ID         string     `json:"id" db:"category_id"`
	Name       string     `json:"name" db:"name"`
	Department Department `json:"department" db:"department"`
}

// Product is an immutable requestable item
type Product struct {
	ID               string          `json:"id" db:"product_id"`
	Name             string          `json:"name" db:"name"`
	Description      string          `json:"description" db:"description"`
	TAT              string          `json:"tat" db:"tat"`
	Languages        []string        `json:"languages" db:"languages"`
	CurrentInventory int             `json:"current_inventory" db:"current_inventory"`
	Rate             decimal.Decimal `json:"rate" db:"rate"`
	CategoryID       string          `json:"category_id" db:"category_id"`
}

// InStock returns true if at least one unit can be requested
func (p *Product) InStock() bool {
	return p.CurrentInventory > 0
}

// MarshalJSON renders the rate as a fixed 2-decimal string, e.g. "2.50"
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		Rate string `json:"rate"`
	}{
		product: product(p),
		Rate:    p.Rate.StringFixed(2),
	})
}

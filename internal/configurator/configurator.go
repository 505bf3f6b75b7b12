// Package configurator holds the in-progress product request selection and derives its price.
//
// The selection chain department -> category -> product is enforced by Reduce: changing a
// parent clears every child and resets the quantity to 1 in the same transition.
package configurator

import (
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
	"github.com/shopspring/decimal"
)

// Configurator is the stateful wrapper over Reduce. It is not safe for concurrent use;
// the owning session serializes access.
type Configurator struct {
	catalog Catalog
	state   State
}

// New opens an empty configurator for a department
func New(cat Catalog, dept models.Department) *Configurator {
	return &Configurator{catalog: cat, state: Empty(dept)}
}

// Dispatch applies an action
func (c *Configurator) Dispatch(a Action) error {
	next, err := Reduce(c.catalog, c.state, a)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// State returns a copy of the current state
func (c *Configurator) State() State {
	return c.state
}

// Selection returns the current selection
func (c *Configurator) Selection() models.RequestSelection {
	return c.state.Selection
}

// Product returns the selected product, if any
func (c *Configurator) Product() (models.Product, bool) {
	if c.state.Product == nil {
		return models.Product{}, false
	}
	return *c.state.Product, true
}

func (c *Configurator) SetDepartment(dept models.Department) {
	_ = c.Dispatch(SetDepartment{Department: dept})
}

func (c *Configurator) SetCategory(ref string) error {
	return c.Dispatch(SetCategory{Category: ref})
}

func (c *Configurator) SetProduct(ref string) error {
	return c.Dispatch(SetProduct{Product: ref})
}

// SetQuantity stores n clamped into [1, inventory] and returns the stored value
func (c *Configurator) SetQuantity(n int) (int, error) {
	if err := c.Dispatch(SetQuantity{Quantity: n}); err != nil {
		return 0, err
	}
	return c.state.Selection.Quantity, nil
}

func (c *Configurator) SetRecipientMode(mode models.RecipientMode) error {
	return c.Dispatch(SetRecipientMode{Mode: mode})
}

func (c *Configurator) SetRecipientDetails(employeeName string, branch models.Branch) error {
	return c.Dispatch(SetRecipientDetails{EmployeeName: employeeName, Branch: branch})
}

// Summary prices the current selection: total = rate x quantity, rounded to 2 places
func (c *Configurator) Summary() (models.PricedSummary, error) {
	return Summarize(c.state)
}

// ValidateForSubmission reports whether the selection can be submitted
func (c *Configurator) ValidateForSubmission() Validation {
	return Validate(c.state)
}

// Reset discards the selection, keeping the department
func (c *Configurator) Reset() {
	c.state = Empty(c.state.Selection.Department)
}

// Summarize prices a state
func Summarize(s State) (models.PricedSummary, error) {
	if s.Product == nil {
		return models.PricedSummary{}, ErrNoProductSelected
	}
	qty := s.Selection.Quantity
	return models.PricedSummary{
		UnitRate: s.Product.Rate,
		Quantity: qty,
		Total:    s.Product.Rate.Mul(decimal.NewFromInt(int64(qty))).Round(2),
	}, nil
}

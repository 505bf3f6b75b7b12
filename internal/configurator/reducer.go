package configurator

import (
	"fmt"
	"strings"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

// Catalog is the read-only lookup selections are validated against.
type Catalog interface {
	Category(dept models.Department, ref string) (models.Category, error)
	Product(categoryID, ref string) (models.Product, error)
}

// State is the full configurator state. Product mirrors Selection.ProductID.
type State struct {
	Selection models.RequestSelection
	Product   *models.Product
}

// Empty returns a fresh selection for the department.
func Empty(dept models.Department) State {
	return State{
		Selection: models.RequestSelection{
			Department:    dept,
			Quantity:      1,
			RecipientMode: models.RecipientSelf,
		},
	}
}

// Action is a single field-set operation on the selection.
type Action interface {
	apply(cat Catalog, s State) (State, error)
}

// Reduce applies a to s and returns the next state. On error s is returned unchanged,
// so callers never observe a partially applied cascade.
func Reduce(cat Catalog, s State, a Action) (State, error) {
	next, err := a.apply(cat, s)
	if err != nil {
		return s, err
	}
	return next, nil
}

type SetDepartment struct {
	Department models.Department
}

func (a SetDepartment) apply(_ Catalog, s State) (State, error) {
	next := s
	next.Selection.Department = a.Department
	return resetCategory(next), nil
}

type SetCategory struct {
	Category string
}

func (a SetCategory) apply(cat Catalog, s State) (State, error) {
	c, err := cat.Category(s.Selection.Department, a.Category)
	if err != nil {
		return s, fmt.Errorf("%w: category %q is not offered by department %q: %v",
			ErrInvalidSelection, a.Category, s.Selection.Department, err)
	}
	next := resetCategory(s)
	next.Selection.CategoryID = c.ID
	return next, nil
}

type SetProduct struct {
	Product string
}

func (a SetProduct) apply(cat Catalog, s State) (State, error) {
	if s.Selection.CategoryID == "" {
		return s, fmt.Errorf("%w: product %q selected before a category", ErrInvalidSelection, a.Product)
	}
	p, err := cat.Product(s.Selection.CategoryID, a.Product)
	if err != nil {
		return s, fmt.Errorf("%w: product %q is not in category %q: %v",
			ErrInvalidSelection, a.Product, s.Selection.CategoryID, err)
	}
	next := resetProduct(s)
	next.Selection.ProductID = p.ID
	next.Product = &p
	return next, nil
}

type SetQuantity struct {
	Quantity int
}

func (a SetQuantity) apply(_ Catalog, s State) (State, error) {
	if s.Product == nil {
		return s, ErrNoProductSelected
	}
	next := s
	next.Selection.Quantity = Clamp(a.Quantity, s.Product.CurrentInventory)
	return next, nil
}

type SetRecipientMode struct {
	Mode models.RecipientMode
}

func (a SetRecipientMode) apply(_ Catalog, s State) (State, error) {
	if !a.Mode.IsValid() {
		return s, models.ErrUnknownRecipientMode
	}
	next := s
	next.Selection.RecipientMode = a.Mode
	if a.Mode == models.RecipientSelf {
		next.Selection.EmployeeName = ""
		next.Selection.Branch = ""
	}
	return next, nil
}

// SetRecipientDetails records who receives a request raised for another employee.
// It is ignored while the recipient mode is self.
type SetRecipientDetails struct {
	EmployeeName string
	Branch       models.Branch
}

func (a SetRecipientDetails) apply(_ Catalog, s State) (State, error) {
	if a.Branch != "" && !a.Branch.IsValid() {
		return s, models.ErrUnknownBranch
	}
	if s.Selection.RecipientMode != models.RecipientOther {
		return s, nil
	}
	next := s
	next.Selection.EmployeeName = strings.TrimSpace(a.EmployeeName)
	next.Selection.Branch = a.Branch
	return next, nil
}

func resetCategory(s State) State {
	s.Selection.CategoryID = ""
	return resetProduct(s)
}

func resetProduct(s State) State {
	s.Selection.ProductID = ""
	s.Selection.Quantity = 1
	s.Product = nil
	return s
}

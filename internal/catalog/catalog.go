// Package catalog provides the read-only department -> category -> product lookup tables.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidCatalog   = errors.New("invalid catalog")
)

// Catalog is an immutable snapshot of the lookup tables. It is safe for concurrent reads.
type Catalog struct {
	categories map[models.Department][]models.Category
	byCategory map[string][]models.Product
	byID       map[string]models.Product
}

// New builds a catalog, rejecting data that would break the selection chain
func New(categories []models.Category, products []models.Product) (*Catalog, error) {
	c := &Catalog{
		categories: make(map[models.Department][]models.Category),
		byCategory: make(map[string][]models.Product),
		byID:       make(map[string]models.Product),
	}

	owner := make(map[string]models.Department, len(categories))
	for _, cat := range categories {
		if !cat.Department.IsValid() {
			return nil, fmt.Errorf("%w: category %q: %w", ErrInvalidCatalog, cat.ID, models.ErrUnknownDepartment)
		}
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: category %q has no id", ErrInvalidCatalog, cat.Name)
		}
		if _, dup := owner[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, cat.ID)
		}
		owner[cat.ID] = cat.Department
		c.categories[cat.Department] = append(c.categories[cat.Department], cat)
	}

	for _, p := range products {
		if _, ok := owner[p.CategoryID]; !ok {
			return nil, fmt.Errorf("%w: product %q: %w %q", ErrInvalidCatalog, p.ID, ErrCategoryNotFound, p.CategoryID)
		}
		if _, dup := c.byID[p.ID]; dup || p.ID == "" {
			return nil, fmt.Errorf("%w: missing or duplicate product id %q", ErrInvalidCatalog, p.ID)
		}
		if p.CurrentInventory < 0 || p.Rate.IsNegative() {
			return nil, fmt.Errorf("%w: product %q has negative inventory or rate", ErrInvalidCatalog, p.ID)
		}
		p.Languages = append([]string(nil), p.Languages...)
		c.byID[p.ID] = p
		c.byCategory[p.CategoryID] = append(c.byCategory[p.CategoryID], p)
	}

	return c, nil
}

// Departments returns the dashboard cards for all departments
func (c *Catalog) Departments() []models.DepartmentSummary {
	return lo.Map(models.Departments, func(d models.Department, _ int) models.DepartmentSummary {
		return d.Summary()
	})
}

// Categories returns the categories of a department. A known department may have none.
func (c *Catalog) Categories(dept models.Department) ([]models.Category, error) {
	if !dept.IsValid() {
		return nil, models.ErrUnknownDepartment
	}
	out := make([]models.Category, len(c.categories[dept]))
	copy(out, c.categories[dept])
	return out, nil
}

// Category resolves a category of dept by id or display name
func (c *Catalog) Category(dept models.Department, ref string) (models.Category, error) {
	if !dept.IsValid() {
		return models.Category{}, models.ErrUnknownDepartment
	}
	ref = strings.TrimSpace(ref)
	cat, ok := lo.Find(c.categories[dept], func(cat models.Category) bool {
		return cat.ID == ref || strings.EqualFold(cat.Name, ref)
	})
	if !ok || ref == "" {
		return models.Category{}, ErrCategoryNotFound
	}
	return cat, nil
}

// Products returns the products of a category
func (c *Catalog) Products(categoryID string) ([]models.Product, error) {
	products, ok := c.byCategory[categoryID]
	if !ok && !c.hasCategory(categoryID) {
		return nil, ErrCategoryNotFound
	}
	return lo.Map(products, func(p models.Product, _ int) models.Product { return clone(p) }), nil
}

// Product resolves a product of a category by id or name
func (c *Catalog) Product(categoryID, ref string) (models.Product, error) {
	ref = strings.TrimSpace(ref)
	p, ok := lo.Find(c.byCategory[categoryID], func(p models.Product) bool {
		return p.ID == ref || strings.EqualFold(p.Name, ref)
	})
	if !ok || ref == "" {
		return models.Product{}, ErrProductNotFound
	}
	return clone(p), nil
}

// ProductByID resolves a product regardless of category
func (c *Catalog) ProductByID(id string) (models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return clone(p), nil
}

// All returns every category and product, e.g. for seeding a store
func (c *Catalog) All() ([]models.Category, []models.Product) {
	cats := lo.FlatMap(models.Departments, func(d models.Department, _ int) []models.Category {
		return c.categories[d]
	})
	products := lo.FlatMap(cats, func(cat models.Category, _ int) []models.Product {
		return lo.Map(c.byCategory[cat.ID], func(p models.Product, _ int) models.Product { return clone(p) })
	})
	return cats, products
}

func (c *Catalog) hasCategory(id string) bool {
	return lo.SomeBy(lo.Values(c.categories), func(cats []models.Category) bool {
		return lo.ContainsBy(cats, func(cat models.Category) bool { return cat.ID == id })
	})
}

func clone(p models.Product) models.Product {
	p.Languages = append([]string(nil), p.Languages...)
	return p
}

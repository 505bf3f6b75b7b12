package configurator_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/catalog"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/configurator"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

func newAdmin(t *testing.T) *configurator.Configurator {
	t.Helper()
	return configurator.New(catalog.Default(), models.DepartmentAdministration)
}

// selectVisitingCards picks the product with inventory 250 and rate 5.00
func selectVisitingCards(t *testing.T, c *configurator.Configurator) {
	t.Helper()
	require.NoError(t, c.SetCategory("collateral-admin"))
	require.NoError(t, c.SetProduct("Visiting Cards"))
}

func TestNew_EmptySelection(t *testing.T) {
	c := newAdmin(t)
	sel := c.Selection()

	assert.Equal(t, models.DepartmentAdministration, sel.Department)
	assert.Empty(t, sel.CategoryID)
	assert.Empty(t, sel.ProductID)
	assert.Equal(t, 1, sel.Quantity)
	assert.Equal(t, models.RecipientSelf, sel.RecipientMode)

	_, err := c.Summary()
	assert.ErrorIs(t, err, configurator.ErrNoProductSelected)
}

func TestSetDepartment_ClearsCategoryAndProduct(t *testing.T) {
	c := newAdmin(t)
	require.NoError(t, c.SetCategory("Collateral managed by Admin"))
	require.NoError(t, c.SetProduct("Envelopes"))
	_, err := c.SetQuantity(40)
	require.NoError(t, err)

	c.SetDepartment(models.DepartmentMarketing)

	sel := c.Selection()
	assert.Equal(t, models.DepartmentMarketing, sel.Department)
	assert.Empty(t, sel.CategoryID)
	assert.Empty(t, sel.ProductID)
	assert.Equal(t, 1, sel.Quantity)
	_, ok := c.Product()
	assert.False(t, ok)
}

func TestSetCategory(t *testing.T) {
	tests := []struct {
		name    string
		dept    models.Department
		ref     string
		wantID  string
		wantErr error
	}{
		{"by id", models.DepartmentAdministration, "office-stationery", "office-stationery", nil},
		{"by name", models.DepartmentAdministration, "Collateral managed by Admin", "collateral-admin", nil},
		{"name is case-insensitive", models.DepartmentMarketing, "event materials", "event-materials", nil},
		{"other department", models.DepartmentAdministration, "promotional-materials", "", configurator.ErrInvalidSelection},
		{"department without categories", models.DepartmentPMS, "office-stationery", "", configurator.ErrInvalidSelection},
		{"unknown", models.DepartmentMarketing, "nope", "", configurator.ErrInvalidSelection},
		{"empty", models.DepartmentMarketing, "", "", configurator.ErrInvalidSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := configurator.New(catalog.Default(), tt.dept)
			err := c.SetCategory(tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, c.Selection().CategoryID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, c.Selection().CategoryID)
		})
	}
}

func TestSetCategory_ResetsProduct(t *testing.T) {
	c := newAdmin(t)
	selectVisitingCards(t, c)
	_, err := c.SetQuantity(9)
	require.NoError(t, err)

	require.NoError(t, c.SetCategory("office-stationery"))

	sel := c.Selection()
	assert.Equal(t, "office-stationery", sel.CategoryID)
	assert.Empty(t, sel.ProductID)
	assert.Equal(t, 1, sel.Quantity)
}

func TestSetCategory_FailureLeavesStateUnchanged(t *testing.T) {
	c := newAdmin(t)
	selectVisitingCards(t, c)
	before := c.State()

	err := c.SetCategory("campaign-collaterals")
	require.ErrorIs(t, err, configurator.ErrInvalidSelection)
	assert.Equal(t, before.Selection, c.State().Selection)
}

func TestSetProduct(t *testing.T) {
	c := newAdmin(t)

	err := c.SetProduct("Envelopes")
	assert.ErrorIs(t, err, configurator.ErrInvalidSelection, "product before category")

	require.NoError(t, c.SetCategory("collateral-admin"))
	err = c.SetProduct("Notepads")
	assert.ErrorIs(t, err, configurator.ErrInvalidSelection, "product of another category")

	require.NoError(t, c.SetProduct("1"))
	p, ok := c.Product()
	require.True(t, ok)
	assert.Equal(t, "Envelopes", p.Name)
	assert.Equal(t, 1, c.Selection().Quantity)
}

func TestSetQuantity_Clamps(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{3, 3},
		{1, 1},
		{250, 250},
		{0, 1},
		{-5, 1},
		{10000, 250},
		{math.MaxInt, 250},
		{math.MinInt, 1},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.in), func(t *testing.T) {
			c := newAdmin(t)
			selectVisitingCards(t, c)

			got, err := c.SetQuantity(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, c.Selection().Quantity)
		})
	}
}

func TestSetQuantity_WithoutProduct(t *testing.T) {
	c := newAdmin(t)
	_, err := c.SetQuantity(3)
	assert.ErrorIs(t, err, configurator.ErrNoProductSelected)
	assert.Equal(t, 1, c.Selection().Quantity)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 42 ", 42},
		{"-7", -7},
		{"", 1},
		{"abc", 1},
		{"2.5", 1},
		{"1e3", 1},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, configurator.ParseQuantity(tt.raw))
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		category string
		product  string
		qty      int
		want     string
	}{
		{"visiting cards", "collateral-admin", "Visiting Cards", 3, "15.00"},
		{"envelopes full stock", "collateral-admin", "Envelopes", 500, "1250.00"},
		{"letterheads", "business-cards-letterheads", "Letterheads", 3, "5.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newAdmin(t)
			require.NoError(t, c.SetCategory(tt.category))
			require.NoError(t, c.SetProduct(tt.product))
			_, err := c.SetQuantity(tt.qty)
			require.NoError(t, err)

			s, err := c.Summary()
			require.NoError(t, err)
			assert.Equal(t, tt.qty, s.Quantity)
			assert.Equal(t, tt.want, s.Total.StringFixed(2))
		})
	}
}

func TestSummary_JSON(t *testing.T) {
	c := newAdmin(t)
	selectVisitingCards(t, c)
	_, err := c.SetQuantity(3)
	require.NoError(t, err)

	s, err := c.Summary()
	require.NoError(t, err)
	b, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"unit_rate":"5.00","quantity":3,"total":"15.00"}`, string(b))
}

func TestRecipientMode(t *testing.T) {
	c := newAdmin(t)

	// Details are ignored while the request is for self
	require.NoError(t, c.SetRecipientDetails("Asha", models.BranchMumbaiBKC))
	assert.Empty(t, c.Selection().EmployeeName)

	require.NoError(t, c.SetRecipientMode(models.RecipientOther))
	require.NoError(t, c.SetRecipientDetails("  Asha Rao ", models.BranchDelhiCP))
	assert.Equal(t, "Asha Rao", c.Selection().EmployeeName)
	assert.Equal(t, models.BranchDelhiCP, c.Selection().Branch)

	err := c.SetRecipientDetails("Asha", models.Branch("pune"))
	assert.ErrorIs(t, err, models.ErrUnknownBranch)
	assert.Equal(t, models.BranchDelhiCP, c.Selection().Branch)

	require.NoError(t, c.SetRecipientMode(models.RecipientSelf))
	assert.Empty(t, c.Selection().EmployeeName)
	assert.Empty(t, c.Selection().Branch)

	err = c.SetRecipientMode(models.RecipientMode("team"))
	assert.ErrorIs(t, err, models.ErrUnknownRecipientMode)
}

func TestValidateForSubmission(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, c *configurator.Configurator)
		reasons []configurator.Reason
		wantErr error
	}{
		{
			name:    "no product",
			setup:   func(t *testing.T, c *configurator.Configurator) {},
			reasons: []configurator.Reason{configurator.ReasonProductRequired},
			wantErr: configurator.ErrNoProductSelected,
		},
		{
			name:  "self",
			setup: selectVisitingCards,
		},
		{
			name: "other without name",
			setup: func(t *testing.T, c *configurator.Configurator) {
				selectVisitingCards(t, c)
				require.NoError(t, c.SetRecipientMode(models.RecipientOther))
				require.NoError(t, c.SetRecipientDetails("", models.BranchMumbaiBKC))
			},
			reasons: []configurator.Reason{configurator.ReasonEmployeeNameRequired},
			wantErr: configurator.ErrIncompleteRecipientInfo,
		},
		{
			name: "other without branch",
			setup: func(t *testing.T, c *configurator.Configurator) {
				selectVisitingCards(t, c)
				require.NoError(t, c.SetRecipientMode(models.RecipientOther))
				require.NoError(t, c.SetRecipientDetails("Asha", ""))
			},
			reasons: []configurator.Reason{configurator.ReasonBranchRequired},
			wantErr: configurator.ErrIncompleteRecipientInfo,
		},
		{
			name: "other complete",
			setup: func(t *testing.T, c *configurator.Configurator) {
				selectVisitingCards(t, c)
				require.NoError(t, c.SetRecipientMode(models.RecipientOther))
				require.NoError(t, c.SetRecipientDetails("Asha", models.BranchBangaloreMG))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newAdmin(t)
			tt.setup(t, c)

			v := c.ValidateForSubmission()
			if tt.wantErr == nil {
				assert.True(t, v.OK)
				assert.Empty(t, v.Reasons)
				assert.NoError(t, v.Err())
				return
			}
			assert.False(t, v.OK)
			assert.Equal(t, tt.reasons, v.Reasons)
			assert.ErrorIs(t, v.Err(), tt.wantErr)
		})
	}
}

func TestValidate_OutOfStock(t *testing.T) {
	cat, err := catalog.New(
		[]models.Category{{ID: "c", Name: "C", Department: models.DepartmentMarketing}},
		[]models.Product{{ID: "p", Name: "Sold Out", CategoryID: "c"}},
	)
	require.NoError(t, err)

	c := configurator.New(cat, models.DepartmentMarketing)
	require.NoError(t, c.SetCategory("c"))
	require.NoError(t, c.SetProduct("p"))

	got, err := c.SetQuantity(5)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	v := c.ValidateForSubmission()
	assert.Equal(t, []configurator.Reason{configurator.ReasonQuantityOutOfRange}, v.Reasons)
	assert.True(t, errors.Is(v.Err(), configurator.ErrQuantityOutOfRange))
}

func TestReduce_IsPure(t *testing.T) {
	cat := catalog.Default()
	s0 := configurator.Empty(models.DepartmentAdministration)

	s1, err := configurator.Reduce(cat, s0, configurator.SetCategory{Category: "collateral-admin"})
	require.NoError(t, err)
	s2, err := configurator.Reduce(cat, s1, configurator.SetProduct{Product: "Envelopes"})
	require.NoError(t, err)

	assert.Empty(t, s0.Selection.CategoryID)
	assert.Empty(t, s1.Selection.ProductID)
	assert.Equal(t, "1", s2.Selection.ProductID)

	s3, err := configurator.Reduce(cat, s2, configurator.SetQuantity{Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, s2.Selection.Quantity)
	assert.Equal(t, 7, s3.Selection.Quantity)

	s4, err := configurator.Reduce(cat, s3, configurator.SetCategory{Category: "nope"})
	require.Error(t, err)
	assert.Equal(t, s3, s4)
}

func TestReset(t *testing.T) {
	c := newAdmin(t)
	selectVisitingCards(t, c)
	c.Reset()

	assert.Equal(t, configurator.Empty(models.DepartmentAdministration), c.State())
}

func TestValidation_ReasonHelpers(t *testing.T) {
	v := configurator.Validation{Reasons: []configurator.Reason{
		configurator.ReasonQuantityOutOfRange,
		configurator.ReasonEmployeeNameRequired,
		configurator.ReasonBranchRequired,
	}}

	assert.True(t, v.Has(configurator.ReasonBranchRequired))
	assert.False(t, v.Has(configurator.ReasonProductRequired))
	assert.Equal(t, []string{"quantity_out_of_range", "employee_name_required", "branch_required"}, v.Strings())

	err := v.Err()
	assert.ErrorIs(t, err, configurator.ErrQuantityOutOfRange)
	assert.ErrorIs(t, err, configurator.ErrIncompleteRecipientInfo)
	assert.Contains(t, err.Error(), "employee_name_required, branch_required")
	assert.NotErrorIs(t, err, configurator.ErrNoProductSelected)
}

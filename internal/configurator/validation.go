package configurator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

// Reason names a field that blocks submission
type Reason string

const (
	ReasonProductRequired      Reason = "product_required"
	ReasonQuantityOutOfRange   Reason = "quantity_out_of_range"
	ReasonEmployeeNameRequired Reason = "employee_name_required"
	ReasonBranchRequired       Reason = "branch_required"
)

// Validation is the result of ValidateForSubmission
type Validation struct {
	OK      bool     `json:"ok"`
	Reasons []Reason `json:"reasons,omitempty"`
}

// Has reports whether r is among the reasons
func (v Validation) Has(r Reason) bool {
	return lo.Contains(v.Reasons, r)
}

// Strings returns the reasons as plain strings
func (v Validation) Strings() []string {
	return lo.Map(v.Reasons, func(r Reason, _ int) string { return string(r) })
}

// Err converts a failed validation into an error matching the sentinel errors
func (v Validation) Err() error {
	if v.OK {
		return nil
	}
	var errs []error
	if v.Has(ReasonProductRequired) {
		errs = append(errs, ErrNoProductSelected)
	}
	if v.Has(ReasonQuantityOutOfRange) {
		errs = append(errs, ErrQuantityOutOfRange)
	}
	if v.Has(ReasonEmployeeNameRequired) || v.Has(ReasonBranchRequired) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrIncompleteRecipientInfo, strings.Join(v.recipientReasons(), ", ")))
	}
	return errors.Join(errs...)
}

func (v Validation) recipientReasons() []string {
	return lo.FilterMap(v.Reasons, func(r Reason, _ int) (string, bool) {
		return string(r), r == ReasonEmployeeNameRequired || r == ReasonBranchRequired
	})
}

// Validate checks a state for submission
func Validate(s State) Validation {
	var reasons []Reason
	if s.Product == nil {
		reasons = append(reasons, ReasonProductRequired)
	} else if q := s.Selection.Quantity; q < 1 || q > s.Product.CurrentInventory {
		reasons = append(reasons, ReasonQuantityOutOfRange)
	}
	if s.Selection.RecipientMode == models.RecipientOther {
		if strings.TrimSpace(s.Selection.EmployeeName) == "" {
			reasons = append(reasons, ReasonEmployeeNameRequired)
		}
		if !s.Selection.Branch.IsValid() {
			reasons = append(reasons, ReasonBranchRequired)
		}
	}
	return Validation{OK: len(reasons) == 0, Reasons: reasons}
}

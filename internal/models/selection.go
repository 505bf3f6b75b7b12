package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// RecipientMode says who a request is raised for
type RecipientMode string

const (
	RecipientSelf  RecipientMode = "self"
	RecipientOther RecipientMode = "other"
)

// IsValid checks if the recipient mode is valid
func (m RecipientMode) IsValid() bool {
	return m == RecipientSelf || m == RecipientOther
}

// ParseRecipientMode accepts "self", "other" and the form value "others"
func ParseRecipientMode(s string) (RecipientMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "self":
		return RecipientSelf, nil
	case "other", "others":
		return RecipientOther, nil
	default:
		return "", ErrUnknownRecipientMode
	}
}

// Branch is the delivery address of a request raised for another employee
type Branch string

const (
	BranchMumbaiBKC   Branch = "mumbai-bkc"
	BranchDelhiCP     Branch = "delhi-cp"
	BranchBangaloreMG Branch = "bangalore-mg"
)

var branchLabels = map[Branch]string{
	BranchMumbaiBKC:   "Mumbai - BKC",
	BranchDelhiCP:     "Delhi - CP",
	BranchBangaloreMG: "Bangalore - MG Road",
}

// Branches lists every selectable branch
var Branches = []Branch{BranchMumbaiBKC, BranchDelhiCP, BranchBangaloreMG}

// IsValid checks if the branch is one of the known branches
func (b Branch) IsValid() bool {
	_, ok := branchLabels[b]
	return ok
}

// Label returns the display label of the branch
func (b Branch) Label() string {
	return branchLabels[b]
}

// ParseBranch resolves a branch value; empty input means no branch chosen
func ParseBranch(s string) (Branch, error) {
	b := Branch(strings.ToLower(strings.TrimSpace(s)))
	if b == "" {
		return "", nil
	}
	if !b.IsValid() {
		return "", ErrUnknownBranch
	}
	return b, nil
}

// RequestSelection is the in-progress choice held by the request configurator
type RequestSelection struct {
	Department    Department    `json:"department"`
	CategoryID    string        `json:"category_id"`
	ProductID     string        `json:"product_id"`
	Quantity      int           `json:"quantity"`
	RecipientMode RecipientMode `json:"recipient_mode"`
	EmployeeName  string        `json:"employee_name,omitempty"`
	Branch        Branch        `json:"branch,omitempty"`
}

// HasProduct returns true if a product is selected
func (s RequestSelection) HasProduct() bool {
	return s.ProductID != ""
}

// PricedSummary is the derived cost of a selection; it is never stored
type PricedSummary struct {
	UnitRate decimal.Decimal
	Quantity int
	Total    decimal.Decimal
}

// MarshalJSON renders money with currency semantics, e.g. "1250.00"
func (p PricedSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UnitRate string `json:"unit_rate"`
		Quantity int    `json:"quantity"`
		Total    string `json:"total"`
	}{
		UnitRate: p.UnitRate.StringFixed(2),
		Quantity: p.Quantity,
		Total:    p.Total.StringFixed(2),
	})
}

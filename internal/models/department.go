package models

import (
	"errors"
	"strings"
)

var (
	ErrUnknownDepartment    = errors.New("unknown department")
	ErrUnknownBranch        = errors.New("unknown branch")
	ErrUnknownRecipientMode = errors.New("unknown recipient mode")
)

// Department identifies an organizational unit that scopes requestable categories
type Department string

const (
	DepartmentAdministration    Department = "administration"
	DepartmentMarketing         Department = "marketing"
	DepartmentInvestorEducation Department = "investor-education"
	DepartmentPMS               Department = "pms"
	DepartmentRealEstate        Department = "real-estate"
)

// Departments lists every department in dashboard order
var Departments = []Department{
	DepartmentAdministration,
	DepartmentMarketing,
	DepartmentInvestorEducation,
	DepartmentPMS,
	DepartmentRealEstate,
}

type departmentInfo struct {
	name        string
	description string
}

var departmentDetails = map[Department]departmentInfo{
	DepartmentAdministration:    {"Administration", "Office supplies & administrative materials"},
	DepartmentMarketing:         {"Marketing", "Promotional materials & campaigns"},
	DepartmentInvestorEducation: {"Investor Education", "Educational resources & documentation"},
	DepartmentPMS:               {"PMS", "Portfolio management services"},
	DepartmentRealEstate:        {"Real Estate", "Property & facility management"},
}

// IsValid checks if the department is one of the known departments
func (d Department) IsValid() bool {
	_, ok := departmentDetails[d]
	return ok
}

// DisplayName returns the human readable department name
func (d Department) DisplayName() string {
	return departmentDetails[d].name
}

// Description returns the dashboard blurb for the department
func (d Department) Description() string {
	return departmentDetails[d].description
}

// ParseDepartment normalizes user input ("Real Estate", "real-estate", "REAL_ESTATE")
// and resolves it against the closed set of departments.
func ParseDepartment(s string) (Department, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	d := Department(key)
	if !d.IsValid() {
		return "", ErrUnknownDepartment
	}
	return d, nil
}

// DepartmentSummary is the dashboard card for a department
type DepartmentSummary struct {
	ID          Department `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// Summary returns the dashboard card for the department
func (d Department) Summary() DepartmentSummary {
	return DepartmentSummary{ID: d, Name: d.DisplayName(), Description: d.Description()}
}

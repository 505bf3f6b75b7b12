package models

import "encoding/json"

// LoginRequest represents a login form submission
type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name,omitempty"`
}

// LoginResponse carries the session token and user
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      User   `json:"user"`
}

// SetDepartmentRequest moves the open request to another department
type SetDepartmentRequest struct {
	Department string `json:"department" binding:"required"`
}

// SetCategoryRequest selects a category by id or name
type SetCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// SetProductRequest selects a product by id or name
type SetProductRequest struct {
	Product string `json:"product" binding:"required"`
}

// SetQuantityRequest carries the raw quantity input; numbers and strings are accepted
type SetQuantityRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

// SetRecipientRequest sets the recipient mode and, for "other", the recipient details.
// Omitted details keep their current values; an empty string clears them.
type SetRecipientRequest struct {
	Mode         string  `json:"mode" binding:"required,recipient_mode"`
	EmployeeName *string `json:"employee_name"`
	Branch       *string `json:"branch" binding:"omitempty,branch"`
}

// RequestState is the configurator view returned to the form
type RequestState struct {
	Selection RequestSelection `json:"selection"`
	Category  *Category        `json:"category,omitempty"`
	Product   *Product         `json:"product,omitempty"`
	Summary   *PricedSummary   `json:"summary,omitempty"`
}

// DashboardResponse is the landing page payload
type DashboardResponse struct {
	User        User                `json:"user"`
	Departments []DepartmentSummary `json:"departments"`
	Requests    []RequestRecord     `json:"requests"`
	CartCount   int                 `json:"cart_count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists the reasons a submission was rejected
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Reasons []string `json:"reasons"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

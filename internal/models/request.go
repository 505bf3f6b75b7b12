package models

import "time"

// RequestStatus is the approval state of a submitted request
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "Pending"
	RequestStatusApproved   RequestStatus = "Approved"
	RequestStatusInProgress RequestStatus = "In Progress"
	RequestStatusCompleted  RequestStatus = "Completed"
	RequestStatusRejected   RequestStatus = "Rejected"
)

// IsValid checks if the request status is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusInProgress, RequestStatusCompleted, RequestStatusRejected:
		return true
	default:
		return false
	}
}

// RequestRecord is a submitted request as shown in the dashboard summary grid
type RequestRecord struct {
	OrderID       string           `json:"order_id"`
	RequestType   string           `json:"request_type"`
	RequestDate   string           `json:"request_date"` // YYYY-MM-DD
	CurrentStatus RequestStatus    `json:"current_status"`
	Selection     RequestSelection `json:"selection"`
	Summary       PricedSummary    `json:"summary"`
	SubmittedAt   time.Time        `json:"submitted_at"`
}

// User is the authenticated identity used for display
type User struct {
	Name            string `json:"name"`
	LoginID         string `json:"login_id"`
	IsAuthenticated bool   `json:"is_authenticated"`
}

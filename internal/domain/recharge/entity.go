package recharge

import (
	"time"

	"github.com/campuscard/mealcard-api/internal/pkg/money"
)

// Status of a recharge request. PENDING transitions exactly once to
// APPROVED or REJECTED; both are terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Request is a credit request that needs manager review before the
// card balance is touched.
type Request struct {
	ID          string       `json:"id"`
	CardID      string       `json:"card_id"`
	Amount      money.Amount `json:"amount"`
	Status      Status       `json:"status"`
	RequestedBy string       `json:"requested_by"`
	RequestedAt time.Time    `json:"requested_at"`
	ReviewedBy  string       `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time   `json:"reviewed_at,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// PendingRequest is a pending request joined with display fields
// for the manager queue.
type PendingRequest struct {
	Request
	StudentName string `json:"student_name"`
	CardNumber  string `json:"card_number"`
}

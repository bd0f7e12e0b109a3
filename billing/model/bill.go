package model

import (
	"time"
)

type Bill struct {
	ID         int32      `json:"id"`
	DealerID   string     `json:"dealer_id"`
	DealerName *string    `json:"dealer_name,omitempty"`
	BranchID   string     `json:"branch_id"`
	BranchName *string    `json:"branch_name,omitempty"`
	BillNumber string     `json:"bill_number"`
	BillDate   time.Time  `json:"bill_date"`
	Amount     Money      `json:"amount"`
	Paid       Money      `json:"paid"`
	Pending    Money      `json:"pending"`
	Status     BillStatus `json:"status"`
	BillImage  *string    `json:"bill_image,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type BillStatus string

const (
	BillStatusPending   BillStatus = "Pending"
	BillStatusCompleted BillStatus = "Completed"
)

func (s BillStatus) Valid() bool {
	return s == BillStatusPending || s == BillStatusCompleted
}

// BillForm carries the bill fields exactly as they were submitted.
type BillForm struct {
	Dealer     string `form:"dealer" validate:"required"`
	Branch     string `form:"branch" validate:"required"`
	BillNumber string `form:"billNumber" validate:"required"`
	BillDate   string `form:"billDate" validate:"required"`
	Amount     string `form:"amount" validate:"required"`
}

// BillUpdateForm is a BillForm plus the fields only an update may carry.
type BillUpdateForm struct {
	BillForm

	// Paid is nil when the field was not submitted.
	Paid        *string
	RemoveImage bool
}

// BillFilter narrows list and export queries. Zero values mean "any".
type BillFilter struct {
	Status   BillStatus
	DealerID string
	BranchID string
	Search   string
	From     *time.Time
	To       *time.Time
}

package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"branch-loans-api/internal/domain/apperr"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
	StatusOverdue Status = "overdue"
)

var statuses = map[Status]struct{}{
	StatusPending: {},
	StatusPaid:    {},
	StatusFailed:  {},
	StatusOverdue: {},
}

func (s Status) Valid() bool {
	_, ok := statuses[s]
	return ok
}

type Payment struct {
	ID                   uuid.UUID        `gorm:"type:char(36);primaryKey;column:id" json:"id"`
	LoanID               uuid.UUID        `gorm:"type:char(36);not null;index:idx_payments_loan" json:"loan_id"`
	Amount               decimal.Decimal  `gorm:"type:decimal(12,2);not null;check:chk_payment_amount_positive,amount > 0" json:"amount"`
	Status               Status           `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	DueDate              time.Time        `gorm:"not null" json:"due_date"`
	PaidAmount           *decimal.Decimal `gorm:"type:decimal(12,2)" json:"paid_amount,omitempty"`
	PaidAt               *time.Time       `json:"paid_at,omitempty"`
	TransactionReference *string          `gorm:"size:255;uniqueIndex:ux_payments_txref" json:"transaction_reference,omitempty"`
	Notes                *string          `gorm:"size:512" json:"notes,omitempty"`
	CreatedAt            time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

// Validate enforces the payment invariants, most importantly that the paid
// fields and the paid status move together: paid_amount and paid_at are both
// set if and only if status is paid.
func (p *Payment) Validate() error {
	if p.LoanID == uuid.Nil {
		return apperr.Validation("loan_id", "is required")
	}
	if !p.Amount.IsPositive() {
		return apperr.Validation("amount", "must be greater than 0")
	}
	if !p.Status.Valid() {
		return apperr.Validation("status", "is not a known payment status")
	}
	if p.DueDate.IsZero() {
		return apperr.Validation("due_date", "is required")
	}
	if p.Status == StatusPaid {
		if p.PaidAmount == nil || p.PaidAt == nil {
			return apperr.Validation("status", "paid requires paid_amount and paid_at")
		}
	} else if p.PaidAmount != nil || p.PaidAt != nil {
		return apperr.Validation("paid_amount", "only allowed when status is paid")
	}
	return nil
}

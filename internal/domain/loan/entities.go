package loan

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"branch-loans-api/internal/domain/apperr"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDisbursed Status = "disbursed"
	StatusRepaid    Status = "repaid"
	StatusDefaulted Status = "defaulted"
)

// transitions is the exhaustive table of the loan state machine. Terminal
// states (rejected, repaid, defaulted) have no outgoing edges.
var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusDisbursed},
	StatusDisbursed: {StatusRepaid, StatusDefaulted},
	StatusRejected:  {},
	StatusRepaid:    {},
	StatusDefaulted: {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// MaxAmount is the principal ceiling; amounts must be in (0, MaxAmount].
var MaxAmount = decimal.NewFromInt(50000)

type Loan struct {
	ID               uuid.UUID       `gorm:"type:char(36);primaryKey;column:id" json:"id"`
	BorrowerID       uuid.UUID       `gorm:"type:char(36);not null;index:idx_loans_borrower" json:"borrower_id"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null;check:chk_amount_range,amount > 0 AND amount <= 50000" json:"amount"`
	Currency         string          `gorm:"type:char(3);not null;default:USD" json:"currency"`
	Status           Status          `gorm:"type:varchar(16);not null;default:pending;index:idx_loans_status" json:"status"`
	TermMonths       int             `gorm:"not null;check:chk_term_positive,term_months > 0" json:"term_months"`
	InterestRateAPR  decimal.Decimal `gorm:"type:decimal(5,2);not null;check:chk_interest_non_negative,interest_rate_apr >= 0" json:"interest_rate_apr"`
	Purpose          *string         `gorm:"size:512" json:"purpose,omitempty"`
	DisbursementDate *time.Time      `json:"disbursement_date,omitempty"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Validate enforces the write-time invariants. The same constraints exist as
// storage check constraints; this runs first so no violating write is attempted.
func (l *Loan) Validate() error {
	if l.BorrowerID == uuid.Nil {
		return apperr.Validation("borrower_id", "is required")
	}
	if !l.Amount.IsPositive() {
		return apperr.Validation("amount", "must be greater than 0")
	}
	if l.Amount.GreaterThan(MaxAmount) {
		return apperr.Validation("amount", "must not exceed 50000")
	}
	if len(l.Currency) != 3 {
		return apperr.Validation("currency", "must be a 3-letter code")
	}
	if l.TermMonths <= 0 {
		return apperr.Validation("term_months", "must be greater than 0")
	}
	if l.InterestRateAPR.IsNegative() {
		return apperr.Validation("interest_rate_apr", "must not be negative")
	}
	if !l.Status.Valid() {
		return apperr.Validation("status", "is not a known loan status")
	}
	return nil
}

// MonthlyPayment returns the amortized monthly installment, rounded to cents.
// Zero-rate loans divide the principal evenly over the term.
func (l *Loan) MonthlyPayment() (decimal.Decimal, error) {
	if l.TermMonths <= 0 {
		return decimal.Zero, apperr.Validation("term_months", "must be greater than 0")
	}
	if l.InterestRateAPR.IsZero() {
		return l.Amount.DivRound(decimal.NewFromInt(int64(l.TermMonths)), 2), nil
	}
	amount, _ := l.Amount.Float64()
	apr, _ := l.InterestRateAPR.Float64()
	m := apr / 100 / 12
	pow := math.Pow(1+m, float64(l.TermMonths))
	monthly := amount * m * pow / (pow - 1)
	return decimal.NewFromFloat(monthly).Round(2), nil
}

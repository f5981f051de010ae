package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "branch-loans-api/internal/domain/loan"
)

type CreateLoanInput struct {
	BorrowerID      uuid.UUID
	Amount          decimal.Decimal
	Currency        string
	TermMonths      int
	InterestRateAPR decimal.Decimal
	Purpose         string
}

type LoanDTO struct {
	ID               uuid.UUID       `json:"id"`
	BorrowerID       uuid.UUID       `json:"borrower_id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	TermMonths       int             `json:"term_months"`
	InterestRateAPR  decimal.Decimal `json:"interest_rate_apr"`
	Purpose          *string         `json:"purpose,omitempty"`
	DisbursementDate *time.Time      `json:"disbursement_date,omitempty"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type ScheduleDTO struct {
	LoanID         uuid.UUID       `json:"loan_id"`
	Currency       string          `json:"currency"`
	TermMonths     int             `json:"term_months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayable   decimal.Decimal `json:"total_payable"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		ID:               l.ID,
		BorrowerID:       l.BorrowerID,
		Amount:           l.Amount,
		Currency:         l.Currency,
		Status:           string(l.Status),
		TermMonths:       l.TermMonths,
		InterestRateAPR:  l.InterestRateAPR,
		Purpose:          l.Purpose,
		DisbursementDate: l.DisbursementDate,
		DueDate:          l.DueDate,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

package loan

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stats is the read-only aggregate over the loans table. Sums and averages
// are coalesced to zero when no rows exist.
type Stats struct {
	TotalLoans  int64            `json:"total_loans"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	AvgAmount   decimal.Decimal  `json:"avg_amount"`
	ByStatus    map[string]int64 `json:"by_status"`
	ByCurrency  map[string]int64 `json:"by_currency"`
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uuid.UUID) (*Loan, error)
	// GetByIDForUpdate locks the row for the duration of the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	Aggregate(ctx context.Context) (*Stats, error)
}

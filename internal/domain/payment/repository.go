package payment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListByLoanID(ctx context.Context, loanID uuid.UUID) ([]Payment, error)
	Save(ctx context.Context, p *Payment) error
	// DeleteByLoanID removes every payment owned by the loan; used by the
	// explicit cascade when a loan is deleted.
	DeleteByLoanID(ctx context.Context, loanID uuid.UUID) error
}

package uow

import (
	"context"

	"github.com/google/uuid"

	"branch-loans-api/internal/domain/borrower"
	"branch-loans-api/internal/domain/loan"
	"branch-loans-api/internal/domain/payment"
)

type Repos struct {
	Borrowers borrower.Repository
	Loans     loan.Repository
	Payments  payment.Repository
}

// UnitOfWork scopes repository access to one transaction: fn's writes commit
// together on nil, roll back together on error, and the underlying session is
// released on every exit path.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID uuid.UUID, fn func(r Repos, l *loan.Loan) error) error
}

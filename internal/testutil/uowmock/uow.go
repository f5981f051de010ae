package uowmock

import (
	"context"

	"github.com/google/uuid"

	"branch-loans-api/internal/domain/loan"
	"branch-loans-api/internal/domain/uow"
)

// UoW satisfies uow.UnitOfWork without a real transaction: fn runs directly
// against the provided Repos. Good enough for usecase tests, where the
// transactional guarantees themselves are covered by the gorm UoW tests.
type UoW struct {
	Repos          uow.Repos
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID uuid.UUID, fn func(r uow.Repos, l *loan.Loan) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID uuid.UUID, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	l, err := m.Repos.Loans.GetByIDForUpdate(ctx, loanID)
	if err != nil {
		return err
	}
	return fn(m.Repos, l)
}

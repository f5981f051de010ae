package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"branch-loans-api/internal/domain/apperr"
	"branch-loans-api/internal/domain/loan"
	"branch-loans-api/internal/domain/uow"
)

// GormUoW runs callbacks inside a gorm transaction. gorm commits on nil,
// rolls back on error or panic, and releases the session on every exit path.
// Each transaction carries an acquisition deadline so a starved pool fails
// fast with ErrPoolTimeout instead of queueing indefinitely.
type GormUoW struct {
	db        *gorm.DB
	txTimeout time.Duration
}

func NewGormUoW(db *gorm.DB, txTimeout time.Duration) *GormUoW {
	return &GormUoW{db: db, txTimeout: txTimeout}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	ctx, cancel := context.WithTimeout(ctx, u.txTimeout)
	defer cancel()

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
	return translateTimeout(ctx, err)
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID uuid.UUID, fn func(r uow.Repos, l *loan.Loan) error) error {
	ctx, cancel := context.WithTimeout(ctx, u.txTimeout)
	defer cancel()

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the loan row up-front to prevent races
		l, err := r.Loans.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
	return translateTimeout(ctx, err)
}

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Borrowers: &BorrowerRepository{db: tx},
		Loans:     &LoanRepository{db: tx},
		Payments:  &PaymentRepository{db: tx},
	}
}

func translateTimeout(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperr.ErrPoolTimeout
	}
	return err
}

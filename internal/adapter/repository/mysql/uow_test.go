package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"branch-loans-api/internal/domain/apperr"
	"branch-loans-api/internal/domain/uow"
)

const testTxTimeout = 5 * time.Second

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db, testTxTimeout)
	loanRepo := NewLoanRepository(db)

	b := makeBorrower("commit@example.com")
	l := makeLoan(b.ID)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Borrowers.Create(ctx, b); err != nil {
			return err
		}
		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	if _, err := loanRepo.GetByID(ctx, l.ID); err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db, testTxTimeout)
	loanRepo := NewLoanRepository(db)

	l := makeLoan(uuid.New())
	boom := errors.New("boom")

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	// Nothing committed: no partial writes are visible outside the tx
	if _, err := loanRepo.GetByID(ctx, l.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("loan visible after rollback: %v", err)
	}
}

func TestGormUoW_DeadlineBecomesPoolTimeout(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db, time.Nanosecond)

	err := guow.WithinTx(context.Background(), func(r uow.Repos) error { return nil })
	if !errors.Is(err, apperr.ErrPoolTimeout) {
		t.Fatalf("want ErrPoolTimeout, got %v", err)
	}
}

// Deleting a loan removes its payments in the same transaction: no orphans,
// and a failure leaves everything in place.
func TestGormUoW_LoanDeleteCascade(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db, testTxTimeout)
	loanRepo := NewLoanRepository(db)
	paymentRepo := NewPaymentRepository(db)

	l := makeLoan(uuid.New())
	if err := loanRepo.Create(ctx, l); err != nil {
		t.Fatalf("Create loan: %v", err)
	}
	p := makePayment(l.ID, time.Now().UTC())
	if err := paymentRepo.Create(ctx, p); err != nil {
		t.Fatalf("Create payment: %v", err)
	}

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Payments.DeleteByLoanID(ctx, l.ID); err != nil {
			return err
		}
		return r.Loans.Delete(ctx, l.ID)
	})
	if err != nil {
		t.Fatalf("cascade delete: %v", err)
	}

	if _, err := loanRepo.GetByID(ctx, l.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("loan survived: %v", err)
	}
	got, err := paymentRepo.ListByLoanID(ctx, l.ID)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("orphan payments left behind: %d", len(got))
	}
}

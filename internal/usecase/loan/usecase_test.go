package loan

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"branch-loans-api/internal/domain/apperr"
	borrowerDomain "branch-loans-api/internal/domain/borrower"
	domain "branch-loans-api/internal/domain/loan"
	"branch-loans-api/internal/domain/uow"
	"branch-loans-api/internal/testutil/borrowermock"
	"branch-loans-api/internal/testutil/loanmock"
	"branch-loans-api/internal/testutil/paymentmock"
	"branch-loans-api/internal/testutil/uowmock"
)

func newTestUsecase(loans *loanmock.Repo, borrowers *borrowermock.Repo, payments *paymentmock.Repo) *Usecase {
	if loans == nil {
		loans = &loanmock.Repo{}
	}
	if borrowers == nil {
		borrowers = &borrowermock.Repo{}
	}
	if payments == nil {
		payments = &paymentmock.Repo{}
	}
	tx := &uowmock.UoW{Repos: uow.Repos{Borrowers: borrowers, Loans: loans, Payments: payments}}
	return NewUsecase(loans, tx)
}

func existingBorrower(id uuid.UUID) *borrowermock.Repo {
	return &borrowermock.Repo{
		GetByIDFn: func(ctx context.Context, got uuid.UUID) (*borrowerDomain.Borrower, error) {
			if got != id {
				return nil, apperr.ErrNotFound
			}
			return &borrowerDomain.Borrower{ID: id, Name: "B", Email: "b@example.com"}, nil
		},
	}
}

func TestCreate_Success_AppliesDefaults(t *testing.T) {
	borrowerID := uuid.New()
	var created *domain.Loan
	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			created = l
			return nil
		},
	}
	uc := newTestUsecase(loans, existingBorrower(borrowerID), nil)

	dto, err := uc.Create(context.Background(), CreateLoanInput{
		BorrowerID: borrowerID,
		Amount:     decimal.NewFromInt(5000),
		Currency:   "usd",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created == nil {
		t.Fatal("repo Create not called")
	}
	if dto.Status != string(domain.StatusPending) {
		t.Fatalf("status = %s, want pending", dto.Status)
	}
	if dto.Currency != "USD" {
		t.Fatalf("currency = %s, want USD (uppercased)", dto.Currency)
	}
	if dto.TermMonths != 12 {
		t.Fatalf("term_months = %d, want default 12", dto.TermMonths)
	}
	if dto.ID == uuid.Nil {
		t.Fatal("id not assigned")
	}
}

func TestCreate_RejectsInvalidAmountBeforeAnyWrite(t *testing.T) {
	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			t.Fatal("Create must not be called for an invalid loan")
			return nil
		},
	}
	uc := newTestUsecase(loans, existingBorrower(uuid.New()), nil)

	for _, amount := range []string{"0", "-5", "50000.01"} {
		_, err := uc.Create(context.Background(), CreateLoanInput{
			BorrowerID: uuid.New(),
			Amount:     decimal.RequireFromString(amount),
		})
		if !apperr.IsValidation(err) {
			t.Fatalf("amount %s: want validation error, got %v", amount, err)
		}
	}
}

func TestCreate_MissingBorrower(t *testing.T) {
	loans := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			t.Fatal("Create must not be called when the borrower is missing")
			return nil
		},
	}
	uc := newTestUsecase(loans, &borrowermock.Repo{}, nil)

	_, err := uc.Create(context.Background(), CreateLoanInput{
		BorrowerID: uuid.New(),
		Amount:     decimal.NewFromInt(5000),
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	loanID := uuid.New()
	loans := &loanmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
			return &domain.Loan{ID: loanID, BorrowerID: uuid.New(), Amount: decimal.NewFromInt(100),
				Currency: "USD", Status: domain.StatusPending, TermMonths: 12}, nil
		},
	}
	uc := newTestUsecase(loans, nil, nil)

	dto, err := uc.UpdateStatus(context.Background(), loanID, domain.StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if dto.Status != string(domain.StatusApproved) {
		t.Fatalf("status = %s, want approved", dto.Status)
	}
}

func TestUpdateStatus_DisburseStampsDates(t *testing.T) {
	loanID := uuid.New()
	loans := &loanmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
			return &domain.Loan{ID: loanID, BorrowerID: uuid.New(), Amount: decimal.NewFromInt(100),
				Currency: "USD", Status: domain.StatusApproved, TermMonths: 6}, nil
		},
	}
	uc := newTestUsecase(loans, nil, nil)

	dto, err := uc.UpdateStatus(context.Background(), loanID, domain.StatusDisbursed)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if dto.DisbursementDate == nil || dto.DueDate == nil {
		t.Fatal("disbursement must stamp disbursement_date and due_date")
	}
	if !dto.DueDate.After(*dto.DisbursementDate) {
		t.Fatalf("due %v not after disbursement %v", dto.DueDate, dto.DisbursementDate)
	}
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	loanID := uuid.New()
	loans := &loanmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
			return &domain.Loan{ID: loanID, Status: domain.StatusRepaid}, nil
		},
		SaveFn: func(ctx context.Context, l *domain.Loan) error {
			t.Fatal("Save must not be called for an illegal transition")
			return nil
		},
	}
	uc := newTestUsecase(loans, nil, nil)

	if _, err := uc.UpdateStatus(context.Background(), loanID, domain.StatusApproved); !apperr.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestUpdateStatus_UnknownValue(t *testing.T) {
	uc := newTestUsecase(nil, nil, nil)
	if _, err := uc.UpdateStatus(context.Background(), uuid.New(), domain.Status("sideways")); !apperr.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestDelete_RemovesPaymentsFirst(t *testing.T) {
	loanID := uuid.New()
	paymentsDeleted := false
	loans := &loanmock.Repo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
			return &domain.Loan{ID: loanID}, nil
		},
		DeleteFn: func(ctx context.Context, id uuid.UUID) error {
			if !paymentsDeleted {
				t.Fatal("loan deleted before its payments")
			}
			return nil
		},
	}
	payments := &paymentmock.Repo{
		DeleteByLoanIDFn: func(ctx context.Context, id uuid.UUID) error {
			if id != loanID {
				t.Fatalf("cascade hit wrong loan: %v", id)
			}
			paymentsDeleted = true
			return nil
		},
	}
	uc := newTestUsecase(loans, nil, payments)

	if err := uc.Delete(context.Background(), loanID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !paymentsDeleted {
		t.Fatal("payments not cascaded")
	}
}

func TestDelete_MissingLoan(t *testing.T) {
	payments := &paymentmock.Repo{
		DeleteByLoanIDFn: func(ctx context.Context, id uuid.UUID) error {
			t.Fatal("cascade must not run for a missing loan")
			return nil
		},
	}
	uc := newTestUsecase(&loanmock.Repo{}, nil, payments)

	if err := uc.Delete(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSchedule(t *testing.T) {
	loanID := uuid.New()
	loans := &loanmock.Repo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
			return &domain.Loan{ID: loanID, Amount: decimal.NewFromInt(12000),
				Currency: "USD", TermMonths: 12, InterestRateAPR: decimal.Zero}, nil
		},
	}
	uc := newTestUsecase(loans, nil, nil)

	dto, err := uc.Schedule(context.Background(), loanID)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if want := decimal.RequireFromString("1000"); !dto.MonthlyPayment.Equal(want) {
		t.Fatalf("monthly = %s, want %s", dto.MonthlyPayment, want)
	}
	if want := decimal.RequireFromString("12000"); !dto.TotalPayable.Equal(want) {
		t.Fatalf("total = %s, want %s", dto.TotalPayable, want)
	}
}

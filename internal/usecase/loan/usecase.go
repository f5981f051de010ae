package loan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"branch-loans-api/internal/domain/apperr"
	domain "branch-loans-api/internal/domain/loan"
	"branch-loans-api/internal/domain/uow"
	"branch-loans-api/pkg/id"
)

const (
	defaultCurrency   = "USD"
	defaultTermMonths = 12
)

type Usecase struct {
	loans domain.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(loans domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, uow: tx}
}

// Create validates the loan before any write is attempted, then checks the
// owning borrower and inserts inside one transaction. A missing borrower
// rolls the whole thing back with ErrNotFound.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	term := in.TermMonths
	if term == 0 {
		term = defaultTermMonths
	}

	l := &domain.Loan{
		ID:              id.New(),
		BorrowerID:      in.BorrowerID,
		Amount:          in.Amount,
		Currency:        currency,
		Status:          domain.StatusPending,
		TermMonths:      term,
		InterestRateAPR: in.InterestRateAPR,
	}
	if in.Purpose != "" {
		p := in.Purpose
		l.Purpose = &p
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Borrowers.GetByID(ctx, l.BorrowerID); err != nil {
			return err
		}
		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID uuid.UUID) (*LoanDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// UpdateStatus moves a loan along the state machine with the row locked.
// Disbursing stamps the disbursement date and the due date one term out.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID uuid.UUID, next domain.Status) (*LoanDTO, error) {
	if !next.Valid() {
		return nil, apperr.Validation("status", "is not a known loan status")
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if !l.Status.CanTransitionTo(next) {
			return apperr.Validation("status", fmt.Sprintf("cannot transition from %s to %s", l.Status, next))
		}
		l.Status = next
		if next == domain.StatusDisbursed {
			now := time.Now().UTC()
			due := now.AddDate(0, l.TermMonths, 0)
			l.DisbursementDate = &now
			l.DueDate = &due
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Delete removes the loan and, explicitly, every payment it owns. The loan
// owns its payment collection; no engine-level cascade is relied on.
func (u *Usecase) Delete(ctx context.Context, loanID uuid.UUID) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Loans.GetByID(ctx, loanID); err != nil {
			return err
		}
		if err := r.Payments.DeleteByLoanID(ctx, loanID); err != nil {
			return err
		}
		return r.Loans.Delete(ctx, loanID)
	})
}

func (u *Usecase) Schedule(ctx context.Context, loanID uuid.UUID) (*ScheduleDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	monthly, err := l.MonthlyPayment()
	if err != nil {
		return nil, err
	}
	return &ScheduleDTO{
		LoanID:         l.ID,
		Currency:       l.Currency,
		TermMonths:     l.TermMonths,
		MonthlyPayment: monthly,
		TotalPayable:   monthly.Mul(decimal.NewFromInt(int64(l.TermMonths))),
	}, nil
}

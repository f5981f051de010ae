package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "branch-loans-api/internal/domain/payment"
	"branch-loans-api/internal/domain/uow"
	"branch-loans-api/pkg/id"
)

type Usecase struct {
	payments domain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(payments domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{payments: payments, uow: tx}
}

type CreatePaymentInput struct {
	Amount               decimal.Decimal
	DueDate              time.Time
	TransactionReference string
	Notes                string
}

type UpdatePaymentInput struct {
	Status     domain.Status
	PaidAmount *decimal.Decimal
	Notes      *string
}

// Create records a scheduled payment against a loan. The loan must exist;
// the check and the insert share one transaction.
func (u *Usecase) Create(ctx context.Context, loanID uuid.UUID, in CreatePaymentInput) (*domain.Payment, error) {
	p := &domain.Payment{
		ID:      id.New(),
		LoanID:  loanID,
		Amount:  in.Amount,
		Status:  domain.StatusPending,
		DueDate: in.DueDate,
	}
	if in.TransactionReference != "" {
		ref := in.TransactionReference
		p.TransactionReference = &ref
	}
	if in.Notes != "" {
		n := in.Notes
		p.Notes = &n
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Loans.GetByID(ctx, loanID); err != nil {
			return err
		}
		return r.Payments.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID uuid.UUID) ([]domain.Payment, error) {
	var out []domain.Payment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Loans.GetByID(ctx, loanID); err != nil {
			return err
		}
		ps, err := r.Payments.ListByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		out = ps
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update changes a payment's status with the row locked. Marking a payment
// paid requires a paid amount and stamps paid_at; any other status clears
// neither field, so a stray paid_amount fails validation before the write.
func (u *Usecase) Update(ctx context.Context, paymentID uuid.UUID, in UpdatePaymentInput) (*domain.Payment, error) {
	var out *domain.Payment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		p.Status = in.Status
		if in.Status == domain.StatusPaid {
			p.PaidAmount = in.PaidAmount
			now := time.Now().UTC()
			p.PaidAt = &now
		} else {
			p.PaidAmount = in.PaidAmount
			p.PaidAt = nil
		}
		if in.Notes != nil {
			p.Notes = in.Notes
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if err := r.Payments.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

package paymentmock

import (
	"context"

	"github.com/google/uuid"

	"branch-loans-api/internal/domain/apperr"
	domain "branch-loans-api/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, p *domain.Payment) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	GetByIDForUpdateFn func(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	ListByLoanIDFn     func(ctx context.Context, loanID uuid.UUID) ([]domain.Payment, error)
	SaveFn             func(ctx context.Context, p *domain.Payment) error
	DeleteByLoanIDFn   func(ctx context.Context, loanID uuid.UUID) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, apperr.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, apperr.ErrNotFound
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uuid.UUID) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) DeleteByLoanID(ctx context.Context, loanID uuid.UUID) error {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}

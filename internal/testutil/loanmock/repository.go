package loanmock

import (
	"context"

	"github.com/google/uuid"

	"branch-loans-api/internal/domain/apperr"
	domain "branch-loans-api/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset methods default to apperr.ErrNotFound for reads and nil for writes.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.Loan, error)
	GetByIDForUpdateFn func(ctx context.Context, id uuid.UUID) (*domain.Loan, error)
	ListFn             func(ctx context.Context) ([]domain.Loan, error)
	SaveFn             func(ctx context.Context, l *domain.Loan) error
	DeleteFn           func(ctx context.Context, id uuid.UUID) error
	CountFn            func(ctx context.Context) (int64, error)
	AggregateFn        func(ctx context.Context) (*domain.Stats, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, apperr.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, apperr.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) Aggregate(ctx context.Context) (*domain.Stats, error) {
	if m.AggregateFn != nil {
		return m.AggregateFn(ctx)
	}
	return nil, nil
}

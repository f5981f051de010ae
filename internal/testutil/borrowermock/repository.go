package borrowermock

import (
	"context"

	"github.com/google/uuid"

	"branch-loans-api/internal/domain/apperr"
	domain "branch-loans-api/internal/domain/borrower"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, b *domain.Borrower) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Borrower, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Borrower, error)
	ListFn       func(ctx context.Context) ([]domain.Borrower, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Borrower, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, apperr.ErrNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Borrower, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, apperr.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Borrower, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

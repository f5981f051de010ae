package borrower

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"branch-loans-api/internal/domain/apperr"
	domain "branch-loans-api/internal/domain/borrower"
	"branch-loans-api/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateBorrowerInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	CreditScore *int
}

func (u *Usecase) Create(ctx context.Context, in CreateBorrowerInput) (*domain.Borrower, error) {
	b := &domain.Borrower{
		ID:          id.New(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		CreditScore: in.CreditScore,
	}
	if in.Phone != "" {
		p := in.Phone
		b.Phone = &p
	}
	if in.Address != "" {
		a := in.Address
		b.Address = &a
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// Pre-check the unique email; the storage index still backstops races.
	if _, err := u.repo.GetByEmail(ctx, b.Email); err == nil {
		return nil, apperr.Validation("email", "is already in use")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID uuid.UUID) (*domain.Borrower, error) {
	return u.repo.GetByID(ctx, borrowerID)
}

func (u *Usecase) List(ctx context.Context) ([]domain.Borrower, error) {
	return u.repo.List(ctx)
}

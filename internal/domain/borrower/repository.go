package borrower

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	GetByID(ctx context.Context, id uuid.UUID) (*Borrower, error)
	GetByEmail(ctx context.Context, email string) (*Borrower, error)
	List(ctx context.Context) ([]Borrower, error)
}

package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"branch-loans-api/internal/domain/apperr"
	borrowerDomain "branch-loans-api/internal/domain/borrower"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return apperr.Storage("create borrower", err)
	}
	return nil
}

func (r *BorrowerRepository) GetByID(ctx context.Context, id uuid.UUID) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Storage("get borrower", err)
	}
	return &out, nil
}

func (r *BorrowerRepository) GetByEmail(ctx context.Context, email string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Storage("get borrower by email", err)
	}
	return &out, nil
}

func (r *BorrowerRepository) List(ctx context.Context) ([]borrowerDomain.Borrower, error) {
	var out []borrowerDomain.Borrower
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, apperr.Storage("list borrowers", err)
	}
	return out, nil
}

package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"branch-loans-api/internal/domain/apperr"
	paymentDomain "branch-loans-api/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return apperr.Storage("create payment", err)
	}
	return nil
}

func (r *PaymentRepository) Save(ctx context.Context, p *paymentDomain.Payment) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return apperr.Storage("save payment", err)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Storage("get payment", err)
	}
	return &out, nil
}

func (r *PaymentRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Storage("lock payment", err)
	}
	return &out, nil
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID uuid.UUID) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Storage("list payments", err)
	}
	return out, nil
}

func (r *PaymentRepository) DeleteByLoanID(ctx context.Context, loanID uuid.UUID) error {
	err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&paymentDomain.Payment{}).Error
	if err != nil {
		return apperr.Storage("delete payments for loan", err)
	}
	return nil
}

package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"branch-loans-api/internal/domain/apperr"
	loanDomain "branch-loans-api/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return apperr.Storage("create loan", err)
	}
	return nil
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return apperr.Storage("save loan", err)
	}
	return nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id uuid.UUID) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Storage("get loan", err)
	}
	return &out, nil
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Storage("lock loan", err)
	}
	return &out, nil
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, apperr.Storage("list loans", err)
	}
	return out, nil
}

func (r *LoanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&loanDomain.Loan{})
	if res.Error != nil {
		return apperr.Storage("delete loan", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *LoanRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Count(&n).Error; err != nil {
		return 0, apperr.Storage("count loans", err)
	}
	return n, nil
}

// Aggregate computes the stats snapshot in the storage engine. COALESCE keeps
// the sum and average at zero for an empty table instead of NULL.
func (r *LoanRepository) Aggregate(ctx context.Context) (*loanDomain.Stats, error) {
	stats := &loanDomain.Stats{
		ByStatus:   map[string]int64{},
		ByCurrency: map[string]int64{},
	}

	var totals struct {
		TotalLoans  int64
		TotalAmount float64
		AvgAmount   float64
	}
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("COUNT(id) AS total_loans, COALESCE(SUM(amount), 0) AS total_amount, COALESCE(AVG(amount), 0) AS avg_amount").
		Scan(&totals).Error
	if err != nil {
		return nil, apperr.Storage("aggregate loans", err)
	}
	stats.TotalLoans = totals.TotalLoans
	stats.TotalAmount = floatToMoney(totals.TotalAmount)
	stats.AvgAmount = floatToMoney(totals.AvgAmount)

	var byStatus []struct {
		Status string
		N      int64
	}
	err = r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("status, COUNT(id) AS n").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, apperr.Storage("aggregate loans by status", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.N
	}

	var byCurrency []struct {
		Currency string
		N        int64
	}
	err = r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("currency, COUNT(id) AS n").
		Group("currency").
		Scan(&byCurrency).Error
	if err != nil {
		return nil, apperr.Storage("aggregate loans by currency", err)
	}
	for _, row := range byCurrency {
		stats.ByCurrency[row.Currency] = row.N
	}

	return stats, nil
}

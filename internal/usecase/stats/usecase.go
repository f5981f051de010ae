package stats

import (
	"context"

	loanDomain "branch-loans-api/internal/domain/loan"
)

// Usecase exposes the read-only aggregate view. No caching: every call hits
// storage fresh, and nothing here mutates state.
type Usecase struct{ loans loanDomain.Repository }

func NewUsecase(r loanDomain.Repository) *Usecase { return &Usecase{loans: r} }

func (u *Usecase) Snapshot(ctx context.Context) (*loanDomain.Stats, error) {
	return u.loans.Aggregate(ctx)
}

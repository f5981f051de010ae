package borrower

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"branch-loans-api/internal/domain/apperr"
)

type Borrower struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;not null;uniqueIndex:ux_borrowers_email" json:"email"`
	Phone       *string   `gorm:"size:32" json:"phone,omitempty"`
	Address     *string   `gorm:"size:512" json:"address,omitempty"`
	CreditScore *int      `json:"credit_score,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Borrower) TableName() string { return "borrowers" }

func (b *Borrower) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return apperr.Validation("name", "is required")
	}
	if !strings.Contains(b.Email, "@") {
		return apperr.Validation("email", "must be a valid email address")
	}
	return nil
}

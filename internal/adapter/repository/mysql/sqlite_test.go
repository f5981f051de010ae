package mysql

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	borrowerDomain "branch-loans-api/internal/domain/borrower"
	loanDomain "branch-loans-api/internal/domain/loan"
	paymentDomain "branch-loans-api/internal/domain/payment"
)

// --- SQLite-friendly schemas only for tests (no enum/check constraints) ---

type borrowerSQLite struct {
	ID          string `gorm:"primaryKey;column:id"`
	Name        string `gorm:"column:name"`
	Email       string `gorm:"column:email;uniqueIndex"`
	Phone       *string
	Address     *string
	CreditScore *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (borrowerSQLite) TableName() string { return "borrowers" }

type loanSQLite struct {
	ID               string  `gorm:"primaryKey;column:id"`
	BorrowerID       string  `gorm:"column:borrower_id;index"`
	Amount           float64 `gorm:"type:numeric;column:amount"`
	Currency         string  `gorm:"column:currency"`
	Status           string  `gorm:"type:text;column:status"`
	TermMonths       int     `gorm:"column:term_months"`
	InterestRateAPR  float64 `gorm:"type:numeric;column:interest_rate_apr"`
	Purpose          *string
	DisbursementDate *time.Time
	DueDate          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID                   string  `gorm:"primaryKey;column:id"`
	LoanID               string  `gorm:"column:loan_id;index"`
	Amount               float64 `gorm:"type:numeric;column:amount"`
	Status               string  `gorm:"type:text;column:status"`
	DueDate              time.Time
	PaidAmount           *float64 `gorm:"type:numeric;column:paid_amount"`
	PaidAt               *time.Time
	TransactionReference *string
	Notes                *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (paymentSQLite) TableName() string { return "payments" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&borrowerSQLite{}, &loanSQLite{}, &paymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeBorrower(email string) *borrowerDomain.Borrower {
	return &borrowerDomain.Borrower{
		ID:    uuid.New(),
		Name:  "Test Borrower",
		Email: email,
	}
}

func makeLoan(borrowerID uuid.UUID) *loanDomain.Loan {
	return &loanDomain.Loan{
		ID:              uuid.New(),
		BorrowerID:      borrowerID,
		Amount:          decimal.NewFromInt(10000),
		Currency:        "USD",
		Status:          loanDomain.StatusPending,
		TermMonths:      12,
		InterestRateAPR: decimal.RequireFromString("12.5"),
	}
}

func makePayment(loanID uuid.UUID, due time.Time) *paymentDomain.Payment {
	return &paymentDomain.Payment{
		ID:      uuid.New(),
		LoanID:  loanID,
		Amount:  decimal.NewFromInt(500),
		Status:  paymentDomain.StatusPending,
		DueDate: due,
	}
}

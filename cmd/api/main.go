package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	httpadp "branch-loans-api/internal/adapter/http"
	appmw "branch-loans-api/internal/adapter/middleware"
	"branch-loans-api/internal/adapter/repository/mysql"
	"branch-loans-api/internal/config"
	borrowerDomain "branch-loans-api/internal/domain/borrower"
	loanDomain "branch-loans-api/internal/domain/loan"
	paymentDomain "branch-loans-api/internal/domain/payment"
	"branch-loans-api/internal/infrastructure/cache"
	"branch-loans-api/internal/infrastructure/db"
	borrowerUC "branch-loans-api/internal/usecase/borrower"
	"branch-loans-api/internal/usecase/health"
	loanUC "branch-loans-api/internal/usecase/loan"
	paymentUC "branch-loans-api/internal/usecase/payment"
	statsUC "branch-loans-api/internal/usecase/stats"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.PoolConfig{
		PoolSize:    cfg.DBPoolSize,
		MaxOverflow: cfg.DBMaxOverflow,
		Recycle:     cfg.DBRecycle,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	borrowerRepo := mysql.NewBorrowerRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	paymentRepo := mysql.NewPaymentRepository(gdb)
	unitOfWork := mysql.NewGormUoW(gdb, cfg.DBPoolTimeout)

	checker := health.NewChecker(version)
	checker.Register("database", db.PingProbe(gdb))
	checker.Register("redis", cache.PingProbe(rdb))

	borrowerHandler := httpadp.NewBorrowerHandler(borrowerUC.NewUsecase(borrowerRepo))
	loanHandler := httpadp.NewLoanHandler(loanUC.NewUsecase(loanRepo, unitOfWork))
	paymentHandler := httpadp.NewPaymentHandler(paymentUC.NewUsecase(paymentRepo, unitOfWork))
	statsHandler := httpadp.NewStatsHandler(statsUC.NewUsecase(loanRepo))
	healthHandler := httpadp.NewHealthHandler(checker)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.RequestID(), echomw.Logger(), echomw.Recover(), echomw.CORS())
	e.Use(appmw.Metrics())
	e.Use(appmw.Idempotency(rdb, cfg.IdempTTL))

	e.GET("/health", healthHandler.Health)
	e.GET("/health/liveness", healthHandler.Liveness)
	e.GET("/health/readiness", healthHandler.Readiness)

	e.POST("/borrowers", borrowerHandler.CreateBorrower)
	e.GET("/borrowers", borrowerHandler.ListBorrowers)
	e.GET("/borrowers/:borrower_id", borrowerHandler.GetBorrower)

	e.POST("/loans", loanHandler.CreateLoan)
	e.GET("/loans", loanHandler.ListLoans)
	e.GET("/loans/:loan_id", loanHandler.GetLoan)
	e.PATCH("/loans/:loan_id/status", loanHandler.UpdateLoanStatus)
	e.DELETE("/loans/:loan_id", loanHandler.DeleteLoan)
	e.GET("/loans/:loan_id/schedule", loanHandler.GetSchedule)

	e.POST("/loans/:loan_id/payments", paymentHandler.CreatePayment)
	e.GET("/loans/:loan_id/payments", paymentHandler.ListPayments)
	e.PATCH("/payments/:payment_id", paymentHandler.UpdatePayment)

	e.GET("/stats", statsHandler.GetStats)
	e.GET("/metrics", appmw.MetricsHandler())

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

func migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&borrowerDomain.Borrower{},
		&loanDomain.Loan{},
		&paymentDomain.Payment{},
	)
}

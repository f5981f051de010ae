package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	loanDomain "branch-loans-api/internal/domain/loan"
	"branch-loans-api/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID      string  `json:"borrower_id" validate:"required,uuid4"`
	Amount          float64 `json:"amount" validate:"required,gt=0,lte=50000,dec2"`
	Currency        string  `json:"currency" validate:"omitempty,currency"`
	TermMonths      int     `json:"term_months" validate:"omitempty,gt=0"`
	InterestRateAPR float64 `json:"interest_rate_apr" validate:"omitempty,gte=0,lte=100,dec2"`
	Purpose         string  `json:"purpose"`
}

type updateLoanStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	borrowerID, _ := uuid.Parse(req.BorrowerID)
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID:      borrowerID,
		Amount:          decimal.NewFromFloat(req.Amount).Round(2),
		Currency:        req.Currency,
		TermMonths:      req.TermMonths,
		InterestRateAPR: decimal.NewFromFloat(req.InterestRateAPR).Round(2),
		Purpose:         req.Purpose,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, ok := pathUUID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	dto, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) UpdateLoanStatus(c echo.Context) error {
	loanID, ok := pathUUID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	var req updateLoanStatusReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	dto, err := h.uc.UpdateStatus(c.Request().Context(), loanID, loanDomain.Status(req.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	loanID, ok := pathUUID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	if err := h.uc.Delete(c.Request().Context(), loanID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) GetSchedule(c echo.Context) error {
	loanID, ok := pathUUID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	dto, err := h.uc.Schedule(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	paymentDomain "branch-loans-api/internal/domain/payment"
	"branch-loans-api/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createPaymentReq struct {
	Amount               float64 `json:"amount" validate:"required,gt=0,dec2"`
	DueDate              string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	TransactionReference string  `json:"transaction_reference"`
	Notes                string  `json:"notes"`
}

type updatePaymentReq struct {
	Status     string   `json:"status" validate:"required"`
	PaidAmount *float64 `json:"paid_amount" validate:"omitempty,gt=0,dec2"`
	Notes      *string  `json:"notes"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	loanID, ok := pathUUID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}
	due, _ := time.Parse("2006-01-02", req.DueDate)

	p, err := h.uc.Create(c.Request().Context(), loanID, payment.CreatePaymentInput{
		Amount:               decimal.NewFromFloat(req.Amount).Round(2),
		DueDate:              due.UTC(),
		TransactionReference: req.TransactionReference,
		Notes:                req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	loanID, ok := pathUUID(c, "loan_id")
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	ps, err := h.uc.ListByLoan(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	paymentID, ok := pathUUID(c, "payment_id")
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	var req updatePaymentReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	in := payment.UpdatePaymentInput{
		Status: paymentDomain.Status(req.Status),
		Notes:  req.Notes,
	}
	if req.PaidAmount != nil {
		amt := decimal.NewFromFloat(*req.PaidAmount).Round(2)
		in.PaidAmount = &amt
	}

	p, err := h.uc.Update(c.Request().Context(), paymentID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

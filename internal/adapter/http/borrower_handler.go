package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"branch-loans-api/internal/usecase/borrower"
)

type BorrowerHandler struct{ uc *borrower.Usecase }

func NewBorrowerHandler(uc *borrower.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type createBorrowerReq struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	CreditScore *int   `json:"credit_score" validate:"omitempty,gte=300,lte=850"`
}

func (h *BorrowerHandler) CreateBorrower(c echo.Context) error {
	var req createBorrowerReq
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	b, err := h.uc.Create(c.Request().Context(), borrower.CreateBorrowerInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CreditScore: req.CreditScore,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BorrowerHandler) ListBorrowers(c echo.Context) error {
	bs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bs)
}

func (h *BorrowerHandler) GetBorrower(c echo.Context) error {
	borrowerID, ok := pathUUID(c, "borrower_id")
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	b, err := h.uc.Get(c.Request().Context(), borrowerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

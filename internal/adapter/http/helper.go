package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"branch-loans-api/internal/domain/apperr"
)

// writeError maps the error taxonomy to HTTP codes. Validation failures carry
// field detail; storage and pool failures are logged and the client gets a
// generic 500 with no internal cause.
func writeError(c echo.Context, err error) error {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	case errors.Is(err, apperr.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		log.Printf("request failed: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func bindError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func validationError(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

// pathUUID parses a UUID path param; a malformed id is a 404, not a 422,
// since no resource can exist under it.
func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	v, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return v, true
}

package http

import (
	"errors"
	"net/http"

	"rental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform JSON error body returned by the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// operationError translates application errors into HTTP responses.
// Lookup misses map to 404, business rule violations to 409, anything
// unrecognized to 500.
func operationError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

package http

import (
	"errors"
	"net/http"

	"distribution/internal/core/domain/model/product"
	"distribution/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a core error onto its HTTP status and writes the
// response. Unknown errors become 500 without leaking their details.
func respondError(ctx echo.Context, err error) error {
	var (
		notFoundErr *errs.ObjectNotFoundError
		invalidErr  *errs.ValueIsInvalidError
		requiredErr *errs.ValueIsRequiredError
		rangeErr    *errs.ValueIsOutOfRangeError
		forbidden   *errs.ForbiddenError
		versionErr  *errs.VersionIsInvalidError
		stockErr    *product.InsufficientStockError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, errorBody{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &stockErr):
		return ctx.JSON(http.StatusConflict, errorBody{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &versionErr):
		return ctx.JSON(http.StatusConflict, errorBody{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &forbidden):
		return ctx.JSON(http.StatusForbidden, errorBody{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.As(err, &invalidErr), errors.As(err, &requiredErr), errors.As(err, &rangeErr):
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorBody{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

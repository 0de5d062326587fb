package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"portops/internal/core/application/usecases/commands"
	"portops/internal/core/domain/model/booking"
	"portops/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ConflictErrorResponse extends ErrorResponse with the window of the
// existing booking that blocked the request.
type ConflictErrorResponse struct {
	Code            int    `json:"code"`
	Message         string `json:"message"`
	ConflictStart   string `json:"conflict_start,omitempty"`
	ConflictEnd     string `json:"conflict_end,omitempty"`
	ConflictingDock int64  `json:"dock_id,omitempty"`
}

// respondError maps application and domain errors to HTTP responses.
// Validation failures, incompatibilities and referential blocks become 400,
// missing aggregates 404, dock exclusivity violations 409, everything else
// 500 without leaking internals.
func respondError(ctx echo.Context, err error) error {
	var conflictErr *booking.ConflictError
	if errors.As(err, &conflictErr) {
		resp := ConflictErrorResponse{
			Code:            http.StatusConflict,
			Message:         conflictErr.Error(),
			ConflictingDock: conflictErr.DockID,
		}
		if !conflictErr.ExistingStart.IsZero() {
			resp.ConflictStart = formatTimestamp(conflictErr.ExistingStart)
			resp.ConflictEnd = formatTimestamp(conflictErr.ExistingEnd)
		}
		return ctx.JSON(http.StatusConflict, resp)
	}

	var validationErrs validator.ValidationErrors
	var notFoundErr *errs.ObjectNotFoundError
	var invalidErr *errs.ValueIsInvalidError
	var requiredErr *errs.ValueIsRequiredError
	var rangeErr *errs.ValueIsOutOfRangeError
	var incompatibleErr *errs.IncompatibleError

	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &validationErrs),
		errors.As(err, &invalidErr),
		errors.As(err, &requiredErr),
		errors.As(err, &rangeErr),
		errors.As(err, &incompatibleErr),
		errors.Is(err, commands.ErrEndOrDurationRequired),
		errors.Is(err, commands.ErrNoUpdatableFields),
		errors.Is(err, commands.ErrShipHasBookings),
		errors.Is(err, commands.ErrDockHasBookings),
		errors.Is(err, commands.ErrCargoTypeInUse):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, booking.ErrDockTimeConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

// badRequest is the response for malformed bodies and path parameters.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

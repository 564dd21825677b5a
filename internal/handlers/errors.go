package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/microfinance_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// APIErrorResponse represents a generic error response for API operations
// @Description Standard error response format
type APIErrorResponse struct {
	Error string `json:"error" example:"payment amount exceeds outstanding balance"`
}

// statusForError maps an error kind to the HTTP status it is reported with.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidLoanParameters),
		errors.Is(err, apperrors.ErrInvalidPaymentAmount):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrLoanNotPayable),
		errors.Is(err, apperrors.ErrNoPendingInstallment),
		errors.Is(err, apperrors.ErrInvalidStatusTransition):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrPaymentExceedsBalance):
		return http.StatusUnprocessableEntity
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 600 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Business errors carry their
// message; unexpected failures are opaque in production.
func respondError(c *gin.Context, logger *slog.Logger, err error, isProduction bool, fallback string) {
	status := statusForError(err)
	if status < http.StatusInternalServerError {
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
		c.JSON(status, APIErrorResponse{Error: err.Error()})
		return
	}

	logger.Error(fallback, slog.String("error", err.Error()))
	msg := fallback
	if !isProduction {
		msg = fallback + ": " + err.Error()
	}
	c.JSON(status, APIErrorResponse{Error: msg})
}

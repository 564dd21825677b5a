package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected failure in a collaborator (usually the database).
var ErrInternal = errors.New("internal error")

// Loan calculation and repayment error kinds.
var (
	ErrInvalidLoanParameters   = errors.New("invalid loan parameters")
	ErrLoanNotPayable          = errors.New("loan is not in a payable status")
	ErrInvalidPaymentAmount    = errors.New("invalid payment amount")
	ErrPaymentExceedsBalance   = errors.New("payment amount exceeds outstanding balance")
	ErrNoPendingInstallment    = errors.New("no pending installment for loan")
	ErrInvalidStatusTransition = errors.New("invalid loan status transition")
)

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

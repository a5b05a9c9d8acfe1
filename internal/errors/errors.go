// Package errors provides custom error types for the trader journal.
// Domain operations and services return AppError so that callers can tell
// ownership conflicts, rejected input and missing records apart, and so the
// HTTP layer never leaks internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// errors.Is(err, ErrOwnershipConflict) matches customised copies too.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors. An ownership conflict is always a programming error on the
// caller's side: the child has to be detached from its current parent first.
var (
	ErrOwnershipConflict = &AppError{Code: "OWNERSHIP_CONFLICT", Message: "Child already belongs to another parent", StatusCode: http.StatusConflict}
	ErrValidationFailed  = &AppError{Code: "VALIDATION_FAILED", Message: "Validation failed", StatusCode: http.StatusUnprocessableEntity}
	ErrQuantityExceeded  = &AppError{Code: "QUANTITY_EXCEEDED", Message: "Sold quantity exceeds the traded quantity", StatusCode: http.StatusUnprocessableEntity}
	ErrQuantityLocked    = &AppError{Code: "QUANTITY_LOCKED", Message: "Trade quantity cannot change once snapshots exist", StatusCode: http.StatusConflict}
)

// Journal entry errors.
var (
	ErrJournalEntryNotFound = &AppError{Code: "JOURNAL_ENTRY_NOT_FOUND", Message: "Journal entry not found", StatusCode: http.StatusNotFound}
	ErrDuplicateJournalDate = &AppError{Code: "DUPLICATE_JOURNAL_DATE", Message: "A journal entry for this date already exists", StatusCode: http.StatusConflict}
	ErrSnapshotNotFound     = &AppError{Code: "SNAPSHOT_NOT_FOUND", Message: "Trade snapshot not found", StatusCode: http.StatusNotFound}
)

// Trade errors.
var (
	ErrTradeNotFound = &AppError{Code: "TRADE_NOT_FOUND", Message: "Trade not found", StatusCode: http.StatusNotFound}
)

// Asset errors.
var (
	ErrAssetNotFound = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrDuplicateISIN = &AppError{Code: "DUPLICATE_ISIN", Message: "An asset with this ISIN already exists", StatusCode: http.StatusConflict}
)

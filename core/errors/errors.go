package errors

import "fmt"

type ErrorCode string

const (
	// Generic
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrForbidden          ErrorCode = "FORBIDDEN"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"

	// Auth tokens
	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"

	// Google OAuth / calendar sync
	ErrMissingCode    ErrorCode = "MISSING_AUTHORIZATION_CODE"
	ErrInvalidState   ErrorCode = "INVALID_STATE"
	ErrInvalidGrant   ErrorCode = "INVALID_GRANT"
	ErrNotConnected   ErrorCode = "GOOGLE_NOT_CONNECTED"
	ErrExchangeFailed ErrorCode = "TOKEN_EXCHANGE_FAILED"
	ErrFetchFailed    ErrorCode = "CALENDAR_FETCH_FAILED"
	ErrStorageFailure ErrorCode = "STORAGE_FAILURE"
)

// AppError carries a classified error code across component boundaries so
// callers handle each case explicitly instead of relying on a catch-all.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

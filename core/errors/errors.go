package errors

import "fmt"

// ErrorCode identifies an application error category.
type ErrorCode string

const (
	ErrInternalServer     ErrorCode = "internal_server_error"
	ErrInvalidInput       ErrorCode = "invalid_input"
	ErrInvalidRequestData ErrorCode = "invalid_request_data"
	ErrUnauthorized       ErrorCode = "unauthorized"
	ErrForbidden          ErrorCode = "forbidden"
	ErrNotFound           ErrorCode = "not_found"
	ErrAlreadyExists      ErrorCode = "already_exists"
	ErrConflict           ErrorCode = "conflict"

	ErrExpired          ErrorCode = "expired"
	ErrCapacityExceeded ErrorCode = "capacity_exceeded"

	ErrCreateFailed ErrorCode = "create_failed"
	ErrGetFailed    ErrorCode = "get_failed"
	ErrUpdateFailed ErrorCode = "update_failed"
	ErrDeleteFailed ErrorCode = "delete_failed"

	ErrTokenExpired               ErrorCode = "token_expired"
	ErrInvalidTokenFormat         ErrorCode = "invalid_token_format"
	ErrMissingAuthorizationHeader ErrorCode = "missing_authorization_header"

	ErrServiceUnavailable ErrorCode = "service_unavailable"
)

// AppError carries an error code, a caller-facing message and the underlying cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
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
	return &AppError{Code: code, Message: message, Err: err}
}

func New(message string) *AppError {
	return &AppError{Code: ErrInternalServer, Message: message}
}

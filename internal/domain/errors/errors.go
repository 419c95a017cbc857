package errors

import (
	"net/http"

	"nms/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

func badRequest(errorCode, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, errorCode, message, "")
}

// Predefined error types.
// Business rule violations and persistence failures share the 400 status of the
// public contract; ErrorCode tells them apart.
var (
	// Generic record errors
	ErrRecordNotFound = badRequest("RECORD_NOT_FOUND", "No Record Found")
	ErrNothingChanged = badRequest("NOTHING_CHANGED", "You did not change anything for update")

	// Address-related errors
	ErrAddressAlreadyExists = badRequest("ADDRESS_ALREADY_EXISTS", "Address for this source already exist")
	ErrAddressCreateFailed  = badRequest("ADDRESS_CREATE_FAILED", "Failed To Add Address")
	ErrAddressUpdateFailed  = badRequest("ADDRESS_UPDATE_FAILED", "Failed to Update Address")

	// Country-related errors
	ErrCountryAlreadyExists = badRequest("COUNTRY_ALREADY_EXISTS", "Country already exist")
	ErrCountryNotFound      = badRequest("COUNTRY_NOT_FOUND", "Country not found")
	ErrCountryCreateFailed  = badRequest("COUNTRY_CREATE_FAILED", "Failed To Add Country")
	ErrCountryUpdateFailed  = badRequest("COUNTRY_UPDATE_FAILED", "Failed to Update Country")

	// City-related errors
	ErrCityAlreadyExists = badRequest("CITY_ALREADY_EXISTS", "City already exist for this country")
	ErrCityCreateFailed  = badRequest("CITY_CREATE_FAILED", "Failed To Add City")
	ErrCityUpdateFailed  = badRequest("CITY_UPDATE_FAILED", "Failed to Update City")

	// Company-related errors
	ErrCompanyAlreadyExists = badRequest("COMPANY_ALREADY_EXISTS", "Company already exist")
	ErrCompanyCreateFailed  = badRequest("COMPANY_CREATE_FAILED", "Failed To Add Company")
	ErrCompanyUpdateFailed  = badRequest("COMPANY_UPDATE_FAILED", "Failed to Update Company")

	// Role-related errors
	ErrRoleAlreadyExists = badRequest("ROLE_ALREADY_EXISTS", "Role already exist")
	ErrRoleNotFound      = badRequest("ROLE_NOT_FOUND", "Role not found")
	ErrRoleCreateFailed  = badRequest("ROLE_CREATE_FAILED", "Failed To Add Role")
	ErrRoleUpdateFailed  = badRequest("ROLE_UPDATE_FAILED", "Failed to Update Role")
	ErrRolePredefined    = badRequest("ROLE_PREDEFINED", "Predefined role cannot be renamed")

	// User-related errors
	ErrUserAlreadyExists  = badRequest("USER_ALREADY_EXISTS", "User name or email already taken")
	ErrUserCreationFailed = badRequest("USER_CREATION_FAILED", "Failed To Register User")

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid user name or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = badRequest("VALIDATION_FAILED", "Input validation failed")

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

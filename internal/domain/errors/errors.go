package errors

import (
	"net/http"

	"prestadores/internal/errors"
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

// WithDetails returns a copy of the error carrying detailed information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is reports whether target is a BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	ErrRequiredFields = NewBaseError(
		http.StatusBadRequest,
		"REQUIRED_FIELDS",
		"Todos os campos são obrigatórios",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"A senha deve ter no mínimo 6 caracteres",
		"",
	)

	ErrLoginFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"LOGIN_FIELDS_REQUIRED",
		"Email e senha são obrigatórios",
		"",
	)

	// User errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Este e-mail já está em uso",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Erro interno do servidor",
		"",
	)

	ErrProviderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROVIDER_CREATION_FAILED",
		"Erro interno do servidor",
		"",
	)

	// Authentication errors. Unknown email and wrong password share one value.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciais inválidas",
		"",
	)

	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Token de autorização necessário",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido",
		"",
	)

	ErrTokenSubjectNotFound = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_SUBJECT_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Erro interno do servidor",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erro interno do servidor",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Erro interno do servidor",
		"",
	)

	// General errors
	ErrMethodNotAllowed = NewBaseError(
		http.StatusMethodNotAllowed,
		"METHOD_NOT_ALLOWED",
		"Método não permitido",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)

	ErrPayloadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PAYLOAD_TOO_LARGE",
		"Corpo da requisição muito grande",
		"",
	)

	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"Serviço temporariamente indisponível",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do servidor",
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

// Unwrap exposes the driver error so context deadlines stay detectable.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "Erro interno do servidor"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

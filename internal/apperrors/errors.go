package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers map these to HTTP statuses; repositories and
// services wrap them with a wire code via AppError.
var (
	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates that a requested or referenced resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden indicates that the authenticated caller lacks rights on the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates that an attempt was made to create a resource that already exists.
	ErrConflict = errors.New("resource already exists")

	// ErrServer indicates any other failure.
	ErrServer = errors.New("internal server error")
)

// Default wire codes per kind, used when no more specific code applies.
const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeForbidden  = "forbidden"
	CodeConflict   = "conflict"
	CodeServer     = "server_error"
)

// AppError couples an error kind with the machine-readable code that goes out
// on the wire as the "error" field of the JSON response.
type AppError struct {
	Kind    error
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is lets errors.Is(err, apperrors.ErrConflict) match wrapped app errors.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError with an explicit wire code.
func New(kind error, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// Wrap builds an AppError around an underlying cause.
func Wrap(kind error, code, message string, err error) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message, Err: err}
}

// CodeOf extracts the wire code from err, falling back to the default code of
// the matching sentinel kind.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != "" {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrConflict):
		return CodeConflict
	default:
		return CodeServer
	}
}

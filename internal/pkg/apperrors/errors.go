package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Workload errors
var (
	// ErrRuleViolation marks an assignment refused by an allocation rule.
	ErrRuleViolation = errors.New("assignment rule violation")
	// ErrDataIntegrity marks reference data that is internally inconsistent.
	ErrDataIntegrity = errors.New("data integrity error")
	// ErrAssignmentLocked is returned when a confirmed assignment is modified.
	ErrAssignmentLocked = errors.New("assignment is confirmed and cannot be modified")

	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrAtomNotFound       = errors.New("pedagogical atom not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrFormationNotFound  = errors.New("formation offer not found")
	ErrAssignmentNotFound = errors.New("workload assignment not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates an input validation error for a single field
func NewValidationError(field, message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// NewRuleViolationError creates an error for a refused assignment; code names the rule
func NewRuleViolationError(code, message string) *CustomError {
	return &CustomError{
		Err:     ErrRuleViolation,
		Message: message,
		Code:    code,
	}
}

// NewDataIntegrityError creates an error describing inconsistent reference data
func NewDataIntegrityError(message string) *CustomError {
	return &CustomError{
		Err:     ErrDataIntegrity,
		Message: message,
	}
}

// isAny reports whether err matches target or any of errList
func isAny(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// IsNotFound reports whether err is any of the not-found errors
func IsNotFound(err error) bool {
	return isAny(err, ErrResourceNotFound,
		ErrTeacherNotFound, ErrModuleNotFound, ErrAtomNotFound,
		ErrSectionNotFound, ErrFormationNotFound, ErrAssignmentNotFound)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithDetail adds a single context detail to the error
func (e *CustomError) WithDetail(key string, value interface{}) *CustomError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// AsCustomError extracts the first CustomError in err's chain
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

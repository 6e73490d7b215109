package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
	ErrorCodeResourceInvalid       ErrorCode = "RES_003"
	ErrorCodeResourceLocked        ErrorCode = "RES_004"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Workload allocation errors
	ErrorCodeRuleViolation ErrorCode = "RULE_001"
	ErrorCodeDataIntegrity ErrorCode = "DATA_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityInfo     ErrorSeverity = "INFO"
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code      ErrorCode     `json:"code" example:"RULE_001"`
	Message   string        `json:"message" example:"a lecture cannot be assigned to a specific group"`
	Field     string        `json:"field,omitempty" example:"targetType"`
	Rule      string        `json:"rule,omitempty" example:"LECTURE_ON_GROUP"`
	Severity  ErrorSeverity `json:"severity" example:"ERROR"`
	Details   interface{}   `json:"details,omitempty"`
	DebugInfo string        `json:"debugInfo,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithRule names the allocation rule behind the error
func (e *ErrorDetail) WithRule(rule string) *ErrorDetail {
	e.Rule = rule
	return e
}

// WithSeverity sets the severity level of the error
func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// WithDebugInfo adds debug information (for development/testing only)
func (e *ErrorDetail) WithDebugInfo(format string, args ...interface{}) *ErrorDetail {
	e.DebugInfo = fmt.Sprintf(format, args...)
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// ValidationErrors represents multiple validation errors
type ValidationErrors struct {
	Errors []ErrorDetail `json:"errors"`
}

// NewValidationErrors creates a new validation errors container
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ErrorDetail, 0),
	}
}

// AddError adds a validation error to the container
func (v *ValidationErrors) AddError(field, message string) *ValidationErrors {
	v.Errors = append(v.Errors, ErrorDetail{
		Code:     ErrorCodeValidationFailed,
		Message:  message,
		Field:    field,
		Severity: ErrorSeverityError,
	})
	return v
}

// HasErrors checks if there are any validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// HandleValidationError turns a binding error into an ErrorDetail listing every failed field
func HandleValidationError(err error) *ErrorDetail {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
	}

	list := NewValidationErrors()
	for _, fe := range fieldErrs {
		list.AddError(lowerFirst(fe.Field()), formatValidationError(fe))
	}

	detail := NewErrorDetail(ErrorCodeValidationFailed, "Request validation failed").WithDetails(list.Errors)
	if len(list.Errors) == 1 {
		detail.Field = list.Errors[0].Field
		detail.Message = list.Errors[0].Message
	}
	return detail
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := lowerFirst(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return field + " is required when " + e.Param()
	case "min", "gte":
		return field + " must be at least " + e.Param()
	case "max", "lte":
		return field + " must be at most " + e.Param()
	case "gt":
		return field + " must be greater than " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	case "dive":
		return field + " contains an invalid element"
	default:
		return field + " validation failed: " + e.Tag()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/workload/internal/app/models/dto"
	"github.com/yigit/workload/internal/pkg/apperrors"
	"github.com/yigit/workload/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ErrorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Request failed")
		if gin.IsDebugging() {
			detail.WithDebugInfo("%v", err)
		}
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// ErrorDetailFor maps an error to its HTTP status and response detail
func ErrorDetailFor(err error) (int, *dto.ErrorDetail) {
	ce, _ := apperrors.AsCustomError(err)
	message := func(fallback string) string {
		if ce != nil && ce.Message != "" {
			return ce.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrRuleViolation):
		detail := dto.NewErrorDetail(dto.ErrorCodeRuleViolation, message("Assignment refused")).
			WithSeverity(dto.ErrorSeverityWarning)
		if ce != nil {
			detail.WithRule(ce.Code)
		}
		return http.StatusUnprocessableEntity, detail

	case errors.Is(err, apperrors.ErrDataIntegrity):
		detail := dto.NewErrorDetail(dto.ErrorCodeDataIntegrity, message("Reference data is inconsistent")).
			WithSeverity(dto.ErrorSeverityCritical)
		if ce != nil && len(ce.Details) > 0 {
			detail.WithDetails(ce.Details)
		}
		return http.StatusConflict, detail

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Validation failed"))
		if ce != nil {
			if field, ok := ce.Details["field"].(string); ok {
				detail.WithField(field)
			}
		}
		return http.StatusBadRequest, detail

	case errors.Is(err, apperrors.ErrAssignmentLocked):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceLocked, message(apperrors.ErrAssignmentLocked.Error()))

	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message("Resource already exists"))

	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, message("Conflict"))

	case apperrors.IsNotFound(err):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message(notFoundMessage(err)))

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// notFoundMessage names the missing resource without the wrapping context
func notFoundMessage(err error) string {
	for _, target := range []error{
		apperrors.ErrTeacherNotFound,
		apperrors.ErrModuleNotFound,
		apperrors.ErrAtomNotFound,
		apperrors.ErrSectionNotFound,
		apperrors.ErrFormationNotFound,
		apperrors.ErrAssignmentNotFound,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "Resource not found"
}

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/workload/internal/app/models/dto"
	"github.com/yigit/workload/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { HandleAPIError(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
		rule    string
		field   string
	}{
		{
			name:    "rule violation keeps rule code",
			err:     fmt.Errorf("wrap: %w", apperrors.NewRuleViolationError("LECTURE_ON_GROUP", "a lecture cannot be assigned to a specific group")),
			status:  http.StatusUnprocessableEntity,
			code:    dto.ErrorCodeRuleViolation,
			message: "a lecture cannot be assigned to a specific group",
			rule:    "LECTURE_ON_GROUP",
		},
		{
			name:    "data integrity",
			err:     apperrors.NewDataIntegrityError("group size must be positive").WithDetail("atomId", 7),
			status:  http.StatusConflict,
			code:    dto.ErrorCodeDataIntegrity,
			message: "group size must be positive",
		},
		{
			name:    "validation with field",
			err:     apperrors.NewValidationError("semester", "semester must be S1 or S2"),
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeValidationFailed,
			message: "semester must be S1 or S2",
			field:   "semester",
		},
		{
			name:    "wrapped not found names the resource",
			err:     fmt.Errorf("error confirming assignment: %w", apperrors.ErrAssignmentNotFound),
			status:  http.StatusNotFound,
			code:    dto.ErrorCodeResourceNotFound,
			message: apperrors.ErrAssignmentNotFound.Error(),
		},
		{
			name:    "locked assignment",
			err:     apperrors.NewCustomError(apperrors.ErrAssignmentLocked, "a confirmed assignment cannot be deleted"),
			status:  http.StatusConflict,
			code:    dto.ErrorCodeResourceLocked,
			message: "a confirmed assignment cannot be deleted",
		},
		{
			name:    "duplicate",
			err:     apperrors.ErrResourceAlreadyExists,
			status:  http.StatusConflict,
			code:    dto.ErrorCodeResourceAlreadyExists,
			message: "Resource already exists",
		},
		{
			name:    "unknown errors are hidden",
			err:     errors.New("connection reset by peer"),
			status:  http.StatusInternalServerError,
			code:    dto.ErrorCodeInternalServer,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serveError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
			assert.Equal(t, tt.rule, body.Error.Rule)
			assert.Equal(t, tt.field, body.Error.Field)
		})
	}
}

func TestBindJSON(t *testing.T) {
	type payload struct {
		TargetType string `json:"targetType" binding:"required,oneof=section group"`
	}

	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		var p payload
		if !BindJSON(c, &p) {
			return
		}
		c.JSON(http.StatusOK, dto.NewAPIResponse(p))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"targetType":"class"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "targetType", body.Error.Field)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"targetType":"group"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLoggerAndRecovery(t *testing.T) {
	var buf strings.Builder
	lgr := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(lgr), Recovery(lgr))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"panic":"kaboom"`)
	assert.Contains(t, buf.String(), `"requestId":"req-1"`)
	assert.Contains(t, buf.String(), `"status":500`)
}

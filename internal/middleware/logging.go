package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var errPanic = errors.New("handler panicked")

// RequestIDHeader carries the request correlation id
const RequestIDHeader = "X-Request-ID"

// RequestLogger logs one line per request with its status and latency
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = lgr.Error()
		case status >= 400:
			event = lgr.Warn()
		default:
			event = lgr.Info()
		}
		if len(c.Errors) > 0 {
			event = event.Str("error", c.Errors.Last().Error())
		}
		event.
			Str("requestId", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIp", c.ClientIP()).
			Msg("Request handled")
	}
}

// Recovery turns a panic into a 500 error response and logs the panic value
func Recovery(lgr zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		lgr.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		HandleAPIError(c, errPanic)
	})
}

package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/daehan-lim/moneychat/internal/logger"
)

// RequestLogging injects a request-scoped logger carrying a request id into
// the context and logs one line per request.
func RequestLogging(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		reqLogger := base.With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()

		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLogger))
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		reqLogger.Info().
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	}
}

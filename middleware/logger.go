package middleware

import (
	"time"

	"hoteladmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request and exposes a request-scoped logger
// to handlers under utils.LoggerContextKey.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := logger.With(
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
		)
		c.Set(utils.LoggerContextKey, reqLogger)

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if principal, ok := CurrentPrincipal(c); ok {
			fields = append(fields, zap.String("uid", principal.UID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLogger.Error("Request failed", fields...)
		case status >= 400:
			reqLogger.Warn("Request rejected", fields...)
		default:
			reqLogger.Info("Request handled", fields...)
		}
	}
}

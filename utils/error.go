package utils

import (
	"net/http"
	"strings"

	"hoteladmin/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every JSON error the API returns.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers from panics in later handlers. API callers get a JSON
// 500, dashboard pages a plain-text one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestLogger(c).Error("Unhandled panic", zap.Any("panic", err), zap.Stack("stack"))

				if strings.HasPrefix(c.Request.URL.Path, "/api/") {
					c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
						Message: "Internal Server Error",
						Details: "An unexpected error occurred. Please try again later.",
					})
					return
				}
				c.String(http.StatusInternalServerError, "Something went wrong, please try again later.")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a JSON error response and logs it against the request.
func JSONError(c *gin.Context, status int, message string, details string) {
	requestLogger(c).Warn(message, zap.Int("status", status), zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// requestLogger returns the logger RequestLogger attached to c, or a process
// logger tagged with the same request fields when it has not run yet.
func requestLogger(c *gin.Context) *zap.Logger {
	logger, ok := c.Value(LoggerContextKey).(*zap.Logger)
	if !ok {
		logger = GetLogger().With(
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
		)
	}
	if p, ok := c.Value(PrincipalContextKey).(models.Principal); ok {
		logger = logger.With(zap.String("uid", p.UID))
	}
	return logger
}

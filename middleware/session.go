package middleware

import (
	"context"
	"net/http"

	"hoteladmin/models"
	"hoteladmin/services/session"
	"hoteladmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionResolver is the part of the session gate the middleware needs.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (models.Principal, error)
}

// SessionMiddleware resolves the session cookie, if any, and stores the
// principal in both the gin context and the request context. An invalid
// cookie is cleared. It never rejects a request by itself.
func SessionMiddleware(gate SessionResolver, cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		principal, err := gate.Resolve(c.Request.Context(), token)
		if err != nil {
			zap.L().Debug("Session cookie rejected", zap.Error(err))
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, "", -1, "/", "", secure, true)
			c.Next()
			return
		}

		c.Set(utils.PrincipalContextKey, principal)
		c.Request = c.Request.WithContext(session.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// CurrentPrincipal returns the signed-in staff member of the request.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(utils.PrincipalContextKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// RequireSession redirects anonymous page requests to the login page.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSessionAPI rejects anonymous API requests with 401.
func RequireSessionAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated sends signed-in staff away from the login surface.
func RedirectIfAuthenticated(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); ok {
			c.Redirect(http.StatusSeeOther, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

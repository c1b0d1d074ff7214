package utils

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Flash message keys carried in the query string after a redirect.
const (
	FlashError  = "error"
	FlashNotice = "notice"
)

// SafeRedirectTarget keeps redirects on this site.
func SafeRedirectTarget(target string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return "/"
	}
	return target
}

// RedirectWithMessage sends a 303 to target with a single flash message in its query.
func RedirectWithMessage(c *gin.Context, target, key, message string) {
	parsed, err := url.Parse(SafeRedirectTarget(target))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	query := parsed.Query()
	query.Del(FlashError)
	query.Del(FlashNotice)
	if message != "" {
		query.Set(key, message)
	}
	parsed.RawQuery = query.Encode()

	redirectURL := parsed.Path
	if parsed.RawQuery != "" {
		redirectURL += "?" + parsed.RawQuery
	}
	c.Redirect(http.StatusSeeOther, redirectURL)
}

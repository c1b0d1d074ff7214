package handlers

import (
	"net/http"
	"strings"

	"hoteladmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginView struct {
	baseView
	Email string
}

func (hb *HandlerBundle) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", loginView{baseView: newBaseView(c, "Sign in")})
}

// Login signs the staff member in. On failure the form is shown again with the
// provider's message, the email kept and the password cleared.
func (hb *HandlerBundle) Login(c *gin.Context) {
	logger := getLogger(c)
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	s, err := hb.Gate.SignIn(c.Request.Context(), email, password)
	if err != nil {
		logger.Info("Sign-in failed", zap.String("email", email), zap.Error(err))
		view := loginView{baseView: newBaseView(c, "Sign in"), Email: email}
		view.Error = userMessage(err)
		render(c, http.StatusUnauthorized, "login.html", view)
		return
	}

	hb.setSessionCookie(c, s.Token)
	logger.Info("Sign-in succeeded", zap.String("uid", s.Principal.UID))
	c.Redirect(http.StatusSeeOther, "/")
}

func (hb *HandlerBundle) Logout(c *gin.Context) {
	token, _ := c.Cookie(hb.Cookie.Name)
	if err := hb.Gate.SignOut(c.Request.Context(), token); err != nil {
		getLogger(c).Warn("Sign-out could not revoke the session", zap.Error(err))
	}
	hb.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

type resetView struct {
	baseView
	Email string
}

func (hb *HandlerBundle) ResetPasswordPage(c *gin.Context) {
	render(c, http.StatusOK, "reset_password.html", resetView{baseView: newBaseView(c, "Reset password")})
}

func (hb *HandlerBundle) ResetPassword(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		utils.RedirectWithMessage(c, "/reset-password", utils.FlashError, "Please enter your email")
		return
	}
	if err := hb.Gate.SendPasswordReset(c.Request.Context(), email); err != nil {
		getLogger(c).Warn("Password reset failed", zap.String("email", email), zap.Error(err))
		utils.RedirectWithMessage(c, "/reset-password", utils.FlashError, userMessage(err))
		return
	}
	utils.RedirectWithMessage(c, "/login", utils.FlashNotice, "If that address has an account, a reset email is on its way")
}

func (hb *HandlerBundle) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(hb.Cookie.Name, token, int(hb.Cookie.TTL.Seconds()), "/", "", hb.Cookie.Secure, true)
}

func (hb *HandlerBundle) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(hb.Cookie.Name, "", -1, "/", "", hb.Cookie.Secure, true)
}

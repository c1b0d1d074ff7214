package identity

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"google.golang.org/api/googleapi"
)

// Reason classifies an identity failure.
type Reason string

const (
	ReasonInvalidCredentials Reason = "invalid_credentials"
	ReasonUserDisabled       Reason = "user_disabled"
	ReasonTooManyAttempts    Reason = "too_many_attempts"
	ReasonInvalidSession     Reason = "invalid_session"
	ReasonNetwork            Reason = "network"
	ReasonUnknown            Reason = "unknown"
)

// AuthError is returned by every Provider operation. Message is safe to show
// on the login page.
type AuthError struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsReason reports whether err is an AuthError with the given reason.
func IsReason(err error, reason Reason) bool {
	var ae *AuthError
	return errors.As(err, &ae) && ae.Reason == reason
}

var reasonMessages = map[Reason]string{
	ReasonInvalidCredentials: "Invalid email or password",
	ReasonUserDisabled:       "This account has been disabled",
	ReasonTooManyAttempts:    "Too many failed attempts, try again later",
	ReasonInvalidSession:     "Your session has expired, please sign in again",
	ReasonNetwork:            "Could not reach the authentication service",
	ReasonUnknown:            "Authentication failed",
}

func newAuthError(reason Reason, detail string, err error) *AuthError {
	msg := reasonMessages[reason]
	if detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, detail)
	}
	return &AuthError{Reason: reason, Message: msg, Err: err}
}

// classifyToolkitError maps an Identity Toolkit REST failure onto an AuthError.
// The service reports the cause as an upper-case code in the error message,
// e.g. "INVALID_LOGIN_CREDENTIALS" or "TOO_MANY_ATTEMPTS_TRY_LATER : ...".
func classifyToolkitError(err error) *AuthError {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		code := strings.TrimSpace(strings.SplitN(gerr.Message, ":", 2)[0])
		switch code {
		case "INVALID_PASSWORD", "EMAIL_NOT_FOUND", "INVALID_LOGIN_CREDENTIALS", "INVALID_EMAIL", "MISSING_PASSWORD":
			return newAuthError(ReasonInvalidCredentials, code, err)
		case "USER_DISABLED":
			return newAuthError(ReasonUserDisabled, code, err)
		case "TOO_MANY_ATTEMPTS_TRY_LATER":
			return newAuthError(ReasonTooManyAttempts, code, err)
		}
		if gerr.Code >= 500 {
			return newAuthError(ReasonNetwork, code, err)
		}
		return newAuthError(ReasonUnknown, code, err)
	}
	if isNetworkError(err) {
		return newAuthError(ReasonNetwork, "", err)
	}
	return newAuthError(ReasonUnknown, "", err)
}

func isNetworkError(err error) bool {
	var netErr net.Error
	var urlErr *url.Error
	return errors.As(err, &netErr) || errors.As(err, &urlErr)
}

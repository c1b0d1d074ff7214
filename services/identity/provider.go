// Package identity signs staff in and out against the hosted identity provider
// and publishes auth-state changes.
package identity

import (
	"context"
	"time"

	"hoteladmin/models"
)

// Session is a signed-in staff session. Token is what the browser keeps in
// its session cookie.
type Session struct {
	Token     string
	Principal models.Principal
	ExpiresAt time.Time
}

type Provider interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	// Verify returns the session behind token. ExpiresAt is zero when the
	// provider does not report it.
	Verify(ctx context.Context, token string) (Session, error)
	SignOut(ctx context.Context, token string) error
	SendPasswordReset(ctx context.Context, email string) error
	OnAuthStateChanged(fn func(AuthEvent)) (unsubscribe func())
}

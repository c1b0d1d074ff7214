package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hoteladmin/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// FirebaseProvider authenticates staff with Firebase Authentication.
// Passwords are checked through the Identity Toolkit REST API and the
// resulting ID token is exchanged for a server-side session cookie.
type FirebaseProvider struct {
	*Broadcaster

	auth       *auth.Client
	toolkit    *identitytoolkit.Service
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewFirebaseProvider(ctx context.Context, app *firebase.App, apiKey string, sessionTTL time.Duration, logger *zap.Logger) (*FirebaseProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("identity: FIREBASE_API_KEY is required for password sign-in")
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("identity: error getting Auth client: %w", err)
	}
	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("identity: error creating Identity Toolkit client: %w", err)
	}
	return &FirebaseProvider{
		Broadcaster: NewBroadcaster(),
		auth:        authClient,
		toolkit:     toolkit,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (Session, error) {
	resp, err := p.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             strings.TrimSpace(email),
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		authErr := classifyToolkitError(err)
		p.logger.Warn("SignIn: password verification failed", zap.String("reason", string(authErr.Reason)), zap.Error(err))
		return Session{}, authErr
	}

	cookie, err := p.auth.SessionCookie(ctx, resp.IdToken, p.sessionTTL)
	if err != nil {
		p.logger.Error("SignIn: failed to create session cookie", zap.String("uid", resp.LocalId), zap.Error(err))
		return Session{}, newAuthError(ReasonUnknown, "", err)
	}

	principal := models.Principal{UID: resp.LocalId, Email: resp.Email}
	p.Publish(AuthEvent{Principal: principal, SignedIn: true})
	return Session{
		Token:     cookie,
		Principal: principal,
		ExpiresAt: time.Now().Add(p.sessionTTL),
	}, nil
}

// Verify checks the session cookie, including revocation and disabled accounts.
func (p *FirebaseProvider) Verify(ctx context.Context, token string) (Session, error) {
	tok, err := p.auth.VerifySessionCookieAndCheckRevoked(ctx, token)
	if err != nil {
		return Session{}, classifyVerifyError(err)
	}
	email, _ := tok.Claims["email"].(string)
	return Session{
		Token:     token,
		Principal: models.Principal{UID: tok.UID, Email: email},
		ExpiresAt: time.Unix(tok.Expires, 0),
	}, nil
}

func classifyVerifyError(err error) *AuthError {
	switch {
	case auth.IsUserDisabled(err):
		return newAuthError(ReasonUserDisabled, "", err)
	case auth.IsSessionCookieRevoked(err), auth.IsSessionCookieExpired(err), auth.IsSessionCookieInvalid(err):
		return newAuthError(ReasonInvalidSession, "", err)
	case auth.IsCertificateFetchFailed(err), isNetworkError(err):
		return newAuthError(ReasonNetwork, "", err)
	}
	return newAuthError(ReasonUnknown, "", err)
}

// SignOut revokes every refresh token of the session's user, which also
// invalidates all of their session cookies.
func (p *FirebaseProvider) SignOut(ctx context.Context, token string) error {
	tok, err := p.auth.VerifySessionCookie(ctx, token)
	if err != nil {
		// Nothing to revoke for an expired or forged cookie.
		p.logger.Debug("SignOut: session cookie not valid", zap.Error(err))
		return nil
	}
	if err := p.auth.RevokeRefreshTokens(ctx, tok.UID); err != nil {
		p.logger.Error("SignOut: failed to revoke tokens", zap.String("uid", tok.UID), zap.Error(err))
		return newAuthError(ReasonUnknown, "", err)
	}

	email, _ := tok.Claims["email"].(string)
	p.Publish(AuthEvent{Principal: models.Principal{UID: tok.UID, Email: email}})
	return nil
}

func (p *FirebaseProvider) SendPasswordReset(ctx context.Context, email string) error {
	_, err := p.toolkit.Relyingparty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "PASSWORD_RESET",
		Email:       strings.TrimSpace(email),
	}).Context(ctx).Do()
	if err != nil {
		authErr := classifyToolkitError(err)
		p.logger.Warn("SendPasswordReset: request failed", zap.String("reason", string(authErr.Reason)), zap.Error(err))
		return authErr
	}
	return nil
}

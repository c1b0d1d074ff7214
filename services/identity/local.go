package identity

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"hoteladmin/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalProvider keeps a fixed set of staff accounts in memory. It backs the
// in-memory store driver for offline runs and is the provider used by tests.
type LocalProvider struct {
	*Broadcaster

	mu         sync.Mutex
	accounts   map[string]localAccount
	sessions   map[string]Session
	sessionTTL time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

type localAccount struct {
	uid      string
	password string
	disabled bool
}

func NewLocalProvider(sessionTTL time.Duration, logger *zap.Logger) *LocalProvider {
	return &LocalProvider{
		Broadcaster: NewBroadcaster(),
		accounts:    make(map[string]localAccount),
		sessions:    make(map[string]Session),
		sessionTTL:  sessionTTL,
		now:         time.Now,
		logger:      logger,
	}
}

// AddAccount registers a staff account and returns its uid.
func (p *LocalProvider) AddAccount(email, password string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	uid := uuid.New().String()
	p.accounts[strings.ToLower(strings.TrimSpace(email))] = localAccount{uid: uid, password: password}
	return uid
}

// Disable blocks further sign-ins and invalidates open sessions of the account.
func (p *LocalProvider) Disable(email string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(email))
	acct, ok := p.accounts[key]
	if !ok {
		return
	}
	acct.disabled = true
	p.accounts[key] = acct
	for token, s := range p.sessions {
		if s.Principal.UID == acct.uid {
			delete(p.sessions, token)
		}
	}
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, newAuthError(ReasonNetwork, "", err)
	}
	key := strings.ToLower(strings.TrimSpace(email))

	p.mu.Lock()
	acct, ok := p.accounts[key]
	if !ok || subtle.ConstantTimeCompare([]byte(acct.password), []byte(password)) != 1 {
		p.mu.Unlock()
		return Session{}, newAuthError(ReasonInvalidCredentials, "", nil)
	}
	if acct.disabled {
		p.mu.Unlock()
		return Session{}, newAuthError(ReasonUserDisabled, "", nil)
	}
	s := Session{
		Token:     uuid.New().String(),
		Principal: models.Principal{UID: acct.uid, Email: key},
		ExpiresAt: p.now().Add(p.sessionTTL),
	}
	p.sessions[s.Token] = s
	p.mu.Unlock()

	p.Publish(AuthEvent{Principal: s.Principal, SignedIn: true})
	return s, nil
}

func (p *LocalProvider) Verify(ctx context.Context, token string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, newAuthError(ReasonNetwork, "", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.sessions[token]
	if !ok {
		return Session{}, newAuthError(ReasonInvalidSession, "", nil)
	}
	if p.now().After(s.ExpiresAt) {
		delete(p.sessions, token)
		return Session{}, newAuthError(ReasonInvalidSession, "", nil)
	}
	return s, nil
}

// SignOut ends every session of the token's user, matching refresh-token revocation.
func (p *LocalProvider) SignOut(ctx context.Context, token string) error {
	p.mu.Lock()
	s, ok := p.sessions[token]
	if ok {
		for t, other := range p.sessions {
			if other.Principal.UID == s.Principal.UID {
				delete(p.sessions, t)
			}
		}
	}
	p.mu.Unlock()

	if ok {
		p.Publish(AuthEvent{Principal: s.Principal})
	}
	return nil
}

func (p *LocalProvider) SendPasswordReset(ctx context.Context, email string) error {
	if err := ctx.Err(); err != nil {
		return newAuthError(ReasonNetwork, "", err)
	}
	p.logger.Info("Password reset requested", zap.String("email", strings.TrimSpace(email)))
	return nil
}

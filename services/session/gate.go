// Package session decides whether a request belongs to a signed-in staff member.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"hoteladmin/models"
	"hoteladmin/services/identity"
	"hoteladmin/utils"

	"go.uber.org/zap"
)

// ErrNoSession is returned by Resolve when the request carries no token.
var ErrNoSession = errors.New("no session")

// Gate holds the identity provider subscription for its whole lifetime and
// resolves session tokens to principals.
type Gate struct {
	provider identity.Provider
	cache    Cache
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time

	unsubscribe func()
	closeOnce   sync.Once
}

// NewGate subscribes to auth-state changes. cache may be nil.
func NewGate(provider identity.Provider, cache Cache, logger *zap.Logger) *Gate {
	g := &Gate{
		provider: provider,
		cache:    cache,
		cacheTTL: utils.SessionCacheTTL,
		logger:   logger,
		now:      time.Now,
	}
	g.unsubscribe = provider.OnAuthStateChanged(g.onAuthStateChanged)
	return g
}

func (g *Gate) onAuthStateChanged(e identity.AuthEvent) {
	if e.SignedIn {
		g.logger.Info("Staff signed in", zap.String("uid", e.Principal.UID), zap.String("email", e.Principal.Email))
		return
	}
	g.logger.Info("Staff signed out", zap.String("uid", e.Principal.UID))
	if g.cache == nil || e.Principal.UID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := g.cache.EvictUser(ctx, e.Principal.UID); err != nil {
		g.logger.Warn("Failed to evict cached sessions", zap.String("uid", e.Principal.UID), zap.Error(err))
	}
}

func (g *Gate) SignIn(ctx context.Context, email, password string) (identity.Session, error) {
	s, err := g.provider.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return identity.Session{}, err
	}
	g.remember(ctx, s)
	return s, nil
}

// SignOut revokes the session at the provider and forgets it locally even if
// revocation fails.
func (g *Gate) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := g.provider.SignOut(ctx, token)
	if g.cache != nil {
		if cerr := g.cache.Delete(ctx, utils.HashToken(token)); cerr != nil {
			g.logger.Warn("Failed to drop cached session", zap.Error(cerr))
		}
	}
	return err
}

// Resolve returns the principal behind token, consulting the cache before the provider.
func (g *Gate) Resolve(ctx context.Context, token string) (models.Principal, error) {
	if token == "" {
		return models.Principal{}, ErrNoSession
	}
	hash := utils.HashToken(token)
	if g.cache != nil {
		p, ok, err := g.cache.Get(ctx, hash)
		if err != nil {
			g.logger.Warn("Session cache lookup failed", zap.Error(err))
		} else if ok {
			return p, nil
		}
	}

	s, err := g.provider.Verify(ctx, token)
	if err != nil {
		return models.Principal{}, err
	}
	g.remember(ctx, s)
	return s.Principal, nil
}

func (g *Gate) SendPasswordReset(ctx context.Context, email string) error {
	return g.provider.SendPasswordReset(ctx, strings.TrimSpace(email))
}

// remember caches a verified session. The entry never outlives the session itself.
func (g *Gate) remember(ctx context.Context, s identity.Session) {
	if g.cache == nil {
		return
	}
	ttl := g.cacheTTL
	if !s.ExpiresAt.IsZero() {
		if left := s.ExpiresAt.Sub(g.now()); left < ttl {
			ttl = left
		}
	}
	if ttl <= 0 {
		return
	}
	if err := g.cache.Put(ctx, utils.HashToken(s.Token), s.Principal, ttl); err != nil {
		g.logger.Warn("Failed to cache session", zap.String("uid", s.Principal.UID), zap.Error(err))
	}
}

// Close releases the provider subscription. Safe to call more than once.
func (g *Gate) Close() {
	g.closeOnce.Do(func() {
		g.unsubscribe()
		g.logger.Debug("Session gate closed")
	})
}

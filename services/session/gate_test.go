package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hoteladmin/models"
	"hoteladmin/services/identity"
	"hoteladmin/utils"

	"go.uber.org/zap"
)

type mockProvider struct {
	signInFunc  func(ctx context.Context, email, password string) (identity.Session, error)
	verifyFunc  func(ctx context.Context, token string) (models.Principal, error)
	signOutFunc func(ctx context.Context, token string) error
	// expiresAt is reported by Verify for every session.
	expiresAt time.Time

	listener     func(identity.AuthEvent)
	subscribes   int
	unsubscribes int
	verifyCalls  int
}

func (m *mockProvider) SignIn(ctx context.Context, email, password string) (identity.Session, error) {
	if m.signInFunc != nil {
		return m.signInFunc(ctx, email, password)
	}
	return identity.Session{}, nil
}

func (m *mockProvider) Verify(ctx context.Context, token string) (identity.Session, error) {
	m.verifyCalls++
	var p models.Principal
	if m.verifyFunc != nil {
		var err error
		if p, err = m.verifyFunc(ctx, token); err != nil {
			return identity.Session{}, err
		}
	}
	return identity.Session{Token: token, Principal: p, ExpiresAt: m.expiresAt}, nil
}

func (m *mockProvider) SignOut(ctx context.Context, token string) error {
	if m.signOutFunc != nil {
		return m.signOutFunc(ctx, token)
	}
	return nil
}

func (m *mockProvider) SendPasswordReset(ctx context.Context, email string) error {
	return nil
}

func (m *mockProvider) OnAuthStateChanged(fn func(identity.AuthEvent)) func() {
	m.subscribes++
	m.listener = fn
	return func() { m.unsubscribes++ }
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]models.Principal
	ttls    map[string]time.Duration
	evicted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]models.Principal), ttls: make(map[string]time.Duration)}
}

func (c *memoryCache) Get(ctx context.Context, hash string) (models.Principal, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[hash]
	return p, ok, nil
}

func (c *memoryCache) Put(ctx context.Context, hash string, p models.Principal, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[hash] = p
	c.ttls[hash] = ttl
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, hash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, hash)
	return nil
}

func (c *memoryCache) EvictUser(ctx context.Context, uid string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evicted = append(c.evicted, uid)
	for h, p := range c.entries {
		if p.UID == uid {
			delete(c.entries, h)
		}
	}
	return nil
}

func TestGate_CloseReleasesSubscriptionOnce(t *testing.T) {
	provider := &mockProvider{}
	gate := NewGate(provider, nil, zap.NewNop())

	if provider.subscribes != 1 {
		t.Fatalf("subscribes = %d, want 1", provider.subscribes)
	}
	gate.Close()
	gate.Close()
	if provider.unsubscribes != 1 {
		t.Errorf("unsubscribes = %d, want exactly 1", provider.unsubscribes)
	}
}

func TestGate_ResolveUsesCache(t *testing.T) {
	want := models.Principal{UID: "u1", Email: "admin@hotel.test"}
	provider := &mockProvider{
		verifyFunc: func(ctx context.Context, token string) (models.Principal, error) {
			if token != "cookie" {
				return models.Principal{}, &identity.AuthError{Reason: identity.ReasonInvalidSession, Message: "expired"}
			}
			return want, nil
		},
	}
	cache := newMemoryCache()
	gate := NewGate(provider, cache, zap.NewNop())
	defer gate.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := gate.Resolve(ctx, "cookie")
		if err != nil {
			t.Fatalf("Resolve() failed: %v", err)
		}
		if got != want {
			t.Errorf("Resolve() = %+v, want %+v", got, want)
		}
	}
	if provider.verifyCalls != 1 {
		t.Errorf("provider verified %d times, want 1", provider.verifyCalls)
	}

	if _, err := gate.Resolve(ctx, "forged"); !identity.IsReason(err, identity.ReasonInvalidSession) {
		t.Errorf("Resolve(forged) error = %v, want invalid session", err)
	}
	if _, err := gate.Resolve(ctx, ""); !errors.Is(err, ErrNoSession) {
		t.Errorf("Resolve(\"\") error = %v, want ErrNoSession", err)
	}
}

func TestGate_SignOutEventEvictsUser(t *testing.T) {
	principal := models.Principal{UID: "u1", Email: "admin@hotel.test"}
	provider := &mockProvider{
		signInFunc: func(ctx context.Context, email, password string) (identity.Session, error) {
			return identity.Session{Token: "cookie", Principal: principal}, nil
		},
		verifyFunc: func(ctx context.Context, token string) (models.Principal, error) {
			return models.Principal{}, &identity.AuthError{Reason: identity.ReasonInvalidSession, Message: "revoked"}
		},
	}
	cache := newMemoryCache()
	gate := NewGate(provider, cache, zap.NewNop())
	defer gate.Close()
	ctx := context.Background()

	if _, err := gate.SignIn(ctx, " admin@hotel.test ", "pw"); err != nil {
		t.Fatalf("SignIn() failed: %v", err)
	}
	if _, err := gate.Resolve(ctx, "cookie"); err != nil {
		t.Fatalf("Resolve() right after sign-in failed: %v", err)
	}

	provider.listener(identity.AuthEvent{Principal: principal})

	if len(cache.evicted) != 1 || cache.evicted[0] != "u1" {
		t.Errorf("evicted = %v, want [u1]", cache.evicted)
	}
	if _, err := gate.Resolve(ctx, "cookie"); err == nil {
		t.Error("Resolve() should fail once the user's sessions are evicted and revoked")
	}
}

func TestGate_SignOutDropsCacheEvenOnProviderError(t *testing.T) {
	provider := &mockProvider{
		verifyFunc: func(ctx context.Context, token string) (models.Principal, error) {
			return models.Principal{UID: "u1"}, nil
		},
		signOutFunc: func(ctx context.Context, token string) error {
			return errors.New("unreachable")
		},
	}
	cache := newMemoryCache()
	gate := NewGate(provider, cache, zap.NewNop())
	defer gate.Close()
	ctx := context.Background()

	if _, err := gate.Resolve(ctx, "cookie"); err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if err := gate.SignOut(ctx, "cookie"); err == nil {
		t.Error("SignOut() should report the provider error")
	}
	if len(cache.entries) != 0 {
		t.Errorf("cache still holds %d sessions", len(cache.entries))
	}
}

func TestPrincipalContext(t *testing.T) {
	if _, ok := PrincipalFrom(context.Background()); ok {
		t.Error("PrincipalFrom() on empty context should report false")
	}
	ctx := WithPrincipal(context.Background(), models.Principal{UID: "u1"})
	if p, ok := PrincipalFrom(ctx); !ok || p.UID != "u1" {
		t.Errorf("PrincipalFrom() = %+v, %v", p, ok)
	}
}

func TestGate_CacheNeverOutlivesSession(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	principal := models.Principal{UID: "u1"}
	verify := func(ctx context.Context, token string) (models.Principal, error) { return principal, nil }

	tests := []struct {
		name      string
		expiresAt time.Time
		wantTTL   time.Duration
		wantCache bool
	}{
		{name: "long session", expiresAt: now.Add(24 * time.Hour), wantTTL: utils.SessionCacheTTL, wantCache: true},
		{name: "about to expire", expiresAt: now.Add(30 * time.Second), wantTTL: 30 * time.Second, wantCache: true},
		{name: "already expired", expiresAt: now.Add(-time.Second)},
		{name: "expiry unknown", wantTTL: utils.SessionCacheTTL, wantCache: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMemoryCache()
			gate := NewGate(&mockProvider{verifyFunc: verify, expiresAt: tt.expiresAt}, cache, zap.NewNop())
			defer gate.Close()
			gate.now = func() time.Time { return now }

			if _, err := gate.Resolve(context.Background(), "cookie"); err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			ttl, cached := cache.ttls[utils.HashToken("cookie")]
			if cached != tt.wantCache {
				t.Fatalf("cached = %v, want %v", cached, tt.wantCache)
			}
			if cached && ttl != tt.wantTTL {
				t.Errorf("cache ttl = %v, want %v", ttl, tt.wantTTL)
			}
		})
	}
}

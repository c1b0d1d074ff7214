package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hoteladmin/models"
	"hoteladmin/services/session"

	"github.com/gin-gonic/gin"
)

type mockResolver struct {
	resolveFunc func(ctx context.Context, token string) (models.Principal, error)
}

func (m *mockResolver) Resolve(ctx context.Context, token string) (models.Principal, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, token)
	}
	return models.Principal{}, errors.New("no session")
}

func newTestRouter(resolver SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(resolver, "sid", false))
	r.GET("/login", RedirectIfAuthenticated("/"), func(c *gin.Context) { c.String(http.StatusOK, "login") })
	r.GET("/rooms", RequireSession(), func(c *gin.Context) {
		p, ok := session.PrincipalFrom(c.Request.Context())
		if !ok {
			c.String(http.StatusInternalServerError, "no principal in request context")
			return
		}
		c.String(http.StatusOK, p.UID)
	})
	r.GET("/api/bookings", RequireSessionAPI(), func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	return r
}

func validResolver() *mockResolver {
	return &mockResolver{
		resolveFunc: func(ctx context.Context, token string) (models.Principal, error) {
			if token == "good" {
				return models.Principal{UID: "u1", Email: "admin@hotel.test"}, nil
			}
			return models.Principal{}, errors.New("invalid")
		},
	}
}

func TestSessionMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		cookie       string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "anonymous page", path: "/rooms", wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "bad cookie page", path: "/rooms", cookie: "forged", wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "signed-in page", path: "/rooms", cookie: "good", wantStatus: http.StatusOK, wantBody: "u1"},
		{name: "anonymous api", path: "/api/bookings", wantStatus: http.StatusUnauthorized},
		{name: "signed-in api", path: "/api/bookings", cookie: "good", wantStatus: http.StatusOK},
		{name: "login when anonymous", path: "/login", wantStatus: http.StatusOK, wantBody: "login"},
		{name: "login when signed in", path: "/login", cookie: "good", wantStatus: http.StatusSeeOther, wantLocation: "/"},
	}

	r := newTestRouter(validResolver())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sid", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" && w.Header().Get("Location") != tt.wantLocation {
				t.Errorf("Location = %q, want %q", w.Header().Get("Location"), tt.wantLocation)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSessionMiddleware_ClearsInvalidCookie(t *testing.T) {
	r := newTestRouter(validResolver())
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "forged"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "sid" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("invalid session cookie was not cleared")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/api/bookings", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}
}

func TestRateLimitIgnoresForgedForwardingHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		t.Fatalf("SetTrustedProxies() failed: %v", err)
	}
	r.Use(LoginRateLimitMiddleware(2))
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for _, forged := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"} {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("X-Forwarded-For", forged)
		req.Header.Set("X-Real-IP", forged)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusSeeOther {
		t.Errorf("status codes = %v, want [200 200 303] for one socket address", codes)
	}
}

func TestRateLimiterStoreEvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(1)
	store.now = func() time.Time { return now }
	store.lastSweep = now

	store.getLimiter("203.0.113.1").Allow()
	now = now.Add(5 * time.Minute)
	store.getLimiter("203.0.113.2")

	now = now.Add(store.idleTTL)
	store.getLimiter("203.0.113.3")

	if _, ok := store.visitors["203.0.113.1"]; ok {
		t.Error("idle client 203.0.113.1 was not evicted")
	}
	if _, ok := store.visitors["203.0.113.2"]; !ok {
		t.Error("client 203.0.113.2 evicted before it went idle")
	}
	if len(store.visitors) != 2 {
		t.Errorf("visitors = %d, want 2", len(store.visitors))
	}
	if !store.getLimiter("203.0.113.1").Allow() {
		t.Error("returning client should start with a fresh limiter")
	}
}

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hoteladmin/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.ErrorLevel)
	reqLogger := zap.New(core).With(zap.String("path", "/api/bookings"))

	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Set(LoggerContextKey, reqLogger)
		c.Set(PrincipalContextKey, models.Principal{UID: "admin-1"})
		c.Next()
	})
	r.GET("/api/bookings", func(c *gin.Context) { panic("boom") })
	r.GET("/booked", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("api status = %d, want 500", w.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Message != "Internal Server Error" {
		t.Errorf("api body = %q, want a JSON ErrorResponse", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/booked", nil))
	if w.Code != http.StatusInternalServerError || strings.HasPrefix(w.Body.String(), "{") {
		t.Errorf("page response = %d %q, want a plain-text 500", w.Code, w.Body.String())
	}

	entries := logs.FilterMessage("Unhandled panic").All()
	if len(entries) != 2 {
		t.Fatalf("logged %d panics, want 2", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["uid"] != "admin-1" || fields["path"] != "/api/bookings" {
		t.Errorf("panic log fields = %v, want the request path and uid", fields)
	}
}

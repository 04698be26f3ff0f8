package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-medication-sync/internal/observability/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(cfg GinConfig, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(Gin(cfg))
	r.Use(PanicRecoveryGin())
	r.GET("/test", handler)
	r.GET("/health", handler)
	return r
}

func TestGin_RequestID(t *testing.T) {
	existing := uuid.NewString()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "valid id is kept", header: existing, want: existing},
		{name: "missing id is generated"},
		{name: "invalid id is replaced", header: "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			var module logging.Module
			r := newRouter(GinConfig{Module: "medication-sync"}, func(c *gin.Context) {
				seen = logging.RequestIDFromContext(c.Request.Context())
				module = logging.ModuleFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if _, err := uuid.Parse(seen); err != nil {
				t.Fatalf("expected uuid request id in context, got %q", seen)
			}
			if tt.want != "" && seen != tt.want {
				t.Errorf("request id: got %q, want %q", seen, tt.want)
			}
			if w.Header().Get(RequestIDHeader) != seen {
				t.Errorf("response header: got %q, want %q", w.Header().Get(RequestIDHeader), seen)
			}
			if module != "medication-sync" {
				t.Errorf("module: got %q", module)
			}
		})
	}
}

func TestGin_SkipPathKeepsRequestID(t *testing.T) {
	var seen string
	r := newRouter(GinConfig{SkipPaths: []string{"/health"}}, func(c *gin.Context) {
		seen = logging.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK || seen == "" {
		t.Errorf("got status %d, request id %q", w.Code, seen)
	}
}

func TestPanicRecoveryGin(t *testing.T) {
	r := newRouter(GinConfig{}, func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", w.Code)
	}
}

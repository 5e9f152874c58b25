package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func adminRouter(key string) *gin.Engine {
	r := gin.New()
	r.GET("/admin", AdminKey(key), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAdminKey(t *testing.T) {
	tests := []struct {
		name     string
		required string
		sent     string
		want     int
	}{
		{"disabled", "", "anything", http.StatusForbidden},
		{"missing", "secret", "", http.StatusUnauthorized},
		{"wrong", "secret", "nope", http.StatusUnauthorized},
		{"ok", "secret", "secret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
			if tt.sent != "" {
				req.Header.Set("X-Admin-Key", tt.sent)
			}
			w := httptest.NewRecorder()
			adminRouter(tt.required).ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDHeader)) })

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got == "" || got != w.Body.String() {
		t.Fatalf("expected generated request id, header=%q body=%q", got, w.Body.String())
	}

	req, _ = http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req_fixed")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "req_fixed" {
		t.Fatalf("expected caller request id, got %q", got)
	}
}

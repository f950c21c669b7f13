package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgLog "repo-mirror/pkg/log"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(captured *string) *gin.Engine {
		mw := New(&mockLogger{})
		router := gin.New()
		router.Use(mw.RequestID())
		router.GET("/", func(c *gin.Context) {
			*captured = pkgLog.RequestIDFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("Generates ID", func(t *testing.T) {
		var got string
		router := newRouter(&got)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if got == "" {
			t.Errorf("expected a request id in context")
		}
		if w.Header().Get("X-Request-ID") != got {
			t.Errorf("response header should echo the request id")
		}
	})

	t.Run("Reuses GitHub Delivery GUID", func(t *testing.T) {
		var got string
		router := newRouter(&got)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-GitHub-Delivery", "guid-123")
		router.ServeHTTP(httptest.NewRecorder(), req)

		if got != "guid-123" {
			t.Errorf("expected delivery guid reused, got %q", got)
		}
	})
}

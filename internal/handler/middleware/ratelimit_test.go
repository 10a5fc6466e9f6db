//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"appointment-engine/internal/handler/middleware"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("burst is served then the client is throttled", func(t *testing.T) {
		// a rate this low never refills within the test
		r := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2})

		for range 2 {
			w := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
			assert.Equal(t, http.StatusNoContent, w.Code)
		}

		w := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1})

		first := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil, "", map[string]string{"X-Forwarded-For": "10.0.0.1"})
		other := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil, "", map[string]string{"X-Forwarded-For": "10.0.0.2"})
		again := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil, "", map[string]string{"X-Forwarded-For": "10.0.0.1"})

		assert.Equal(t, http.StatusNoContent, first.Code)
		assert.Equal(t, http.StatusNoContent, other.Code)
		assert.Equal(t, http.StatusTooManyRequests, again.Code)
	})

	t.Run("disabled limiter passes everything", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{Enabled: false, RPS: 0.001, Burst: 1})

		for range 5 {
			w := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
			assert.Equal(t, http.StatusNoContent, w.Code)
		}
	})
}

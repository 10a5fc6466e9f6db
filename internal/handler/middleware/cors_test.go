//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"appointment-engine/internal/handler/middleware"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))
	r.GET("/api/bookings", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestCORSMiddleware(t *testing.T) {
	const origin = "http://localhost:3000"

	t.Run("preflight accepts the request id header", func(t *testing.T) {
		r := newCORSRouter(origin)

		w := httptest.PerformRequestWithHeaders(t, r, http.MethodOptions, "/api/bookings", nil, "", map[string]string{
			"Origin":                         origin,
			"Access-Control-Request-Method":  http.MethodGet,
			"Access-Control-Request-Headers": "X-Request-ID",
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      origin,
			"Access-Control-Allow-Credentials": "true",
		})
		httptest.AssertHeaderLists(t, w, "Access-Control-Allow-Headers", "Content-Type", "Authorization", "X-Request-ID")
	})

	t.Run("request id is exposed next to the configured headers", func(t *testing.T) {
		r := newCORSRouter(origin)

		w := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/bookings", nil, "", map[string]string{"Origin": origin})

		assert.Equal(t, http.StatusNoContent, w.Code)
		httptest.AssertHeaderLists(t, w, "Access-Control-Expose-Headers", "Content-Length", "X-Request-ID")
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		r := newCORSRouter(origin)

		w := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/bookings", nil, "", map[string]string{"Origin": "http://evil.example"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wildcard opens every origin without credentials", func(t *testing.T) {
		r := newCORSRouter("*")

		w := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/bookings", nil, "", map[string]string{"Origin": "http://anywhere.example"})

		assert.Equal(t, http.StatusNoContent, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Credentials": "",
		})
	})
}

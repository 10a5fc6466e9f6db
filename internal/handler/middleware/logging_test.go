//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"appointment-engine/internal/handler/middleware"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newLoggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{
		Level:      "error",
		TimeZone:   "IST",
		TimeFormat: "2006-01-02 15:04:05.000",
	})

	r := gin.New()
	r.Use(logger.Middleware())
	r.GET("/api/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestId": middleware.GetRequestID(c)})
	})
	return r
}

func TestLoggerMiddleware_RequestID(t *testing.T) {
	t.Run("caller id is echoed and exposed to handlers", func(t *testing.T) {
		w := httptest.PerformRequestWithHeaders(t, newLoggedRouter(), http.MethodGet, "/api/bookings", nil, "",
			map[string]string{middleware.RequestIDHeader: "desk-42"})

		assert.Equal(t, http.StatusOK, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{middleware.RequestIDHeader: "desk-42"})
		assert.JSONEq(t, `{"requestId":"desk-42"}`, w.Body.String())
	})

	t.Run("missing id is generated", func(t *testing.T) {
		w := httptest.PerformRequest(t, newLoggedRouter(), http.MethodGet, "/api/bookings", nil, "")

		_, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader))
		assert.NoError(t, err)
	})
}
